// Package render draws QR codes for encoded Wi-Fi payloads.
//
// Two output targets are supported: a terminal renderer that prints a
// scannable block-character code to any io.Writer, and a PNG renderer that
// writes a styled raster image (square or rounded-dot modules, custom
// foreground color, opaque white background) to a file. QR symbol encoding
// itself is delegated entirely to the underlying libraries; this package only
// maps resolved style and color descriptors onto their options.
package render
