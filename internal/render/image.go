package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/DmitriiSer/wifi-qr-cli/internal/style"
)

const (
	// backgroundHex is always opaque white; a transparent or tinted
	// background hurts scan reliability on glossy screens.
	backgroundHex = "#FFFFFF"

	// moduleWidth is the per-module pixel width. Tuned so typical
	// credential payloads (QR version 3-4) land near a 512x512 output.
	moduleWidth = 14
)

// ImageOptions selects the visual treatment of the rasterized code.
type ImageOptions struct {
	Style style.Kind
	Color style.ColorSpec
}

// EnsurePNGPath appends the .png extension when name does not already carry
// it. Matching is case-insensitive, so "qr.PNG" passes through unchanged.
func EnsurePNGPath(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return name
	}
	return name + ".png"
}

// expandHex widens a #RGB triplet to #RRGGBB. Resolved colors keep the
// user's verbatim hex, but the image writer only understands the six-digit
// form.
func expandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
}

// WritePNG rasterizes payload into a PNG at path and returns the path
// actually written (with the .png extension ensured). Quartile error
// correction leaves headroom for the styled modules without bloating the
// symbol.
func WritePNG(payload, path string, opts ImageOptions) (string, error) {
	qrc, err := qrcode.NewWith(payload,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	out := EnsurePNGPath(path)

	writerOpts := []standard.ImageOption{
		standard.WithQRWidth(moduleWidth),
		standard.WithFgColorRGBHex(expandHex(opts.Color.Hex)),
		standard.WithBgColorRGBHex(backgroundHex),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	}
	if opts.Style == style.Circle {
		// Circle shape applies to data modules; the corner finder
		// markers stay square so scanners can still locate the symbol.
		writerOpts = append(writerOpts, standard.WithCircleShape())
	}

	w, err := standard.New(out, writerOpts...)
	if err != nil {
		return "", fmt.Errorf("failed to create image writer for %s: %w", out, err)
	}

	if err := qrc.Save(w); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	return out, nil
}
