// Package logging provides structured logging for the wifi-qr CLI.
//
// The package wraps zap with a silent-by-default policy: a CLI that prints
// QR codes to the terminal must not interleave log lines with its output, so
// the logger is a nop unless verbosity is requested through the
// WIFI_QR_LOG_LEVEL environment variable.
//
// # Log Levels
//
// Valid values for WIFI_QR_LOG_LEVEL: "debug", "info", "warn", "error".
// When unset or empty no log output is produced.
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Debug("payload built",
//	    zap.String("security", "WPA"),
//	    zap.Int("length", len(payload)),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
