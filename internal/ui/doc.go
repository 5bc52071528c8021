// Package ui provides styled terminal output for the wifi-qr CLI.
//
// This package uses Lipgloss to render the non-interactive command output:
// status markers, advisory warnings, the color palette listing, and the
// boxed summary shown alongside a generated code. Unlike the interactive
// wizard, these helpers follow a "print once and exit" pattern.
//
// # Logging Integration
//
// This package expects logging to be controlled via the WIFI_QR_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
