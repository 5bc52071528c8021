package wifi

import "strings"

// escapedChars lists the characters that carry meaning in the WIFI: record
// format and must be backslash-prefixed. Backslash comes first: it is the
// escape character itself, so it must be handled before any replacement that
// inserts new backslashes.
var escapedChars = []string{`\`, `;`, `,`, `"`, `'`, `<`, `>`}

// Escape escapes the payload special characters in raw by prefixing each
// occurrence with a backslash. Characters outside the reserved set (including
// spaces) pass through unchanged. Empty input yields an empty string.
func Escape(raw string) string {
	if raw == "" {
		return ""
	}
	for _, c := range escapedChars {
		raw = strings.ReplaceAll(raw, c, `\`+c)
	}
	return raw
}

// BuildPayload produces the scannable payload string for the given network.
//
// The field order S, T, P is load-bearing: certain scanners parse the record
// positionally and fail silently when fields are reordered. For open networks
// the P field is omitted entirely rather than emitted as an empty "P:;"
// placeholder. The record always ends with ";;" (one semicolon closing the
// last field, one closing the record).
func BuildPayload(cfg NetworkConfig) string {
	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(Escape(cfg.SSID))
	b.WriteString(";T:")
	b.WriteString(cfg.Security.Token())
	b.WriteString(";")

	if cfg.Security != SecurityOpen {
		b.WriteString("P:")
		b.WriteString(Escape(cfg.Password))
		b.WriteString(";")
	}

	// Note: cfg.Hidden is deliberately not serialized. See NetworkConfig.
	b.WriteString(";")
	return b.String()
}
