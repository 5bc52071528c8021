package wifi

import "strings"

// ResolveSecurity maps free-form security input to a SecurityKind.
//
// Matching is case-insensitive and ignores surrounding whitespace. WPA, WPA2
// and WPA3 all resolve to SecurityWPA since they share a payload token.
// Unrecognized non-empty input also resolves to SecurityWPA rather than being
// rejected: for this field permissiveness beats strict validation, because a
// wrong guess still produces a scannable code while a hard error aborts the
// run. Empty input resolves to the WPA default as well, so every "empty/auto"
// representation normalizes to the same token.
func ResolveSecurity(token string) SecurityKind {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "wep":
		return SecurityWEP
	case "open", "none", "nopass":
		return SecurityOpen
	default:
		// wpa, wpa2, wpa3, empty and anything unrecognized
		return SecurityWPA
	}
}
