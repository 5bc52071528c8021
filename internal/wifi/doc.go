// Package wifi builds Wi-Fi network QR payloads.
//
// This package implements the de facto "WIFI:" QR convention used by phone
// cameras to join networks from a scanned code. It constructs a correctly
// escaped, correctly ordered payload string from network credentials and
// normalizes free-form security input.
//
// # Payload Format
//
// The produced payload has the exact form:
//
//	WIFI:S:<escaped-ssid>;T:<security-token>;P:<escaped-password>;;
//
// Field order is fixed (S, then T, then P) and must not change: some scanner
// implementations parse positionally and fail silently on reordering. The
// P field is omitted entirely for open networks, and the record always ends
// with a doubled ";;" terminator.
//
// # Usage Example
//
//	cfg := wifi.NetworkConfig{
//	    SSID:     "Home",
//	    Password: "pass123",
//	    Security: wifi.SecurityWPA,
//	}
//
//	if errs := wifi.ValidateConfig(cfg); len(errs) > 0 {
//	    warnings, fatal := wifi.SeparateWarningsAndErrors(errs)
//	    // surface warnings, abort on fatal errors
//	    _ = warnings
//	    _ = fatal
//	}
//
//	payload := wifi.BuildPayload(cfg)
//	// payload == "WIFI:S:Home;T:WPA;P:pass123;;"
//
// # Error Handling
//
// Fatal problems (empty SSID, missing password on a secured network) are
// reported as validation errors. Out-of-range lengths are reported as
// advisory warnings so that non-interactive callers can proceed. All
// functions are pure: no I/O, no shared state, safe for concurrent use.
package wifi
