package wifi

import (
	"fmt"
	"strings"
)

// WiFi spec limits. Exceeding them is unusual but not payload-breaking, so
// they produce warnings rather than fatal errors.
const (
	maxSSIDBytes      = 32
	minWPAPasswordLen = 8
	maxWPAPasswordLen = 63
)

// ValidateSSID validates a network SSID. SSIDs must be non-empty after
// trimming; names over 32 bytes exceed the 802.11 limit and draw a warning.
func ValidateSSID(ssid string) error {
	if strings.TrimSpace(ssid) == "" {
		return NewValidationError("ssid", "network name cannot be empty")
	}
	if len(ssid) > maxSSIDBytes {
		return NewValidationError("ssid",
			fmt.Sprintf("warning: network name exceeds the %d-byte 802.11 limit (%d bytes); some devices may not join", maxSSIDBytes, len(ssid)))
	}
	return nil
}

// ValidatePassword validates a network password against the security kind.
// A secured network requires a password; an open network ignores it. WPA
// passphrases outside the 8-63 character range draw a warning since the
// payload still encodes, but the credentials are unlikely to work.
func ValidatePassword(password string, security SecurityKind) error {
	if security == SecurityOpen {
		return nil
	}
	if password == "" {
		return NewValidationError("password",
			fmt.Sprintf("password is required for a %s network", security))
	}
	if security == SecurityWPA {
		if len(password) < minWPAPasswordLen {
			return NewValidationError("password",
				fmt.Sprintf("warning: WPA passphrases are at least %d characters (got %d)", minWPAPasswordLen, len(password)))
		}
		if len(password) > maxWPAPasswordLen {
			return NewValidationError("password",
				fmt.Sprintf("warning: WPA passphrases are at most %d characters (got %d)", maxWPAPasswordLen, len(password)))
		}
	}
	return nil
}

// ValidateConfig validates a complete network configuration.
// Returns a slice of validation results (empty if valid); use
// SeparateWarningsAndErrors to distinguish advisories from fatal errors.
func ValidateConfig(cfg NetworkConfig) []error {
	var errs []error

	if err := ValidateSSID(cfg.SSID); err != nil {
		errs = append(errs, err)
	}

	if err := ValidatePassword(cfg.Password, cfg.Security); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// FormatValidationErrors formats validation results into a user-facing
// message.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Credential validation failed with %d problem(s):\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}
