package wifi

import (
	"strings"
	"testing"
)

// TestValidateSSID tests SSID validation
func TestValidateSSID(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		wantErr  bool
		wantWarn bool
	}{
		{"Valid: normal SSID", "MyNetwork", false, false},
		{"Valid: with spaces", "My Home Network", false, false},
		{"Valid: max length (32 bytes)", strings.Repeat("a", 32), false, false},
		{"Invalid: empty", "", true, false},
		{"Invalid: whitespace only", "   ", true, false},
		{"Warning: over 32 bytes", strings.Repeat("a", 33), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSSID(tt.ssid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSSID(%q) error = %v, wantErr %v", tt.ssid, err, tt.wantErr)
			}
			if err != nil && IsWarning(err) != tt.wantWarn {
				t.Errorf("ValidateSSID(%q) IsWarning = %v, want %v", tt.ssid, IsWarning(err), tt.wantWarn)
			}
		})
	}
}

// TestValidatePassword tests password validation against the security kind
func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		security SecurityKind
		wantErr  bool
		wantWarn bool
	}{
		{"Valid: WPA passphrase", "pass1234", SecurityWPA, false, false},
		{"Valid: WPA max length", strings.Repeat("x", 63), SecurityWPA, false, false},
		{"Valid: open network without password", "", SecurityOpen, false, false},
		{"Valid: open network ignores password", "whatever", SecurityOpen, false, false},
		{"Valid: WEP key length unchecked", "abc", SecurityWEP, false, false},
		{"Invalid: empty for WPA", "", SecurityWPA, true, false},
		{"Invalid: empty for WEP", "", SecurityWEP, true, false},
		{"Warning: WPA too short", "short", SecurityWPA, true, true},
		{"Warning: WPA too long", strings.Repeat("x", 64), SecurityWPA, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.security)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q, %v) error = %v, wantErr %v", tt.password, tt.security, err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("Expected validation error, got %T", err)
			}
			if err != nil && IsWarning(err) != tt.wantWarn {
				t.Errorf("ValidatePassword(%q, %v) IsWarning = %v, want %v", tt.password, tt.security, IsWarning(err), tt.wantWarn)
			}
		})
	}
}

// TestValidateConfig tests complete configuration validation
func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       NetworkConfig
		wantCount int
		wantFatal int
	}{
		{
			name:      "Valid: WPA network",
			cfg:       NetworkConfig{SSID: "Home", Password: "pass1234", Security: SecurityWPA},
			wantCount: 0,
			wantFatal: 0,
		},
		{
			name:      "Valid: open network",
			cfg:       NetworkConfig{SSID: "Cafe Guest", Security: SecurityOpen},
			wantCount: 0,
			wantFatal: 0,
		},
		{
			name:      "Invalid: empty SSID",
			cfg:       NetworkConfig{SSID: "", Password: "pass1234", Security: SecurityWPA},
			wantCount: 1,
			wantFatal: 1,
		},
		{
			name:      "Invalid: secured network without password",
			cfg:       NetworkConfig{SSID: "Home", Security: SecurityWPA},
			wantCount: 1,
			wantFatal: 1,
		},
		{
			name:      "Invalid: both problems reported",
			cfg:       NetworkConfig{SSID: " ", Security: SecurityWEP},
			wantCount: 2,
			wantFatal: 2,
		},
		{
			name:      "Advisory only: short WPA passphrase",
			cfg:       NetworkConfig{SSID: "Home", Password: "short", Security: SecurityWPA},
			wantCount: 1,
			wantFatal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateConfig(tt.cfg)
			if len(errs) != tt.wantCount {
				t.Errorf("ValidateConfig() got %d results, want %d", len(errs), tt.wantCount)
				for i, err := range errs {
					t.Logf("  Result %d: %v", i+1, err)
				}
			}
			_, fatal := SeparateWarningsAndErrors(errs)
			if len(fatal) != tt.wantFatal {
				t.Errorf("ValidateConfig() got %d fatal errors, want %d", len(fatal), tt.wantFatal)
			}
		})
	}
}

// TestSeparateWarningsAndErrors tests advisory/fatal splitting
func TestSeparateWarningsAndErrors(t *testing.T) {
	errs := []error{
		NewValidationError("ssid", "network name cannot be empty"),
		NewValidationError("password", "warning: WPA passphrases are at least 8 characters (got 5)"),
		NewInputError("color", "warning: unknown color name"),
	}

	warnings, fatal := SeparateWarningsAndErrors(errs)
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2", len(warnings))
	}
	if len(fatal) != 1 {
		t.Errorf("got %d fatal errors, want 1", len(fatal))
	}
}

// TestFormatValidationErrors tests the user-facing summary
func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(nil); got != "No validation errors" {
		t.Errorf("FormatValidationErrors(nil) = %q", got)
	}

	errs := []error{NewValidationError("ssid", "network name cannot be empty")}
	got := FormatValidationErrors(errs)
	if !strings.Contains(got, "1 problem(s)") || !strings.Contains(got, "network name cannot be empty") {
		t.Errorf("FormatValidationErrors() = %q", got)
	}
}

// TestErrorKindPredicates tests the typed error helpers
func TestErrorKindPredicates(t *testing.T) {
	v := NewValidationError("ssid", "network name cannot be empty")
	if !IsValidationError(v) {
		t.Error("IsValidationError() = false for validation error")
	}
	if IsRecoverableInput(v) {
		t.Error("IsRecoverableInput() = true for validation error")
	}

	r := NewInputError("style", "unknown style")
	if !IsRecoverableInput(r) {
		t.Error("IsRecoverableInput() = false for input error")
	}
	if IsValidationError(r) {
		t.Error("IsValidationError() = true for input error")
	}

	if !strings.Contains(v.Error(), "ssid") {
		t.Errorf("Error() = %q, missing field name", v.Error())
	}
}
