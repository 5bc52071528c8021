package wifi

import "testing"

// TestResolveSecurity tests free-form security input normalization
func TestResolveSecurity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SecurityKind
	}{
		{"WPA", "wpa", SecurityWPA},
		{"WPA2", "wpa2", SecurityWPA},
		{"WPA3", "WPA3", SecurityWPA},
		{"Mixed case", "WpA2", SecurityWPA},
		{"WEP", "wep", SecurityWEP},
		{"WEP uppercase", "WEP", SecurityWEP},
		{"Open", "open", SecurityOpen},
		{"None", "none", SecurityOpen},
		{"Nopass alias", "nopass", SecurityOpen},
		{"Empty defaults to WPA", "", SecurityWPA},
		{"Whitespace only defaults to WPA", "   ", SecurityWPA},
		{"Surrounding whitespace trimmed", "  wep  ", SecurityWEP},
		{"Unrecognized defaults to WPA", "bogus", SecurityWPA},
		{"Unrecognized number defaults to WPA", "802.1x", SecurityWPA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSecurity(tt.input); got != tt.want {
				t.Errorf("ResolveSecurity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
