package render

import "testing"

// TestEnsurePNGPath tests extension handling
func TestEnsurePNGPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Bare name", "qr", "qr.png"},
		{"Already png", "qr.png", "qr.png"},
		{"Uppercase extension kept", "qr.PNG", "qr.PNG"},
		{"Other extension appended to", "qr.jpeg", "qr.jpeg.png"},
		{"Path with directories", "out/codes/home", "out/codes/home.png"},
		{"Dotted name", "my.network", "my.network.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsurePNGPath(tt.in); got != tt.want {
				t.Errorf("EnsurePNGPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestExpandHex tests short-form hex widening
func TestExpandHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#f57", "#ff5577"},
		{"#ABC", "#AABBCC"},
		{"#0066CC", "#0066CC"},
		{"#000000", "#000000"},
	}

	for _, tt := range tests {
		if got := expandHex(tt.in); got != tt.want {
			t.Errorf("expandHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestEnsurePNGPathIdempotent verifies repeated calls are stable
func TestEnsurePNGPathIdempotent(t *testing.T) {
	once := EnsurePNGPath("scan")
	twice := EnsurePNGPath(once)
	if once != twice {
		t.Errorf("EnsurePNGPath not idempotent: %q then %q", once, twice)
	}
}
