package style

import (
	"testing"

	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
)

// TestResolveStyle tests style input normalization
func TestResolveStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"Square", "square", Square, false},
		{"Circle", "circle", Circle, false},
		{"Mixed case", "Circle", Circle, false},
		{"Surrounding whitespace", "  square ", Square, false},
		{"Empty defaults silently", "", Square, false},
		{"Unknown falls back with warning", "hexagon", Square, true},
		{"Typo falls back with warning", "sqaure", Square, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStyle(tt.input)
			if got != tt.want {
				t.Errorf("ResolveStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !wifi.IsRecoverableInput(err) {
					t.Errorf("Expected recoverable input error, got %T", err)
				}
				if !wifi.IsWarning(err) {
					t.Errorf("Expected warning, got %v", err)
				}
			}
		})
	}
}

// TestKindString tests the command-line names
func TestKindString(t *testing.T) {
	if Square.String() != "square" {
		t.Errorf("Square.String() = %q", Square.String())
	}
	if Circle.String() != "circle" {
		t.Errorf("Circle.String() = %q", Circle.String())
	}
}
