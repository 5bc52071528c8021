package style

import (
	"fmt"
	"strings"

	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
)

// Kind identifies the module shape used when rasterizing a QR code.
type Kind int

const (
	// Square renders classic square modules (the default).
	Square Kind = iota
	// Circle renders modules as rounded dots. Finder markers in the three
	// corners stay square regardless, since scanners locate the symbol by
	// them.
	Circle
)

// String returns the style name as accepted on the command line.
func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	default:
		return "square"
	}
}

// Kinds returns the accepted style names, for help text and listings.
func Kinds() []string {
	return []string{"square", "circle"}
}

// ResolveStyle validates free-form style input. Matching is case-insensitive
// and ignores surrounding whitespace. Empty input resolves to Square
// silently; anything unrecognized resolves to Square together with an
// advisory error the caller should surface as a warning.
func ResolveStyle(input string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "square":
		return Square, nil
	case "circle":
		return Circle, nil
	default:
		return Square, wifi.NewInputError("style",
			fmt.Sprintf("warning: unknown style %q, using square (valid: %s)", input, strings.Join(Kinds(), ", ")))
	}
}
