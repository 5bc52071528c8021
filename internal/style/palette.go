package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
)

// ColorSpec is a resolved foreground color. Name is empty for custom hex
// input; Hex always matches hexColorPattern.
type ColorSpec struct {
	Name string
	Hex  string
}

// String returns the palette name when known, otherwise the hex value.
func (c ColorSpec) String() string {
	if c.Name != "" {
		return fmt.Sprintf("%s (%s)", c.Name, c.Hex)
	}
	return c.Hex
}

// hexColorPattern accepts #RGB and #RRGGBB triplets.
var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// palette is the fixed named-color table. A lookup map keeps validation and
// listing in one place instead of scattering conditionals.
var palette = map[string]string{
	"black":  "#000000",
	"blue":   "#0066CC",
	"red":    "#CC0000",
	"green":  "#1A7A3C",
	"purple": "#7D56F4",
	"orange": "#E07000",
	"pink":   "#D6336C",
	"gray":   "#626262",
}

// DefaultColor is the fallback when color input is absent or invalid.
func DefaultColor() ColorSpec {
	return ColorSpec{Name: "black", Hex: palette["black"]}
}

// Names returns the palette color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the palette entry for a name, if present. Matching is
// case-insensitive and ignores surrounding whitespace.
func Lookup(name string) (ColorSpec, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	hex, ok := palette[key]
	if !ok {
		return ColorSpec{}, false
	}
	return ColorSpec{Name: key, Hex: hex}, true
}

// ResolveColor resolves free-form color input to a ColorSpec.
//
// Hex input (#RGB or #RRGGBB) passes through verbatim as a custom color with
// no name. Otherwise the input is looked up in the fixed palette. Anything
// else yields the default black together with an advisory error the caller
// should surface as a warning; invalid color input is never fatal.
func ResolveColor(input string) (ColorSpec, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DefaultColor(), nil
	}

	if hexColorPattern.MatchString(trimmed) {
		return ColorSpec{Hex: trimmed}, nil
	}

	if spec, ok := Lookup(trimmed); ok {
		return spec, nil
	}

	return DefaultColor(), wifi.NewInputError("color",
		fmt.Sprintf("warning: unknown color %q, using black (valid: %s, or #RGB / #RRGGBB)", input, strings.Join(Names(), ", ")))
}
