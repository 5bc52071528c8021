// Package style resolves user-supplied QR styling input.
//
// It validates module shape ("square" or "circle") and foreground color
// input, where a color is either a name from the fixed built-in palette or
// an explicit #RGB / #RRGGBB hex triplet. Both lookups are permissive:
// invalid input resolves to the documented default (square, black) together
// with an advisory error the caller surfaces as a warning, never a fatal
// failure. This keeps non-interactive flag usage forgiving.
package style
