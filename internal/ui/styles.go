package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for command output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 100
)

// Shared styles for command output
var (
	// TitleStyle is for section titles above a rendered code
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// SuccessStyle is for success lines ("✓ wrote home.png")
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle is for advisory warnings (fallback substitutions)
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle is for fatal validation errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// MutedStyle is for secondary detail (payload echo, hints)
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SwatchLabelStyle is for palette listing labels
	SwatchLabelStyle = lipgloss.NewStyle().
				Width(8)

	// SummaryBoxStyle frames the network summary next to a rendered code
	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 2)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "!"
)

// Successf prints a green success line to stdout.
func Successf(format string, args ...interface{}) {
	fmt.Println(SuccessStyle.Render(SuccessMarker + " " + fmt.Sprintf(format, args...)))
}

// Warnf prints an orange advisory line to stderr so it never mixes with
// payload or QR output on stdout.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, WarningStyle.Render(WarningMarker+" "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red error line to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render(FailureMarker+" "+fmt.Sprintf(format, args...)))
}

// Swatch renders a filled color block for palette listings.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██████")
}

// GetTerminalWidth returns the current terminal width, with fallback.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
