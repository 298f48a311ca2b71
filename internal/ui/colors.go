package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Dashboard colors
const (
	ColorBarFill  lipgloss.Color = "10" // Bright green
	ColorBarTrack lipgloss.Color = "0"  // Black
	ColorMagenta  lipgloss.Color = "5"
)

// namedColors maps the colour names accepted in config files to ANSI codes.
var namedColors = map[string]lipgloss.Color{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"brightblack":   "8",
	"gray":          "8",
	"grey":          "8",
	"brightred":     "9",
	"brightgreen":   "10",
	"brightyellow":  "11",
	"brightblue":    "12",
	"brightmagenta": "13",
	"brightcyan":    "14",
	"brightwhite":   "15",
}

// ParseColor resolves a colour name ("magenta", "brightGreen"), an ANSI code
// ("5", "208") or a hex value ("#ff8800"). Unknown names are passed through
// unchanged and left to lipgloss.
func ParseColor(s string) lipgloss.Color {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	if c, ok := namedColors[key]; ok {
		return c
	}
	return lipgloss.Color(strings.TrimSpace(s))
}

// BarStyle returns the default filled-cell style of a progress bar.
func BarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorBarFill).Background(ColorBarFill)
}

// TrackStyle returns the default empty-cell style of a progress bar.
func TrackStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(ColorBarTrack)
}

// GaugeStyle returns a style that paints gauge cells in the given colour.
func GaugeStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(c)
}

// SparkStyle returns a style that paints sparkline glyphs in the given colour.
func SparkStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
