package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorBarFill,
		ColorBarTrack,
		ColorMagenta,
	}

	for _, c := range colors {
		assert.NotEmpty(t, string(c), "color constant should not be empty")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  lipgloss.Color
	}{
		{"magenta", "5"},
		{"Magenta", "5"},
		{"bright-green", "10"},
		{"brightGreen", "10"},
		{"bright_green", "10"},
		{"grey", "8"},
		{"208", "208"},
		{"#ff8800", "#ff8800"},
		{" #ff8800 ", "#ff8800"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.input))
		})
	}
}

func TestStylesRenderText(t *testing.T) {
	styles := []lipgloss.Style{
		BarStyle(),
		TrackStyle(),
		GaugeStyle(ColorMagenta),
		SparkStyle(ColorInfo),
	}

	for _, s := range styles {
		out := s.Render("xx")
		assert.Contains(t, out, "xx")
		assert.Contains(t, out, "\x1b[", "style should emit an escape sequence")
	}
}

func TestStatus(t *testing.T) {
	out := Status(SymbolSuccess, ColorSuccess)
	assert.Contains(t, out, SymbolSuccess)
	assert.Contains(t, out, "32", "green foreground")
}
