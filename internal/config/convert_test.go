package config

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/michaelrommel/progress-view/pkg/progressview"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestToDashboard(t *testing.T) {
	cfg := DefaultConfig()
	dc := cfg.ToDashboard()

	assert.True(t, dc.PreservePreviousScreen)
	assert.Equal(t, "Records", dc.ProgressHeader)
	assert.Equal(t, progressview.Number, dc.ProgressType)
	assert.Equal(t, float64(DefaultProgressMax), dc.ProgressMax)
	require.NotNil(t, dc.ProgressColour)
	require.NotNil(t, dc.ProgressBackground)

	require.Len(t, dc.Stats, 5)
	assert.Equal(t, progressview.StyleNone, dc.Stats[0][0].Style)
	assert.Nil(t, dc.Stats[0][0].Colour)
	assert.Equal(t, progressview.StyleSpark, dc.Stats[0][1].Style)
	assert.Equal(t, progressview.StyleGauge, dc.Stats[3][0].Style)
	require.NotNil(t, dc.Stats[3][0].Colour)

	assert.NoError(t, dc.Validate())
}

func TestToDashboardColours(t *testing.T) {
	cfg := &Config{
		Progress: ProgressConfig{Type: "percentage"},
		Stats: [][]FieldConfig{{
			{Name: "q:", Digits: 3, Style: "gauge", Colour: "#ff8800"},
			{Name: "r:", Digits: 3, Style: "spark", Colour: "magenta"},
		}},
	}
	dc := cfg.ToDashboard()

	assert.Equal(t, progressview.Percentage, dc.ProgressType)
	assert.Nil(t, dc.ProgressColour, "empty colour keeps the engine default")
	assert.Nil(t, dc.ProgressBackground)

	// Gauges paint the cell background, sparklines the glyph foreground.
	gauge := dc.Stats[0][0].Colour.Render(" ")
	assert.Contains(t, gauge, "48;2;255;136;0")
	spark := dc.Stats[0][1].Colour.Render("▅")
	assert.Contains(t, spark, "35")
	assert.Contains(t, spark, "▅")
}
