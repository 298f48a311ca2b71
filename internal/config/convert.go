package config

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/michaelrommel/progress-view/internal/ui"
	"github.com/michaelrommel/progress-view/pkg/progressview"
)

// ToDashboard converts the file config into the engine's Config. Colour
// strings become lipgloss styles; empty colours leave the engine defaults.
func (c *Config) ToDashboard() progressview.Config {
	out := progressview.Config{
		PreservePreviousScreen: c.PreservePreviousScreen,
		ProgressHeader:         c.Progress.Header,
		ProgressSymbol:         c.Progress.Symbol,
		ProgressType:           progressview.ParseProgressType(c.Progress.Type),
		ProgressMax:            c.Progress.Max,
	}

	if s := strings.TrimSpace(c.Progress.Colour); s != "" {
		col := ui.ParseColor(s)
		out.ProgressColour = lipgloss.NewStyle().Foreground(col).Background(col)
	}
	if s := strings.TrimSpace(c.Progress.Background); s != "" {
		out.ProgressBackground = ui.GaugeStyle(ui.ParseColor(s))
	}

	out.Stats = make([][]progressview.FieldConfig, len(c.Stats))
	for i, line := range c.Stats {
		fields := make([]progressview.FieldConfig, len(line))
		for j, f := range line {
			fc := progressview.FieldConfig{
				Name:   f.Name,
				Digits: f.Digits,
				Style:  progressview.ParseFieldStyle(f.Style),
			}
			if s := strings.TrimSpace(f.Colour); s != "" {
				col := ui.ParseColor(s)
				if fc.Style == progressview.StyleGauge {
					fc.Colour = ui.GaugeStyle(col)
				} else {
					fc.Colour = ui.SparkStyle(col)
				}
			}
			fields[j] = fc
		}
		out.Stats[i] = fields
	}
	return out
}
