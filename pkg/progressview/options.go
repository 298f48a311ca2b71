package progressview

import (
	"time"

	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/internal/ui"
)

// DefaultAnimationInterval is the tick period of the indeterminate bar.
const DefaultAnimationInterval = 20 * time.Millisecond

// Glyphs is the box-drawing table used for the frame.
type Glyphs = ui.BoxStyle

// Glyph tables.
var (
	RoundedGlyphs = ui.BoxRounded
	ASCIIGlyphs   = ui.BoxASCII
)

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithLogger sets the logger for diagnostics. The default discards them.
func WithLogger(l logger.Logger) Option {
	return func(d *Dashboard) {
		d.log = l
	}
}

// WithSparkline replaces the sparkline glyph generator.
func WithSparkline(fn func([]float64) string) Option {
	return func(d *Dashboard) {
		d.sparkline = fn
	}
}

// WithGlyphs sets the frame glyph table. The default is picked from $TERM.
func WithGlyphs(g Glyphs) Option {
	return func(d *Dashboard) {
		d.glyphs = g
	}
}

// WithAnimationInterval sets the indeterminate animation tick period.
func WithAnimationInterval(interval time.Duration) Option {
	return func(d *Dashboard) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithNeutralStyle sets the style of empty gauge cells.
func WithNeutralStyle(s Style) Option {
	return func(d *Dashboard) {
		d.neutral = s
	}
}
