package progressview

import (
	"fmt"
	"math"
	"strings"

	"github.com/michaelrommel/progress-view/internal/ui"
)

// indeterminateTrailer replaces the value trailer while the maximum is pending.
const indeterminateTrailer = "calculating..."

// Animation geometry, in percent of the bar width.
const (
	fragmentPercent = 10
	maxPosition     = 100 - fragmentPercent
)

// progressState holds the bar's value and maximum and renders the bar line.
type progressState struct {
	value  float64
	max    float64
	mode   ProgressType
	symbol string
	header string
	fg     Style
	bg     Style
	digits int
}

func newProgressState(cfg Config) *progressState {
	p := &progressState{
		mode:   cfg.ProgressType,
		symbol: cfg.ProgressSymbol,
		header: cfg.ProgressHeader,
		fg:     cfg.ProgressColour,
		bg:     cfg.ProgressBackground,
	}
	p.setMax(cfg.ProgressMax)
	return p
}

// effectiveMax is the value a full bar represents.
func (p *progressState) effectiveMax() float64 {
	if p.mode == Percentage {
		return 100
	}
	return p.max
}

func (p *progressState) set(v float64) {
	p.value = ui.Clamp(v, 0, p.effectiveMax())
}

// setMax changes the maximum and re-clamps the value. Negative and NaN
// maxima become 0, which renders an empty bar.
func (p *progressState) setMax(m float64) {
	if math.IsNaN(m) || m < 0 {
		m = 0
	}
	p.max = m
	p.digits = ui.DigitCount(m)
	p.set(p.value)
}

func (p *progressState) trailer() string {
	if p.mode == Number {
		return fmt.Sprintf("%*d/%d", p.digits, int64(p.value), int64(p.max))
	}
	return fmt.Sprintf("%3d/100%%", int64(p.value))
}

// barWidth is the number of symbol cells that fit next to header and trailer.
func (p *progressState) barWidth(columns int, trailer string) int {
	w := columns - ui.DisplayWidth(p.header) - ui.DisplayWidth(trailer) - 4
	if w < 0 {
		return 0
	}
	return w
}

func (p *progressState) filled(width int) int {
	return ui.FilledCells(p.value, p.effectiveMax(), width)
}

// render returns the determinate bar line.
func (p *progressState) render(columns int) string {
	trailer := p.trailer()
	width := p.barWidth(columns, trailer)
	filled := p.filled(width)

	return p.line(trailer,
		paint(p.fg, ui.Repeat(p.symbol, filled)),
		paint(p.bg, ui.Repeat(p.symbol, width-filled)))
}

// renderIndeterminate returns the bar line with the moving fragment.
func (p *progressState) renderIndeterminate(columns int, a indeterminate) string {
	width := p.barWidth(columns, indeterminateTrailer)
	front, fragment, back := a.segments(width)

	return p.line(indeterminateTrailer,
		paint(p.bg, ui.Repeat(p.symbol, front)),
		paint(p.fg, ui.Repeat(p.symbol, fragment)),
		paint(p.bg, ui.Repeat(p.symbol, back)))
}

func (p *progressState) line(trailer string, bar ...string) string {
	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(p.header)
	sb.WriteString(" ")
	for _, s := range bar {
		sb.WriteString(s)
	}
	sb.WriteString(" ")
	sb.WriteString(trailer)
	return sb.String()
}

// indeterminate is the bouncing fragment shown while the maximum is unknown.
// position is the fragment's leading edge in percent of the bar width.
type indeterminate struct {
	position  int
	direction int
}

func newIndeterminate() indeterminate {
	return indeterminate{position: 0, direction: 1}
}

// step advances the fragment by one percent, bouncing at either end.
func (a *indeterminate) step() {
	next := a.position + a.direction
	if next < 0 || next > maxPosition {
		a.direction = -a.direction
		next = a.position + a.direction
	}
	a.position = next
}

// segments splits a bar of width cells into the cells before, inside and
// after the fragment.
func (a indeterminate) segments(width int) (front, fragment, back int) {
	if width <= 0 {
		return 0, 0, 0
	}
	fragment = int(math.Round(float64(fragmentPercent) / 100 * float64(width)))
	front = int(math.Round(float64(a.position) * float64(width) / 100))
	if front+fragment > width {
		front = width - fragment
	}
	if front < 0 {
		front = 0
	}
	back = width - fragment - front
	return front, fragment, back
}

// paint renders s with style, skipping empty strings so no stray escape
// sequences are emitted.
func paint(style Style, s string) string {
	if s == "" || style == nil {
		return s
	}
	return style.Render(s)
}
