package progressview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/michaelrommel/progress-view/internal/ui"
)

// gaugeMaxLabel sits between a gauge's value and its running maximum.
const gaugeMaxLabel = " max: "

// Sample is an optional statistics value. The zero Sample means "no new
// value": the field shows 0, its history is not extended and its gauge
// maximum is unchanged.
type Sample struct {
	Val   float64
	Valid bool
}

// Value returns a Sample carrying v.
func Value(v float64) Sample {
	return Sample{Val: v, Valid: true}
}

// LineLayout is the horizontal budget of one statistics line.
type LineLayout struct {
	Sparks     int
	Gauges     int
	LabelWidth int
	ValueWidth int
	// PixelBudget is the width of every sparkline and gauge on the line.
	PixelBudget int
}

// computeLineLayout splits the inner width of a statistics row (columns
// minus border and padding on both sides) between labels, values and
// graphics. Every graphic is followed by one blank column.
func computeLineLayout(fields []FieldConfig, columns int) LineLayout {
	var l LineLayout
	for _, f := range fields {
		l.LabelWidth += ui.DisplayWidth(f.Name) + 1
		l.ValueWidth += f.Digits + 2
		switch f.Style {
		case StyleSpark:
			l.Sparks++
		case StyleGauge:
			l.Gauges++
			l.ValueWidth += len(gaugeMaxLabel) + f.Digits
		}
	}

	graphics := l.Sparks + l.Gauges
	if graphics == 0 {
		return l
	}
	free := columns - 4 - l.LabelWidth - l.ValueWidth - graphics
	if free > 0 {
		l.PixelBudget = free / graphics
	}
	return l
}

type statField struct {
	FieldConfig
	current float64
	history []float64
	max     float64
}

type statLine struct {
	fields []*statField
	layout LineLayout
}

// statsPanel owns the per-field state of the statistics box.
type statsPanel struct {
	lines     []*statLine
	sparkline func([]float64) string
	neutral   Style
}

func newStatsPanel(cfg [][]FieldConfig, sparkline func([]float64) string, neutral Style) *statsPanel {
	p := &statsPanel{sparkline: sparkline, neutral: neutral}
	for _, fields := range cfg {
		line := &statLine{}
		for _, f := range fields {
			line.fields = append(line.fields, &statField{FieldConfig: f})
		}
		p.lines = append(p.lines, line)
	}
	return p
}

// relayout recomputes every line's budget for a new width and trims
// sparkline histories that no longer fit.
func (p *statsPanel) relayout(columns int) {
	for _, line := range p.lines {
		configs := make([]FieldConfig, len(line.fields))
		for i, f := range line.fields {
			configs[i] = f.FieldConfig
		}
		line.layout = computeLineLayout(configs, columns)
		for _, f := range line.fields {
			f.trim(line.layout.PixelBudget)
		}
	}
}

// apply folds one round of samples into the panel. values is indexed by
// line then field; missing entries count as no sample.
func (p *statsPanel) apply(values [][]Sample) {
	for i, line := range p.lines {
		for j, f := range line.fields {
			s := sampleAt(values, i, j)
			f.current = 0
			if s.Valid {
				f.current = s.Val
			}

			switch f.Style {
			case StyleSpark:
				if s.Valid {
					f.history = append(f.history, s.Val)
				}
				f.trim(line.layout.PixelBudget)
			case StyleGauge:
				if s.Valid && s.Val > f.max {
					f.max = s.Val
				}
			}
		}
	}
}

func sampleAt(values [][]Sample, line, field int) Sample {
	if line >= len(values) || field >= len(values[line]) {
		return Sample{}
	}
	return values[line][field]
}

// trim drops the oldest history entries beyond budget.
func (f *statField) trim(budget int) {
	if budget < 0 {
		budget = 0
	}
	if excess := len(f.history) - budget; excess > 0 {
		n := copy(f.history, f.history[excess:])
		f.history = f.history[:n]
	}
}

func (f *statField) gaugeFilled(budget int) int {
	return ui.FilledCells(f.current, f.max, budget)
}

// renderLine returns the contents of line i, exactly width columns wide.
func (p *statsPanel) renderLine(i, width int) string {
	line := p.lines[i]
	budget := line.layout.PixelBudget

	var sb strings.Builder
	for _, f := range line.fields {
		sb.WriteString(f.Name)
		sb.WriteString(" ")
		switch f.Style {
		case StyleGauge:
			fmt.Fprintf(&sb, "%*d%s%*d  ", f.Digits, int64(f.current), gaugeMaxLabel, f.Digits, int64(f.max))
			filled := f.gaugeFilled(budget)
			sb.WriteString(paint(f.Colour, ui.Repeat(" ", filled)))
			sb.WriteString(paint(p.neutral, ui.Repeat(" ", budget-filled)))
			sb.WriteString(" ")
		case StyleSpark:
			fmt.Fprintf(&sb, "%*d  ", f.Digits, int64(f.current))
			glyphs := ""
			if budget > 0 && len(f.history) > 0 {
				glyphs = ansi.Truncate(p.sparkline(f.history), budget, "")
			}
			sb.WriteString(paint(f.Colour, glyphs))
			sb.WriteString(ui.Repeat(" ", budget-ansi.StringWidth(glyphs)))
			sb.WriteString(" ")
		default:
			fmt.Fprintf(&sb, "%*d  ", f.Digits, int64(f.current))
		}
	}
	return fitWidth(sb.String(), width)
}

// fitWidth truncates or right-pads s to exactly width columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "")
}
