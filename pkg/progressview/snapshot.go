package progressview

import "github.com/michaelrommel/progress-view/pkg/termio"

// Snapshot is a read-only copy of a dashboard's state.
type Snapshot struct {
	Active   bool
	Degraded bool
	Size     termio.Size
	// ScrollBottom is the last free-scrolling row.
	ScrollBottom int

	Progress ProgressSnapshot
	// AnimationTicks counts indeterminate animation steps since Init.
	AnimationTicks int
	Lines          []LineSnapshot
}

// ProgressSnapshot describes the progress bar.
type ProgressSnapshot struct {
	Type          ProgressType
	Value         float64
	Max           float64
	Digits        int
	Indeterminate bool
	// Position is the animation fragment's leading edge in percent.
	Position int
	Trailer  string
	BarWidth int
	Filled   int
}

// LineSnapshot describes one statistics line.
type LineSnapshot struct {
	Layout LineLayout
	Fields []FieldSnapshot
}

// FieldSnapshot describes one statistics field.
type FieldSnapshot struct {
	Name    string
	Style   FieldStyle
	Value   float64
	History []float64
	Max     float64
	Filled  int
}

// Snapshot returns the current state. It is empty before Init.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Snapshot{
		Active:         d.active,
		Degraded:       d.degraded,
		AnimationTicks: d.ticks,
	}
	if d.progress == nil {
		return s
	}

	s.Size = d.layout.size
	s.ScrollBottom = d.layout.scrollBottom()

	p := d.progress
	s.Progress = ProgressSnapshot{
		Type:          p.mode,
		Value:         p.value,
		Max:           p.max,
		Digits:        p.digits,
		Indeterminate: d.pending != nil,
	}
	if d.pending != nil {
		s.Progress.Position = d.anim.position
		s.Progress.Trailer = indeterminateTrailer
		s.Progress.BarWidth = p.barWidth(s.Size.Columns, indeterminateTrailer)
		_, s.Progress.Filled, _ = d.anim.segments(s.Progress.BarWidth)
	} else {
		s.Progress.Trailer = p.trailer()
		s.Progress.BarWidth = p.barWidth(s.Size.Columns, s.Progress.Trailer)
		s.Progress.Filled = p.filled(s.Progress.BarWidth)
	}

	for _, line := range d.stats.lines {
		ls := LineSnapshot{Layout: line.layout}
		for _, f := range line.fields {
			fs := FieldSnapshot{
				Name:    f.Name,
				Style:   f.Style,
				Value:   f.current,
				History: append([]float64(nil), f.history...),
				Max:     f.max,
			}
			if f.Style == StyleGauge {
				fs.Filled = f.gaugeFilled(line.layout.PixelBudget)
			}
			ls.Fields = append(ls.Fields, fs)
		}
		s.Lines = append(s.Lines, ls)
	}
	return s
}
