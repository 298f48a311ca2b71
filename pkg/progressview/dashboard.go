package progressview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/internal/ui"
	"github.com/michaelrommel/progress-view/pkg/termio"
)

// TooSmallMessage is printed when the terminal cannot hold the dashboard.
const TooSmallMessage = "Screen is vertically too small."

// Dashboard draws a progress bar and a statistics box at the bottom of the
// terminal while the rows above keep scrolling normally.
//
// Resize events, the indeterminate animation and caller updates are
// serialized on one mutex; every call renders synchronously.
type Dashboard struct {
	mu sync.Mutex

	term      termio.Terminal
	log       logger.Logger
	sparkline func([]float64) string
	glyphs    Glyphs
	neutral   Style
	interval  time.Duration

	cfg        Config
	layout     screenLayout
	progress   *progressState
	stats      *statsPanel
	pending    *Pending
	anim       indeterminate
	ticks      int
	stopResize func()
	active     bool
	degraded   bool
	flushErr   bool
}

// New creates a dashboard that draws on term. Nothing is drawn before Init.
func New(term termio.Terminal, opts ...Option) *Dashboard {
	d := &Dashboard{
		term:      term,
		log:       logger.Noop(),
		sparkline: ui.Sparkline,
		glyphs:    ui.ActiveBoxStyle(),
		neutral:   ui.TrackStyle(),
		interval:  DefaultAnimationInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init validates cfg, carves the scroll region and paints the whole frame.
// Configuration errors are returned before the terminal is touched. If the
// terminal is too small, the cursor and screen buffer are restored and an
// ErrGeometry error is returned.
func (d *Dashboard) Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active {
		return errors.New(errors.ErrConfig, "Dashboard is already initialized",
			"Call Reset before initializing it again")
	}

	d.term.HideCursor()
	if cfg.PreservePreviousScreen {
		d.term.EnterAltScreen()
	}
	d.term.EraseScreen()

	size := d.term.Size()
	layout := newLayout(size, len(cfg.Stats))
	if !layout.fits() {
		d.term.ShowCursor()
		if cfg.PreservePreviousScreen {
			d.term.ExitAltScreen()
		}
		d.flush()
		return errors.New(errors.ErrGeometry, TooSmallMessage,
			fmt.Sprintf("The dashboard needs at least %d rows, the terminal has %d", MinRows(len(cfg.Stats)), size.Rows))
	}

	d.cfg = cfg
	d.layout = layout
	d.progress = newProgressState(cfg)
	d.stats = newStatsPanel(cfg.Stats, d.sparkline, d.neutral)
	d.stats.relayout(size.Columns)
	d.stats.apply(nil)
	d.pending = nil
	d.ticks = 0
	d.degraded = false

	d.term.SetScrollRegion(1, layout.scrollBottom())
	d.term.MoveTo(1, 1)
	d.drawFrame()
	d.drawProgress()
	d.drawStats()

	d.stopResize = d.term.OnResize(d.handleResize)
	d.active = true
	d.log.Debug("dashboard initialized: %dx%d, %d statistics lines", size.Columns, size.Rows, len(cfg.Stats))
	d.flush()
	return nil
}

// UpdateProgress sets the bar value, clamped to [0, max], and redraws it.
// Updates are ignored while a pending maximum is being computed.
func (d *Dashboard) UpdateProgress(value float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	if d.pending != nil {
		d.log.Debug("progress update %v ignored while maximum is pending", value)
		return
	}
	d.progress.set(value)
	d.paintProgress()
}

// RedrawProgress repaints the bar without changing its value.
func (d *Dashboard) RedrawProgress() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.paintProgress()
}

// SetProgressMax sets a known maximum. It supersedes a pending maximum.
func (d *Dashboard) SetProgressMax(maximum float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.cancelPending()
	d.progress.setMax(maximum)
	d.paintProgress()
}

// SetProgressMaxPending animates the bar until resolve returns. On success
// the value restarts at 0 against the resolved maximum. On failure the
// animation stops, the value falls back to 0 and the previous maximum is
// kept. resolve receives a context derived from ctx that is cancelled when
// Reset or another maximum supersedes the operation.
func (d *Dashboard) SetProgressMaxPending(ctx context.Context, resolve PendingFunc) *Pending {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.active {
		p := newPending(nil)
		p.finish(Cancelled, 0, errors.New(errors.ErrPending, "Dashboard is not initialized", "Call Init first"))
		return p
	}

	d.cancelPending()

	pctx, cancel := context.WithCancel(ctx)
	p := newPending(cancel)
	d.pending = p
	d.anim = newIndeterminate()
	d.paintProgress()

	go d.animate(p)
	go d.await(pctx, p, resolve)
	return p
}

// animate advances the indeterminate fragment until p ends.
func (d *Dashboard) animate(p *Pending) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.Done():
			return
		case <-ticker.C:
			d.mu.Lock()
			if d.pending != p {
				d.mu.Unlock()
				return
			}
			d.anim.step()
			d.ticks++
			d.paintProgress()
			d.mu.Unlock()
		}
	}
}

// await runs resolve and applies its outcome if p is still current.
func (d *Dashboard) await(ctx context.Context, p *Pending, resolve PendingFunc) {
	value, err := resolve(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != p {
		return
	}
	d.pending = nil

	if err != nil {
		wrapped := errors.WrapWithCode(err, errors.ErrPending, "Could not determine the progress maximum", "")
		d.log.Error("pending progress maximum failed: %v", err)
		d.progress.set(0)
		p.finish(Rejected, 0, wrapped)
	} else {
		d.log.Debug("pending progress maximum resolved to %v", value)
		d.progress.value = 0
		d.progress.setMax(value)
		p.finish(Resolved, value, nil)
	}
	d.paintProgress()
}

// cancelPending ends the current pending maximum, if any. Callers hold d.mu.
func (d *Dashboard) cancelPending() {
	if d.pending == nil {
		return
	}
	p := d.pending
	d.pending = nil
	p.finish(Cancelled, 0, context.Canceled)
}

// UpdateStatistics folds a round of samples into the panel and redraws it.
// values is indexed by line, then field. Short or nil slices are treated as
// "no sample" for the missing fields.
func (d *Dashboard) UpdateStatistics(values [][]Sample) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.stats.apply(values)
	if d.degraded {
		return
	}
	d.drawStats()
	d.flush()
}

// Write prints p into the scroll region, between dashboard redraws.
func (d *Dashboard) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.term.Print(string(p))
	if err := d.term.Flush(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// RegionHeight returns the number of free-scrolling rows above the dashboard.
func (d *Dashboard) RegionHeight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active || d.degraded {
		return d.term.Size().Rows
	}
	return d.layout.scrollBottom()
}

// Reset cancels any animation, releases the scroll region, shows the cursor
// and leaves the cursor below the dashboard. Unless keepOutput is set, a
// screen saved by PreservePreviousScreen is restored. Reset is idempotent.
func (d *Dashboard) Reset(keepOutput bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.active = false
	d.cancelPending()
	if d.stopResize != nil {
		d.stopResize()
		d.stopResize = nil
	}

	d.term.ClearScrollRegion()
	d.term.ShowCursor()
	d.term.MoveTo(d.term.Size().Rows, 1)
	d.term.Print("\n")
	if d.cfg.PreservePreviousScreen && !keepOutput {
		d.term.ExitAltScreen()
	}
	d.flush()
	d.log.Debug("dashboard reset (keep output: %v)", keepOutput)
}

// handleResize re-derives the layout. Below the minimum height the panel is
// suppressed and scrolling uses the whole screen until a resize fits again.
func (d *Dashboard) handleResize() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}

	size := d.term.Size()
	d.layout = newLayout(size, len(d.cfg.Stats))
	d.stats.relayout(size.Columns)

	if !d.layout.fits() {
		if !d.degraded {
			d.degraded = true
			d.log.Warn("terminal resized to %dx%d, dashboard needs %d rows; panel suspended",
				size.Columns, size.Rows, MinRows(len(d.cfg.Stats)))
			d.term.SaveCursor()
			d.term.ClearScrollRegion()
			d.term.RestoreCursor()
			d.term.Print(TooSmallMessage + "\n")
			d.flush()
		}
		return
	}

	if d.degraded {
		d.log.Info("terminal resized to %dx%d, dashboard restored", size.Columns, size.Rows)
	} else {
		d.log.Debug("terminal resized to %dx%d", size.Columns, size.Rows)
	}
	d.degraded = false
	d.term.ClearScrollRegion()
	d.term.EraseScreen()
	d.term.SetScrollRegion(1, d.layout.scrollBottom())
	d.term.MoveTo(1, 1)
	d.drawFrame()
	d.drawProgress()
	d.drawStats()
	d.flush()
}

// paintProgress redraws the bar and flushes, unless the panel is suspended.
func (d *Dashboard) paintProgress() {
	if d.degraded {
		return
	}
	d.drawProgress()
	d.flush()
}

func (d *Dashboard) drawFrame() {
	cols := d.layout.size.Columns
	g := d.glyphs

	d.term.SaveCursor()
	d.term.MoveTo(d.layout.separatorRow(), 1)
	d.term.Print(g.TitledRule(" Progress ", cols))
	d.term.MoveTo(d.layout.topBorderRow(), 1)
	d.term.Print(g.Top(" Statistics ", cols))
	for i := range d.stats.lines {
		row := d.layout.statRow(i)
		d.term.MoveTo(row, 1)
		d.term.Print(g.Vertical)
		d.term.MoveTo(row, cols)
		d.term.Print(g.Vertical)
	}
	d.term.MoveTo(d.layout.bottomBorderRow(), 1)
	d.term.Print(g.Bottom(cols))
	d.term.RestoreCursor()
}

func (d *Dashboard) drawProgress() {
	cols := d.layout.size.Columns
	var line string
	if d.pending != nil {
		line = d.progress.renderIndeterminate(cols, d.anim)
	} else {
		line = d.progress.render(cols)
	}

	d.term.SaveCursor()
	d.term.MoveTo(d.layout.barRow(), 1)
	d.term.Print(fitWidth(line, cols-1))
	d.term.RestoreCursor()
}

func (d *Dashboard) drawStats() {
	width := d.layout.size.Columns - 4

	d.term.SaveCursor()
	for i := range d.stats.lines {
		d.term.MoveTo(d.layout.statRow(i), 3)
		d.term.Print(d.stats.renderLine(i, width))
	}
	d.term.RestoreCursor()
}

// flush pushes buffered output. Failures are logged once per streak.
func (d *Dashboard) flush() {
	if err := d.term.Flush(); err != nil {
		if !d.flushErr {
			d.log.Error("terminal flush failed: %v", err)
		}
		d.flushErr = true
		return
	}
	d.flushErr = false
}
