// Package demo drives a dashboard with simulated work: a progress run, a
// stream of log lines into the scroll region and random statistics.
package demo

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/pkg/progressview"
)

// PercentStep is the progress step used in PERCENTAGE mode.
const PercentStep = 0.3

// Dashboard is the part of *progressview.Dashboard the simulation drives.
type Dashboard interface {
	io.Writer
	UpdateProgress(value float64)
	SetProgressMaxPending(ctx context.Context, resolve progressview.PendingFunc) *progressview.Pending
	UpdateStatistics(values [][]progressview.Sample)
}

// Result describes a finished run.
type Result struct {
	Ticks    int
	LogLines int64
	Max      float64

	// Throughput holds the summed sparkline rates of every tick.
	Throughput []float64
}

// Simulator runs the demonstration.
type Simulator struct {
	settings config.DemoConfig
	stats    [][]config.FieldConfig
	max      float64
	step     float64
	pending  bool
	rng      *rand.Rand
	log      logger.Logger

	progress atomic.Int64
	lines    atomic.Int64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithPending makes the run start with an unknown maximum that is looked up
// in the background while the bar animates.
func WithPending(pending bool) Option {
	return func(s *Simulator) { s.pending = pending }
}

// WithRand sets the random source, for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// New creates a simulator for cfg. PERCENTAGE configs run from 0 to 100 in
// steps of PercentStep; NUMBER configs run to the configured maximum in
// steps of cfg.Demo.Step.
func New(cfg *config.Config, opts ...Option) *Simulator {
	s := &Simulator{
		settings: cfg.Demo,
		stats:    cfg.Stats,
		max:      cfg.Progress.Max,
		step:     cfg.Demo.Step,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		log:      logger.Noop(),
	}
	if progressview.ParseProgressType(cfg.Progress.Type) == progressview.Percentage {
		s.max = 100
		s.step = PercentStep
	}
	if s.max <= 0 {
		s.max = progressview.DefaultMax
	}
	if s.step <= 0 {
		s.step = config.DefaultStep
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives dash until the progress reaches its maximum and the linger
// time has passed, or ctx is cancelled.
func (s *Simulator) Run(ctx context.Context, dash Dashboard) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	logsDone := make(chan struct{})
	go func() {
		defer close(logsDone)
		s.emitLogs(ctx, dash)
	}()
	defer func() {
		cancel()
		<-logsDone
	}()

	res := Result{Max: s.max}

	if s.pending {
		s.log.Info("looking up progress maximum")
		p := dash.SetProgressMaxPending(ctx, s.lookupMax)
		v, err := p.Wait(ctx)
		if err != nil {
			return s.finish(res), err
		}
		res.Max = v
	}

	p := newPanel(s.rng, s.stats)
	ticker := time.NewTicker(s.settings.TickInterval)
	defer ticker.Stop()

	for v := 0.0; v <= res.Max; v += s.step {
		dash.UpdateProgress(v)
		s.progress.Store(int64(v))

		samples, throughput := p.next(s.rng)
		dash.UpdateStatistics(samples)
		res.Throughput = append(res.Throughput, throughput)
		res.Ticks++

		select {
		case <-ctx.Done():
			return s.finish(res), ctx.Err()
		case <-ticker.C:
		}
	}
	dash.UpdateProgress(res.Max)
	s.progress.Store(int64(res.Max))
	s.log.Info("progress run finished after %d ticks", res.Ticks)

	select {
	case <-ctx.Done():
		return s.finish(res), ctx.Err()
	case <-time.After(s.settings.Linger):
	}
	return s.finish(res), nil
}

func (s *Simulator) finish(res Result) Result {
	res.LogLines = s.lines.Load()
	return res
}

// lookupMax stands in for an expensive count, such as the rows of a table.
func (s *Simulator) lookupMax(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(s.settings.PendingDelay):
		return s.max, nil
	}
}

// emitLogs writes a line into the scroll region every LogInterval.
func (s *Simulator) emitLogs(ctx context.Context, w io.Writer) {
	ticker := time.NewTicker(s.settings.LogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.lines.Add(1)
			if _, err := fmt.Fprintf(w, "This is log line #%s (%s records processed)\n",
				humanize.Comma(n), humanize.Comma(s.progress.Load())); err != nil {
				s.log.Warn("log line %d not written: %v", n, err)
			}
		}
	}
}
