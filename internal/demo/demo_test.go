package demo

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/pkg/progressview"
	termtest "github.com/michaelrommel/progress-view/pkg/termio/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Progress.Max = 100
	cfg.Demo.Step = 25
	cfg.Demo.TickInterval = time.Millisecond
	cfg.Demo.LogInterval = time.Millisecond
	cfg.Demo.PendingDelay = 40 * time.Millisecond
	cfg.Demo.Linger = 0
	return cfg
}

func startDashboard(t *testing.T, cfg *config.Config, opts ...progressview.Option) (*progressview.Dashboard, *termtest.FakeTerminal) {
	t.Helper()
	term := termtest.NewFakeTerminal(100, 30)
	dash := progressview.New(term, opts...)
	require.NoError(t, dash.Init(cfg.ToDashboard()))
	t.Cleanup(func() { dash.Reset(false) })
	return dash, term
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRunDrivesDashboard(t *testing.T) {
	cfg := fastConfig()
	dash, term := startDashboard(t, cfg)

	res, err := New(cfg, WithRand(seeded())).Run(context.Background(), dash)
	require.NoError(t, err)

	// 0, 25, 50, 75 and 100.
	assert.Equal(t, 5, res.Ticks)
	assert.Len(t, res.Throughput, 5)
	assert.Equal(t, float64(100), res.Max)

	snap := dash.Snapshot()
	assert.Equal(t, float64(100), snap.Progress.Value)
	assert.Equal(t, snap.Progress.BarWidth, snap.Progress.Filled)
	require.Len(t, snap.Lines, 5)

	read := snap.Lines[0].Fields[0]
	assert.Greater(t, read.Value, float64(0))
	assert.Len(t, snap.Lines[0].Fields[1].History, 5)
	assert.GreaterOrEqual(t, snap.Lines[3].Fields[0].Max, snap.Lines[3].Fields[0].Value)

	assert.Contains(t, term.Screen(), "100/100")
}

func TestRunPending(t *testing.T) {
	cfg := fastConfig()
	cfg.Progress.Max = 50
	dash, _ := startDashboard(t, cfg, progressview.WithAnimationInterval(time.Millisecond))

	log := logger.NewBufferLogger()
	res, err := New(cfg, WithPending(true), WithRand(seeded()), WithLogger(log)).Run(context.Background(), dash)
	require.NoError(t, err)

	assert.Equal(t, float64(50), res.Max)
	assert.Equal(t, 3, res.Ticks)

	snap := dash.Snapshot()
	assert.False(t, snap.Progress.Indeterminate)
	assert.Greater(t, snap.AnimationTicks, 0)
	assert.Equal(t, float64(50), snap.Progress.Max)
	assert.True(t, log.HasLevel("info"))
}

func TestRunCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.Progress.Max = 1e9
	cfg.Demo.Step = 1
	dash, _ := startDashboard(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	res, err := New(cfg, WithRand(seeded())).Run(ctx, dash)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, res.Ticks, 0)
	assert.Less(t, float64(res.Ticks), 1e9)
}

func TestRunCancelledWhilePending(t *testing.T) {
	cfg := fastConfig()
	cfg.Demo.PendingDelay = time.Hour
	dash, _ := startDashboard(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res, err := New(cfg, WithPending(true)).Run(ctx, dash)
	require.Error(t, err)
	assert.Zero(t, res.Ticks)
}

func TestNewPercentage(t *testing.T) {
	cfg := fastConfig()
	cfg.Progress.Type = "PERCENTAGE"
	cfg.Progress.Max = 1234

	s := New(cfg)
	assert.Equal(t, float64(100), s.max)
	assert.Equal(t, PercentStep, s.step)
}

func TestNewGuardsDegenerateValues(t *testing.T) {
	cfg := fastConfig()
	cfg.Progress.Max = 0
	cfg.Demo.Step = 0

	s := New(cfg)
	assert.Equal(t, float64(progressview.DefaultMax), s.max)
	assert.Equal(t, float64(config.DefaultStep), s.step)
}

func TestEmitLogs(t *testing.T) {
	cfg := fastConfig()
	s := New(cfg)
	s.progress.Store(1234567)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	s.emitLogs(ctx, &buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "This is log line #1 (1,234,567 records processed)", lines[0])
	assert.Equal(t, int64(len(lines)), s.lines.Load())
}

func TestLookupMax(t *testing.T) {
	cfg := fastConfig()
	cfg.Demo.PendingDelay = time.Millisecond
	s := New(cfg)

	v, err := s.lookupMax(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(100), v)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.settings.PendingDelay = time.Hour
	_, err = s.lookupMax(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
