package demo

import (
	"math"
	"math/rand/v2"

	"github.com/VividCortex/ewma"
	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/pkg/progressview"
)

// Step sizes of the simulated fields.
const (
	counterStep = 5000
	gaugeStep   = 500
	gaugeFloor  = 2000
	gaugeSpread = 10000
)

// field produces the next sample of one statistics field.
type field interface {
	next(rng *rand.Rand) float64
}

// counter grows by a random amount every tick, like a records-read total.
type counter struct {
	val float64
}

func (c *counter) next(rng *rand.Rand) float64 {
	c.val += rng.Float64() * counterStep
	return c.val
}

// rate draws a random per-second figure and smooths it so the sparkline
// shows trends instead of noise.
type rate struct {
	scale float64
	avg   ewma.MovingAverage
}

func newRate(digits int) *rate {
	// 8000 for a five-digit field.
	scale := 0.8 * math.Pow(10, float64(digits-1))
	return &rate{scale: scale, avg: ewma.NewMovingAverage()}
}

func (r *rate) next(rng *rand.Rand) float64 {
	r.avg.Add(rng.Float64() * r.scale)
	return r.avg.Value()
}

// walk is a queue depth that drifts up or down by a random amount. bias is
// the chance of a step up.
type walk struct {
	val  float64
	bias float64
	ceil float64
}

func newWalk(rng *rand.Rand, digits int, bias float64) *walk {
	return &walk{
		val:  gaugeFloor + rng.Float64()*gaugeSpread,
		bias: bias,
		ceil: math.Pow(10, float64(digits)) - 1,
	}
}

func (w *walk) next(rng *rand.Rand) float64 {
	delta := rng.Float64() * gaugeStep
	if rng.Float64() > w.bias {
		delta = -delta
	}
	w.val = math.Max(0, math.Min(w.ceil, w.val+delta))
	return w.val
}

// panel holds one generator per configured statistics field.
type panel struct {
	fields [][]field
	sparks [][]bool
}

func newPanel(rng *rand.Rand, stats [][]config.FieldConfig) *panel {
	p := &panel{
		fields: make([][]field, len(stats)),
		sparks: make([][]bool, len(stats)),
	}
	gauges := 0
	for i, line := range stats {
		p.fields[i] = make([]field, len(line))
		p.sparks[i] = make([]bool, len(line))
		for j, f := range line {
			switch progressview.ParseFieldStyle(f.Style) {
			case progressview.StyleSpark:
				p.fields[i][j] = newRate(f.Digits)
				p.sparks[i][j] = true
			case progressview.StyleGauge:
				// Alternate between a draining and a filling queue.
				bias := 0.55
				if gauges%2 == 0 {
					bias = 0.45
				}
				gauges++
				p.fields[i][j] = newWalk(rng, f.Digits, bias)
			default:
				p.fields[i][j] = &counter{}
			}
		}
	}
	return p
}

// next returns one round of samples and the summed rate of the sparkline
// fields.
func (p *panel) next(rng *rand.Rand) ([][]progressview.Sample, float64) {
	out := make([][]progressview.Sample, len(p.fields))
	var throughput float64
	for i, line := range p.fields {
		out[i] = make([]progressview.Sample, len(line))
		for j, f := range line {
			v := f.next(rng)
			out[i][j] = progressview.Value(v)
			if p.sparks[i][j] {
				throughput += v
			}
		}
	}
	return out, throughput
}
