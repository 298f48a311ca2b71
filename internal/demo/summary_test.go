package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryTotalsOnly(t *testing.T) {
	out := Summary(Result{Ticks: 3, LogLines: 1200, Max: 1234567890}, 80)
	assert.Equal(t, "1,234,567,890 records in 3 ticks, 1,200 log lines\n", out)
}

func TestSummaryChart(t *testing.T) {
	res := Result{Ticks: 6, Max: 100, Throughput: []float64{1, 4, 2, 8, 5, 7}}
	out := Summary(res, 60)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Greater(t, len(lines), summaryHeight)
	assert.Contains(t, out, "summed rates per tick")
	assert.Contains(t, out, "┤")
}

func TestSummarySkipsFlatZeroSeries(t *testing.T) {
	out := Summary(Result{Ticks: 2, Throughput: []float64{0, 0}}, 80)
	assert.NotContains(t, out, "summed rates")
}
