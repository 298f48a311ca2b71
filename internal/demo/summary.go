package demo

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

const summaryHeight = 8

// Summary renders the run totals and, when the run had sparkline fields, a
// chart of the summed rates. width is the available terminal width.
func Summary(res Result, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s records in %s ticks, %s log lines\n",
		humanize.Comma(int64(res.Max)), humanize.Comma(int64(res.Ticks)), humanize.Comma(res.LogLines))

	if len(res.Throughput) < 2 || !hasSignal(res.Throughput) {
		return b.String()
	}

	// asciigraph puts the axis labels in front of the plot.
	plotWidth := width - 12
	if plotWidth < 10 {
		plotWidth = 10
	}
	b.WriteString(asciigraph.Plot(res.Throughput,
		asciigraph.Height(summaryHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("summed rates per tick")))
	b.WriteString("\n")
	return b.String()
}

func hasSignal(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return true
		}
	}
	return false
}
