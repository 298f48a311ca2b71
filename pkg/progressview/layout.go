package progressview

import "github.com/michaelrommel/progress-view/pkg/termio"

// Rows below the scroll region that do not belong to statistics lines:
// gap, separator, progress bar, top border and bottom border.
const reservedChrome = 5

// minFreeRows is the scrolling headroom required at Init.
const minFreeRows = 4

// MinRows returns the smallest terminal height that can hold a dashboard
// with the given number of statistics lines.
func MinRows(statLines int) int {
	return statLines + reservedChrome + minFreeRows
}

// screenLayout derives the vertical split of the terminal. All rows are
// 1-based. From the bottom up: bottom border, statistics lines, top border,
// progress bar, separator, one blank gap row, then the scroll region.
type screenLayout struct {
	size  termio.Size
	lines int
}

func newLayout(size termio.Size, statLines int) screenLayout {
	return screenLayout{size: size, lines: statLines}
}

func (l screenLayout) fits() bool {
	return l.size.Rows >= MinRows(l.lines)
}

// scrollBottom is the last row of the free-scrolling region.
func (l screenLayout) scrollBottom() int {
	return l.size.Rows - (l.lines + reservedChrome)
}

func (l screenLayout) gapRow() int       { return l.scrollBottom() + 1 }
func (l screenLayout) separatorRow() int { return l.scrollBottom() + 2 }
func (l screenLayout) barRow() int       { return l.scrollBottom() + 3 }
func (l screenLayout) topBorderRow() int { return l.scrollBottom() + 4 }

func (l screenLayout) statRow(i int) int {
	return l.topBorderRow() + 1 + i
}

func (l screenLayout) bottomBorderRow() int { return l.size.Rows }
