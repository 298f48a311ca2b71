// Package testing provides an in-memory Terminal for tests.
//
// FakeTerminal interprets the dashboard's operations against a character
// grid, so tests can assert on what a user would see (Row, Screen) as well
// as on terminal state (scroll region, cursor visibility, alternate screen).
package testing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/michaelrommel/progress-view/pkg/termio"
)

// FakeTerminal simulates a terminal screen. Text that runs past the right
// edge is clipped rather than wrapped.
type FakeTerminal struct {
	mu sync.Mutex

	size   termio.Size
	grid   [][]rune
	main   [][]rune // main screen contents while the alternate screen is active
	row    int
	col    int
	saved  [2]int
	top    int // scroll region, 0 when unset
	bottom int

	cursorHidden bool
	altScreen    bool

	ops     []string
	raw     strings.Builder
	flushes int
	failErr error

	nextID    int
	listeners map[int]func()
}

// NewFakeTerminal creates a blank fake screen of the given size.
func NewFakeTerminal(columns, rows int) *FakeTerminal {
	f := &FakeTerminal{
		size:      termio.Size{Columns: columns, Rows: rows},
		row:       1,
		col:       1,
		listeners: make(map[int]func()),
	}
	f.grid = blankGrid(columns, rows)
	return f
}

var _ termio.Terminal = (*FakeTerminal)(nil)

func blankGrid(columns, rows int) [][]rune {
	g := make([][]rune, rows)
	for i := range g {
		g[i] = blankRow(columns)
	}
	return g
}

func blankRow(columns int) []rune {
	r := make([]rune, columns)
	for i := range r {
		r[i] = ' '
	}
	return r
}

func (f *FakeTerminal) record(format string, args ...interface{}) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *FakeTerminal) Size() termio.Size {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

func (f *FakeTerminal) MoveTo(row, col int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("move %d;%d", row, col)
	f.row = clampInt(row, 1, f.size.Rows)
	f.col = clampInt(col, 1, f.size.Columns+1)
}

func (f *FakeTerminal) EraseScreen() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("erase")
	f.grid = blankGrid(f.size.Columns, f.size.Rows)
	f.row, f.col = 1, 1
}

func (f *FakeTerminal) SetScrollRegion(top, bottom int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if top <= 0 || bottom <= 0 || top >= bottom {
		return
	}
	f.record("region %d;%d", top, bottom)
	f.top, f.bottom = top, bottom
	f.row, f.col = 1, 1
}

func (f *FakeTerminal) ClearScrollRegion() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("region reset")
	f.top, f.bottom = 0, 0
	f.row, f.col = 1, 1
}

func (f *FakeTerminal) SaveCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("save")
	f.saved = [2]int{f.row, f.col}
}

func (f *FakeTerminal) RestoreCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("restore")
	if f.saved[0] > 0 {
		f.row, f.col = f.saved[0], f.saved[1]
	}
}

func (f *FakeTerminal) HideCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("hide cursor")
	f.cursorHidden = true
}

func (f *FakeTerminal) ShowCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("show cursor")
	f.cursorHidden = false
}

func (f *FakeTerminal) EnterAltScreen() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("alt screen")
	if f.altScreen {
		return
	}
	f.altScreen = true
	f.main = f.grid
	f.grid = blankGrid(f.size.Columns, f.size.Rows)
}

func (f *FakeTerminal) ExitAltScreen() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("main screen")
	if !f.altScreen {
		return
	}
	f.altScreen = false
	f.grid = f.main
	f.main = nil
}

// Print places text on the grid. SGR sequences are stripped; "\n" moves to
// the start of the next line and scrolls the active region at its bottom.
func (f *FakeTerminal) Print(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raw.WriteString(text)
	plain := ansi.Strip(text)
	f.record("print %q", plain)

	for _, r := range plain {
		switch r {
		case '\n':
			f.lineFeed()
			f.col = 1
		case '\r':
			f.col = 1
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if f.col+w-1 > f.size.Columns {
				f.col += w
				continue
			}
			f.grid[f.row-1][f.col-1] = r
			for i := 1; i < w; i++ {
				f.grid[f.row-1][f.col-1+i] = 0
			}
			f.col += w
		}
	}
}

func (f *FakeTerminal) lineFeed() {
	top, bottom := 1, f.size.Rows
	if f.top > 0 {
		top, bottom = f.top, f.bottom
	}
	if f.row != bottom {
		if f.row < f.size.Rows {
			f.row++
		}
		return
	}
	// scroll the region up by one line
	for i := top - 1; i < bottom-1; i++ {
		f.grid[i] = f.grid[i+1]
	}
	f.grid[bottom-1] = blankRow(f.size.Columns)
}

// Flush counts the flush, or returns the error set with FailFlush.
func (f *FakeTerminal) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return f.failErr
}

// FailFlush makes every later Flush return err.
func (f *FakeTerminal) FailFlush(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failErr = err
}

func (f *FakeTerminal) OnResize(fn func()) (stop func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// Resize changes the geometry, keeps the top-left content and notifies
// resize listeners synchronously.
func (f *FakeTerminal) Resize(columns, rows int) {
	f.mu.Lock()
	g := blankGrid(columns, rows)
	for i := 0; i < rows && i < len(f.grid); i++ {
		copy(g[i], f.grid[i])
	}
	f.grid = g
	f.size = termio.Size{Columns: columns, Rows: rows}
	f.row = clampInt(f.row, 1, rows)
	f.col = clampInt(f.col, 1, columns+1)
	f.record("resize %dx%d", columns, rows)
	listeners := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		listeners = append(listeners, fn)
	}
	f.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Row returns the visible text of a 1-based row with trailing blanks removed.
func (f *FakeTerminal) Row(n int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n < 1 || n > len(f.grid) {
		return ""
	}
	return rowString(f.grid[n-1])
}

func rowString(cells []rune) string {
	var sb strings.Builder
	for _, r := range cells {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Screen returns all rows joined by newlines.
func (f *FakeTerminal) Screen() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]string, len(f.grid))
	for i, cells := range f.grid {
		rows[i] = rowString(cells)
	}
	return strings.Join(rows, "\n")
}

// ScrollRegion returns the active scroll region, or 0, 0 when unset.
func (f *FakeTerminal) ScrollRegion() (top, bottom int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.top, f.bottom
}

// Cursor returns the current cursor position.
func (f *FakeTerminal) Cursor() (row, col int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row, f.col
}

func (f *FakeTerminal) CursorHidden() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursorHidden
}

func (f *FakeTerminal) AltScreen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.altScreen
}

// Ops returns a copy of the operation log.
func (f *FakeTerminal) Ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ops))
	copy(out, f.ops)
	return out
}

// OpCount returns how many logged operations start with prefix.
func (f *FakeTerminal) OpCount(prefix string) int {
	n := 0
	for _, op := range f.Ops() {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

// Raw returns everything passed to Print, styling included.
func (f *FakeTerminal) Raw() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw.String()
}

// Flushes returns the number of Flush calls.
func (f *FakeTerminal) Flushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}

// Listeners returns the number of registered resize callbacks.
func (f *FakeTerminal) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

// ClearLog resets the operation log and the raw output.
func (f *FakeTerminal) ClearLog() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = nil
	f.raw.Reset()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
