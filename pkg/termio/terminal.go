// Package termio is the terminal capability port used by the dashboard.
//
// The Terminal interface covers exactly what an in-place dashboard needs:
// geometry, cursor movement, erasing, scroll-region control, the alternate
// screen, buffered text output and resize notification. Console implements
// it for a real tty; pkg/termio/testing provides an in-memory fake.
package termio

// Size is the terminal geometry in character cells.
type Size struct {
	Columns int
	Rows    int
}

// DefaultSize is reported when the real geometry cannot be determined.
var DefaultSize = Size{Columns: 80, Rows: 24}

// Terminal defines the operations the dashboard performs on a terminal.
// Rows and columns are 1-based, top-left is (1, 1).
//
// Output may be buffered: nothing is guaranteed to reach the terminal until
// Flush is called. Implementations must be safe for use from multiple
// goroutines, but callers are responsible for keeping multi-call sequences
// (save, move, print, restore) from interleaving.
type Terminal interface {
	// Size returns the current geometry.
	Size() Size

	// MoveTo moves the cursor to the given row and column.
	MoveTo(row, col int)

	// EraseScreen clears the whole screen and homes the cursor.
	EraseScreen()

	// SetScrollRegion confines scrolling to rows [top, bottom].
	// Invalid ranges are ignored.
	SetScrollRegion(top, bottom int)

	// ClearScrollRegion restores full-screen scrolling.
	ClearScrollRegion()

	SaveCursor()
	RestoreCursor()
	HideCursor()
	ShowCursor()
	EnterAltScreen()
	ExitAltScreen()

	// Print writes text at the cursor position. Text may carry SGR styling.
	Print(text string)

	// Flush pushes buffered output to the terminal.
	Flush() error

	// OnResize registers fn to be called after every geometry change.
	// The returned stop function unregisters it and may be called more
	// than once.
	OnResize(fn func()) (stop func())
}
