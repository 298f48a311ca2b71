package termio

import (
	"bufio"
	"os"
	"sync"

	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Console is a Terminal backed by a real tty. Escape sequences are produced
// by termenv and collected in a buffer until Flush.
type Console struct {
	mu       sync.Mutex
	file     *os.File
	buf      *bufio.Writer
	out      *termenv.Output
	log      logger.Logger
	warnOnce sync.Once
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithConsoleLogger sets the logger used for geometry fallbacks and resize events.
func WithConsoleLogger(l logger.Logger) ConsoleOption {
	return func(c *Console) {
		c.log = l
	}
}

// NewConsole creates a Console writing to f, usually os.Stdout.
func NewConsole(f *os.File, opts ...ConsoleOption) *Console {
	buf := bufio.NewWriterSize(f, 16*1024)
	c := &Console{
		file: f,
		buf:  buf,
		out:  termenv.NewOutput(buf, termenv.WithTTY(true)),
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsTerminal reports whether the console is attached to a tty.
func (c *Console) IsTerminal() bool {
	return term.IsTerminal(int(c.file.Fd()))
}

// Size returns the tty geometry, falling back to DefaultSize.
func (c *Console) Size() Size {
	width, height, err := term.GetSize(int(c.file.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		c.warnOnce.Do(func() {
			c.log.Debug("terminal size unavailable (%v), assuming %dx%d", err, DefaultSize.Columns, DefaultSize.Rows)
		})
		return DefaultSize
	}
	return Size{Columns: width, Rows: height}
}

func (c *Console) MoveTo(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.MoveCursor(row, col)
}

func (c *Console) EraseScreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.ClearScreen()
}

func (c *Console) SetScrollRegion(top, bottom int) {
	if top <= 0 || bottom <= 0 || top >= bottom {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.ChangeScrollingRegion(top, bottom)
}

func (c *Console) ClearScrollRegion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.out.WriteString(termenv.CSI + "r")
}

func (c *Console) SaveCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.SaveCursorPosition()
}

func (c *Console) RestoreCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.RestoreCursorPosition()
}

func (c *Console) HideCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.HideCursor()
}

func (c *Console) ShowCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.ShowCursor()
}

func (c *Console) EnterAltScreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.AltScreen()
}

func (c *Console) ExitAltScreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.ExitAltScreen()
}

func (c *Console) Print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.out.WriteString(text)
}

// Flush writes all buffered output to the tty.
func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.buf.Flush(); err != nil {
		return errors.Wrap(err, "Failed to write to terminal")
	}
	return nil
}
