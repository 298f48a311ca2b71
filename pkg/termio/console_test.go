package termio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileConsole(t *testing.T) (*Console, string, *logger.BufferLogger) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	log := logger.NewBufferLogger()
	return NewConsole(f, WithConsoleLogger(log)), path, log
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConsole_BuffersUntilFlush(t *testing.T) {
	c, path, _ := newFileConsole(t)

	c.Print("hello")
	assert.Empty(t, readOutput(t, path), "output should stay buffered")

	require.NoError(t, c.Flush())
	assert.Equal(t, "hello", readOutput(t, path))
}

func TestConsole_EscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *Console)
		want string
	}{
		{"move", func(c *Console) { c.MoveTo(3, 7) }, termenv.CSI + "3;7H"},
		{"scroll region", func(c *Console) { c.SetScrollRegion(1, 10) }, termenv.CSI + "1;10r"},
		{"clear scroll region", func(c *Console) { c.ClearScrollRegion() }, termenv.CSI + "r"},
		{"save cursor", func(c *Console) { c.SaveCursor() }, termenv.CSI + "s"},
		{"restore cursor", func(c *Console) { c.RestoreCursor() }, termenv.CSI + "u"},
		{"hide cursor", func(c *Console) { c.HideCursor() }, termenv.CSI + "?25l"},
		{"show cursor", func(c *Console) { c.ShowCursor() }, termenv.CSI + "?25h"},
		{"alt screen", func(c *Console) { c.EnterAltScreen() }, termenv.CSI + "?1049h"},
		{"exit alt screen", func(c *Console) { c.ExitAltScreen() }, termenv.CSI + "?1049l"},
		{"erase screen", func(c *Console) { c.EraseScreen() }, termenv.CSI + "2J" + termenv.CSI + "1;1H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, path, _ := newFileConsole(t)
			tt.op(c)
			require.NoError(t, c.Flush())
			assert.Equal(t, tt.want, readOutput(t, path))
		})
	}
}

func TestConsole_IgnoresInvalidScrollRegion(t *testing.T) {
	c, path, _ := newFileConsole(t)

	c.SetScrollRegion(0, 10)
	c.SetScrollRegion(5, 5)
	c.SetScrollRegion(10, 2)
	require.NoError(t, c.Flush())

	assert.Empty(t, readOutput(t, path))
}

func TestConsole_SizeFallback(t *testing.T) {
	c, _, log := newFileConsole(t)

	assert.False(t, c.IsTerminal())
	assert.Equal(t, DefaultSize, c.Size())
	assert.Equal(t, DefaultSize, c.Size())
	assert.Equal(t, 1, log.Count("debug"), "fallback should be logged once")
}

func TestConsole_OnResizeStopIsIdempotent(t *testing.T) {
	c, _, _ := newFileConsole(t)

	stop := c.OnResize(func() {})
	stop()
	stop()
}
