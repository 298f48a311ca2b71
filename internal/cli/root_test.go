package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	pverrors "github.com/michaelrommel/progress-view/internal/errors"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "progressview"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("connection failed"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				// Can't call isUnknownCommandError with nil
				return
			}
			got := isUnknownCommandError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "progressview"`),
			want: "foo",
		},
		{
			name: "task name",
			err:  errors.New(`unknown command "test" for "progressview"`),
			want: "test",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "my-task" for "progressview"`),
			want: "my-task",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractUnknownCommand(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structured error",
			err:  pverrors.New(pverrors.ErrGeometry, "Screen is vertically too small.", "Make the terminal taller"),
			want: "✗ Screen is vertically too small.\n\n  Make the terminal taller\n",
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("demo: %w", pverrors.New(pverrors.ErrConfig, "Bad config", "")),
			want: "✗ Bad config\n",
		},
		{
			name: "unknown command",
			err:  errors.New(`unknown command "fo" for "progressview"`),
			want: "✗ Unknown command 'fo'\n  Run 'progressview --help' to see what's available.\n",
		},
		{
			name: "interrupted",
			err:  errInterrupted,
			want: "⚠ Interrupted.\n",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "✗ boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
