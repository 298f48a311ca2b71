package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitledRule(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  string
	}{
		{"even split", " P ", 7, "-- P --"},
		{"odd surplus goes right", " P ", 8, "-- P ---"},
		{"exact fit", "abc", 3, "abc"},
		{"too narrow drops title", "abcdef", 4, "----"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoxASCII.TitledRule(tt.title, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, DisplayWidth(got))
		})
	}
}

func TestBoxTopAndBottom(t *testing.T) {
	top := BoxRounded.Top(" Statistics ", 30)
	bottom := BoxRounded.Bottom(30)

	assert.Equal(t, 30, DisplayWidth(top))
	assert.Equal(t, 30, DisplayWidth(bottom))
	assert.Equal(t, "╭──────── Statistics ────────╮", top)
	assert.Equal(t, "╰────────────────────────────╯", bottom)
}

func TestActiveBoxStyle(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.Equal(t, BoxASCII, ActiveBoxStyle())

	t.Setenv("TERM", "")
	assert.Equal(t, BoxASCII, ActiveBoxStyle())

	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, BoxRounded, ActiveBoxStyle())
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("日本"))
	assert.Equal(t, 0, DisplayWidth(""))
}
