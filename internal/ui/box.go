package ui

import (
	"os"

	"github.com/mattn/go-runewidth"
)

// BoxStyle defines the characters used for drawing the statistics frame and
// the separator rule above the progress bar.
type BoxStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	// BoxRounded uses rounded corner box drawing characters (Unicode)
	BoxRounded = BoxStyle{
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
		Horizontal:  "─",
		Vertical:    "│",
	}

	// BoxASCII uses ASCII characters for maximum compatibility
	BoxASCII = BoxStyle{
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
		Horizontal:  "-",
		Vertical:    "|",
	}
)

// ActiveBoxStyle returns BoxASCII on dumb terminals and BoxRounded otherwise.
func ActiveBoxStyle() BoxStyle {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return BoxASCII
	}
	return BoxRounded
}

// TitledRule returns a horizontal rule of exactly width columns with title
// centred in it. Surplus columns go to the right-hand side. If the title does
// not fit, the rule is returned without it.
func (b BoxStyle) TitledRule(title string, width int) string {
	avail := width - runewidth.StringWidth(title)
	if avail < 0 {
		return Repeat(b.Horizontal, width)
	}
	left := avail / 2
	return Repeat(b.Horizontal, left) + title + Repeat(b.Horizontal, avail-left)
}

// Top returns the top border of a box width columns wide with a centred title.
func (b BoxStyle) Top(title string, width int) string {
	if width < 2 {
		return Repeat(b.Horizontal, width)
	}
	return b.TopLeft + b.TitledRule(title, width-2) + b.TopRight
}

// Bottom returns the bottom border of a box width columns wide.
func (b BoxStyle) Bottom(width int) string {
	if width < 2 {
		return Repeat(b.Horizontal, width)
	}
	return b.BottomLeft + Repeat(b.Horizontal, width-2) + b.BottomRight
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
