// Package ui holds the presentation primitives shared by the dashboard and
// the CLI: the colour palette, box-drawing glyph tables, sparkline glyphs
// and progress bar arithmetic.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)        - Successful operations
//	ColorError     (red)          - Failures and errors
//	ColorWarning   (yellow)       - Warnings and degraded states
//	ColorBarFill   (bright green) - Filled progress bar cells
//	ColorBarTrack  (black)        - Empty progress bar and gauge cells
//
// ParseColor accepts the colour names used in config files, ANSI codes and
// hex values.
//
// # Box Glyphs
//
// BoxRounded draws the statistics frame with rounded corners. BoxASCII is
// the fallback for dumb terminals:
//
//	╭──────── Statistics ────────╮
//	│ read 12  rate ▁▃▅█        │
//	╰────────────────────────────╯
//
// # Sparklines
//
// Sparkline maps a series onto 8 block levels (▁ to █) scaled between the
// series minimum and maximum. Output is unstyled.
package ui
