package ui

import "github.com/charmbracelet/lipgloss"

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Step completed successfully
	SymbolFail    = "✗" // Step failed
	SymbolWarning = "⚠" // Degraded but continuing
)

// Status renders a status symbol in colour c.
func Status(symbol string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(symbol)
}
