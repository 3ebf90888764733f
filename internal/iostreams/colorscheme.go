package iostreams

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// ColorScheme provides terminal color formatting.
// When colors are disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a new ColorScheme.
// If enabled is false, all color methods return unmodified strings.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

// render applies a lipgloss style if colors are enabled.
func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// Green returns the string in green (success color).
func (cs *ColorScheme) Green(s string) string {
	return cs.render(successStyle, s)
}

// Yellow returns the string in yellow (warning color).
func (cs *ColorScheme) Yellow(s string) string {
	return cs.render(warningStyle, s)
}

// Red returns the string in red (error color).
func (cs *ColorScheme) Red(s string) string {
	return cs.render(errorStyle, s)
}

// Cyan returns the string in cyan (info color).
func (cs *ColorScheme) Cyan(s string) string {
	return cs.render(infoStyle, s)
}

// Muted returns the string in a muted gray.
func (cs *ColorScheme) Muted(s string) string {
	return cs.render(mutedStyle, s)
}

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string {
	return cs.render(boldStyle, s)
}

// Boldf returns a formatted string in bold.
func (cs *ColorScheme) Boldf(format string, a ...any) string {
	return cs.Bold(fmt.Sprintf(format, a...))
}

// SuccessIcon returns a green check mark.
func (cs *ColorScheme) SuccessIcon() string {
	return cs.Green("✓")
}

// WarningIcon returns a yellow exclamation mark.
func (cs *ColorScheme) WarningIcon() string {
	return cs.Yellow("!")
}

// ErrorIcon returns a red cross.
func (cs *ColorScheme) ErrorIcon() string {
	return cs.Red("✗")
}

// InfoIcon returns a cyan bullet.
func (cs *ColorScheme) InfoIcon() string {
	return cs.Cyan("•")
}
