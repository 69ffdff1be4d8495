package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleErr     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleFinding = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleNote    = lipgloss.NewStyle().Foreground(ColorBlue)
)

// TriageStyle colors a normalized triage outcome the way its tag would be.
func TriageStyle(normalized string) lipgloss.Style {
	switch normalized {
	case "Red":
		return lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	case "Orange":
		return lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	case "Yellow":
		return lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	case "Green":
		return lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	case "Blue", "White":
		return lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	case "Black":
		return lipgloss.NewStyle().Foreground(ColorDim).Bold(true)
	default:
		return StyleFg
	}
}

// triagelabHuhTheme returns a custom huh theme using the palette above.
func triagelabHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorOrange)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorOrange).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorOrange)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorOrange)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(ColorDim)

	return t
}
