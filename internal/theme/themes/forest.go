package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("forest", Forest)
}

// Forest uses moss and bark tones.
func Forest() theme.Family {
	moss := lipgloss.Color("#6B8E23")
	fern := lipgloss.Color("#4F7942")
	bark := lipgloss.Color("#8B5A2B")

	return pair("forest", "Forest",
		theme.Palette{
			Background: lipgloss.Color("#F5F3E7"),
			Surface:    lipgloss.Color("#E6E2CC"),
			Text:       lipgloss.Color("#2F3B1F"),
			Dim:        lipgloss.Color("#7D8461"),
			Accent:     fern,
			Highlight:  lipgloss.Color("#2E5E1E"),
			Border:     bark,
			Error:      lipgloss.Color("#A63D2F"),
			Success:    moss,
			Warning:    lipgloss.Color("#B8860B"),
		},
		theme.Palette{
			Background: lipgloss.Color("#0F1A0F"),
			Surface:    lipgloss.Color("#1B2B1B"),
			Text:       lipgloss.Color("#C5D6A8"),
			Dim:        lipgloss.Color("#556B2F"),
			Accent:     lipgloss.Color("#9ACD32"),
			Highlight:  lipgloss.Color("#ADFF2F"),
			Border:     bark,
			Error:      lipgloss.Color("#CD5C5C"),
			Success:    moss,
			Warning:    lipgloss.Color("#DAA520"),
		},
	)
}
