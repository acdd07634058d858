package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("gruvbox", Gruvbox)
}

// Gruvbox is the retro groove scheme.
func Gruvbox() theme.Family {
	gray := lipgloss.Color("#928374")

	return pair("gruvbox", "Gruvbox",
		theme.Palette{
			Background: lipgloss.Color("#FBF1C7"),
			Surface:    lipgloss.Color("#EBDBB2"),
			Text:       lipgloss.Color("#3C3836"),
			Dim:        gray,
			Accent:     lipgloss.Color("#AF3A03"),
			Highlight:  lipgloss.Color("#427B58"),
			Border:     gray,
			Error:      lipgloss.Color("#9D0006"),
			Success:    lipgloss.Color("#79740E"),
			Warning:    lipgloss.Color("#B57614"),
		},
		theme.Palette{
			Background: lipgloss.Color("#282828"),
			Surface:    lipgloss.Color("#3C3836"),
			Text:       lipgloss.Color("#EBDBB2"),
			Dim:        gray,
			Accent:     lipgloss.Color("#FE8019"),
			Highlight:  lipgloss.Color("#8EC07C"),
			Border:     gray,
			Error:      lipgloss.Color("#FB4934"),
			Success:    lipgloss.Color("#B8BB26"),
			Warning:    lipgloss.Color("#FABD2F"),
		},
	)
}
