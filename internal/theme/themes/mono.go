package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("mono", Monochrome)
}

// Monochrome is grayscale only.
func Monochrome() theme.Family {
	return pair("mono", "Monochrome",
		theme.Palette{
			Background: lipgloss.Color("#FFFFFF"),
			Surface:    lipgloss.Color("#EEEEEE"),
			Text:       lipgloss.Color("#222222"),
			Dim:        lipgloss.Color("#888888"),
			Accent:     lipgloss.Color("#000000"),
			Highlight:  lipgloss.Color("#000000"),
			Border:     lipgloss.Color("#AAAAAA"),
			Error:      lipgloss.Color("#000000"),
			Success:    lipgloss.Color("#444444"),
			Warning:    lipgloss.Color("#555555"),
		},
		theme.Palette{
			Background: lipgloss.Color("#111111"),
			Surface:    lipgloss.Color("#222222"),
			Text:       lipgloss.Color("#CCCCCC"),
			Dim:        lipgloss.Color("#666666"),
			Accent:     lipgloss.Color("#FFFFFF"),
			Highlight:  lipgloss.Color("#FFFFFF"),
			Border:     lipgloss.Color("#888888"),
			Error:      lipgloss.Color("#FFFFFF"),
			Success:    lipgloss.Color("#CCCCCC"),
			Warning:    lipgloss.Color("#AAAAAA"),
		},
	)
}
