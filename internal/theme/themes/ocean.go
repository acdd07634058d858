package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("ocean", Ocean)
}

// Ocean is a deep blue sea theme with a pale seafoam day variant.
func Ocean() theme.Family {
	seafoam := lipgloss.Color("#20B2AA")
	aqua := lipgloss.Color("#00CED1")
	teal := lipgloss.Color("#008B8B")
	coral := lipgloss.Color("#FF7F50")
	sand := lipgloss.Color("#F4A460")

	return pair("ocean", "Ocean",
		theme.Palette{
			Background: lipgloss.Color("#F0FAFB"),
			Surface:    lipgloss.Color("#DDF2F4"),
			Text:       lipgloss.Color("#0B3C49"),
			Dim:        lipgloss.Color("#5F8A93"),
			Accent:     teal,
			Highlight:  lipgloss.Color("#006D77"),
			Border:     seafoam,
			Error:      lipgloss.Color("#C8553D"),
			Success:    lipgloss.Color("#2A9D8F"),
			Warning:    lipgloss.Color("#B5651D"),
		},
		theme.Palette{
			Background: lipgloss.Color("#00112B"),
			Surface:    lipgloss.Color("#00008B"),
			Text:       seafoam,
			Dim:        lipgloss.Color("#000080"),
			Accent:     aqua,
			Highlight:  aqua,
			Border:     teal,
			Error:      coral,
			Success:    seafoam,
			Warning:    sand,
		},
	)
}
