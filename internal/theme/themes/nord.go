package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("nord", Nord)
}

// Nord is the arctic, north-bluish palette. The light variant sits on Snow
// Storm and the dark variant on Polar Night.
func Nord() theme.Family {
	// Polar Night
	nord0 := lipgloss.Color("#2E3440")
	nord1 := lipgloss.Color("#3B4252")
	nord3 := lipgloss.Color("#4C566A")
	// Snow Storm
	nord4 := lipgloss.Color("#D8DEE9")
	nord5 := lipgloss.Color("#E5E9F0")
	nord6 := lipgloss.Color("#ECEFF4")
	// Frost
	nord8 := lipgloss.Color("#88C0D0")
	nord10 := lipgloss.Color("#5E81AC")
	// Aurora
	nord11 := lipgloss.Color("#BF616A")
	nord12 := lipgloss.Color("#D08770")
	nord13 := lipgloss.Color("#EBCB8B")
	nord14 := lipgloss.Color("#A3BE8C")

	return pair("nord", "Nord",
		theme.Palette{
			Background: nord6, Surface: nord5, Text: nord0, Dim: nord3,
			Accent: nord10, Highlight: nord1, Border: nord4,
			Error: nord11, Success: nord14, Warning: nord12,
		},
		theme.Palette{
			Background: nord0, Surface: nord1, Text: nord4, Dim: nord3,
			Accent: nord8, Highlight: nord6, Border: nord3,
			Error: nord11, Success: nord14, Warning: nord13,
		},
	)
}
