package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
)

func init() {
	register("solarized", Solarized)
}

// Solarized follows Ethan Schoonover's base/accent split: both variants share
// the accents and swap the base tones.
func Solarized() theme.Family {
	base03 := lipgloss.Color("#002B36")
	base02 := lipgloss.Color("#073642")
	base01 := lipgloss.Color("#586E75")
	base00 := lipgloss.Color("#657B83")
	base0 := lipgloss.Color("#839496")
	base1 := lipgloss.Color("#93A1A1")
	base2 := lipgloss.Color("#EEE8D5")
	base3 := lipgloss.Color("#FDF6E3")
	yellow := lipgloss.Color("#B58900")
	orange := lipgloss.Color("#CB4B16")
	red := lipgloss.Color("#DC322F")
	blue := lipgloss.Color("#268BD2")
	cyan := lipgloss.Color("#2AA198")
	green := lipgloss.Color("#859900")

	accents := func(p theme.Palette) theme.Palette {
		p.Accent = blue
		p.Highlight = yellow
		p.Error = red
		p.Success = green
		p.Warning = orange
		return p
	}

	return pair("solarized", "Solarized",
		accents(theme.Palette{Background: base3, Surface: base2, Text: base00, Dim: base1, Border: cyan}),
		accents(theme.Palette{Background: base03, Surface: base02, Text: base0, Dim: base01, Border: cyan}),
	)
}
