package theme

import "github.com/charmbracelet/lipgloss"

// Styles is a ready-to-render style bundle derived from a palette.
type Styles struct {
	Accent    lipgloss.Style
	Dim       lipgloss.Style
	Text      lipgloss.Style
	Title     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Border    lipgloss.Style
	Highlight lipgloss.Style
	Surface   lipgloss.Style
}

// Styles builds the style bundle for d. With noColor set only bold,
// underline and reverse are used.
func (d Definition) Styles(noColor bool) Styles {
	if noColor {
		return noColorStyles()
	}
	p := d.Palette
	base := lipgloss.NewStyle()
	return Styles{
		Accent:    base.Foreground(p.Accent).Bold(true),
		Dim:       base.Foreground(p.Dim),
		Text:      base.Foreground(p.Text),
		Title:     base.Foreground(p.Accent).Bold(true),
		Error:     base.Foreground(p.Error).Bold(true),
		Success:   base.Foreground(p.Success).Bold(true),
		Warning:   base.Foreground(p.Warning).Bold(true),
		Border:    base.Foreground(p.Border),
		Highlight: base.Foreground(p.Highlight).Bold(true).Underline(true),
		Surface:   base.Background(p.Surface).Foreground(p.Text),
	}
}

func noColorStyles() Styles {
	reset := lipgloss.NewStyle()
	return Styles{
		Accent:    reset.Bold(true),
		Dim:       reset,
		Text:      reset,
		Title:     reset.Bold(true),
		Error:     reset.Bold(true),
		Success:   reset.Bold(true),
		Warning:   reset.Bold(true),
		Border:    reset,
		Highlight: reset.Reverse(true),
		Surface:   reset,
	}
}

// Swatch renders a small block in the palette's background with its accent
// as the foreground.
func (p Palette) Swatch(width int) string {
	if width <= 0 {
		width = 2
	}
	block := make([]rune, width)
	for i := range block {
		block[i] = '▌'
	}
	return lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Accent).
		Render(string(block))
}
