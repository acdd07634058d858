// Package picker is a terminal UI for choosing a theme mode and family.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/controller"
	"github.com/duotone/duotone/internal/theme"
	"github.com/sahilm/fuzzy"
)

const maxDisplay = 10

// Model is the picker's bubbletea model.
type Model struct {
	ctrl     *controller.Controller
	updates  <-chan theme.State
	cancel   func()
	noColor  bool
	state    theme.State
	families []theme.Family

	input    string
	matches  []fuzzy.Match
	selected int
	width    int
	height   int
}

type stateMsg theme.State

type closedMsg struct{}

// New subscribes to ctrl. The family the current theme belongs to is listed first.
func New(ctrl *controller.Controller, noColor bool) Model {
	updates, cancel := ctrl.Subscribe()
	var preferred theme.ThemeID
	if fam, ok := ctrl.CurrentFamily(); ok {
		preferred = fam.ID
	}
	return Model{
		ctrl:     ctrl,
		updates:  updates,
		cancel:   cancel,
		noColor:  noColor,
		state:    ctrl.State(),
		families: ctrl.AvailableThemeFamiliesInOrder(preferred),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForState(m.updates)
}

func waitForState(ch <-chan theme.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return stateMsg(st)
	}
}

// State returns the last state the picker observed.
func (m Model) State() theme.State {
	return m.state
}

// Input returns the current filter text.
func (m Model) Input() string {
	return m.input
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case stateMsg:
		m.state = theme.State(msg)
		return m, waitForState(m.updates)
	case closedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		return m, tea.Quit
	case "tab", "right":
		m.state = m.ctrl.SetMode(m.state.Selection.Mode.Next())
	case "shift+tab", "left":
		m.state = m.ctrl.SetMode(m.state.Selection.Mode.Prev())
	case "up":
		if m.selected > 0 {
			m.selected--
		}
	case "down":
		if m.selected < len(m.visible())-1 {
			m.selected++
		}
	case "enter":
		if fam, ok := m.SelectedFamily(); ok {
			m.state = m.ctrl.SetExplicitTheme(fam.Variant(m.state.IsDark()).ID)
		}
	case "ctrl+r":
		m.state = m.ctrl.SetExplicitTheme("")
	case "backspace":
		if m.input != "" {
			r := []rune(m.input)
			m.setInput(string(r[:len(r)-1]))
		}
	case " ":
		m.setInput(m.input + " ")
	default:
		if msg.Type == tea.KeyRunes {
			m.setInput(m.input + string(msg.Runes))
		}
	}
	return m, nil
}

func (m *Model) setInput(input string) {
	m.input = input
	m.selected = 0
	if input == "" {
		m.matches = nil
		return
	}
	names := make([]string, len(m.families))
	for i, f := range m.families {
		names[i] = f.Name
	}
	m.matches = fuzzy.Find(input, names)
}

func (m Model) visible() []theme.Family {
	if m.input == "" {
		return m.families
	}
	out := make([]theme.Family, len(m.matches))
	for i, match := range m.matches {
		out[i] = m.families[match.Index]
	}
	return out
}

// SelectedFamily returns the highlighted family.
func (m Model) SelectedFamily() (theme.Family, bool) {
	vis := m.visible()
	if m.selected < len(vis) {
		return vis[m.selected], true
	}
	return theme.Family{}, false
}

func (m Model) View() string {
	styles := m.state.Theme.Styles(m.noColor)
	var b strings.Builder

	b.WriteString(styles.Title.Render("  ═══ Theme ═══  "))
	b.WriteString("\n\n")

	for i, mode := range theme.Modes() {
		if i > 0 {
			b.WriteString("  ")
		}
		label := strings.ToUpper(mode.String()[:1]) + mode.String()[1:]
		if mode == m.state.Selection.Mode {
			b.WriteString(styles.Highlight.Render("[" + label + "]"))
		} else {
			b.WriteString(styles.Dim.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Render("Filter: " + m.input + "│"))
	b.WriteString("\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(styles.Dim.Render("  No matching themes"))
		b.WriteString("\n")
	}

	startIdx := 0
	if m.selected >= maxDisplay {
		startIdx = m.selected - maxDisplay + 1
	}
	endIdx := min(startIdx+maxDisplay, len(vis))

	for i := startIdx; i < endIdx; i++ {
		fam := vis[i]

		prefix := "   "
		if i == m.selected {
			prefix = styles.Highlight.Render(" ▸ ")
		}

		name := fam.Name
		if m.input != "" && i < len(m.matches) {
			name = highlightMatches(fam.Name, m.matches[i].MatchedIndexes, styles.Accent)
		}

		marker := ""
		if fam.Contains(m.state.Theme.ID) {
			marker = styles.Success.Render(" ●")
			if m.state.Selection.HasExplicit() {
				marker += styles.Dim.Render(" pinned")
			}
		}

		swatch := ""
		if !m.noColor {
			swatch = fam.Light.Palette.Swatch(2) + fam.Dark.Palette.Swatch(2) + " "
		}

		b.WriteString(prefix + swatch + styles.Text.Render(name) + marker)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %s · tab mode  ↑↓ move  enter apply  ctrl+r follow mode  esc close",
		m.state.Theme.Name)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.state.Theme.Palette.Border).
		Padding(1, 2)
	if m.noColor {
		box = box.UnsetBorderForeground()
	}
	content := box.Render(b.String())

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, content)
}

// highlightMatches highlights matched characters in a string.
func highlightMatches(s string, indices []int, style lipgloss.Style) string {
	if len(indices) == 0 {
		return s
	}
	matchSet := make(map[int]bool, len(indices))
	for _, idx := range indices {
		matchSet[idx] = true
	}

	var result strings.Builder
	for i, ch := range s {
		if matchSet[i] {
			result.WriteString(style.Render(string(ch)))
		} else {
			result.WriteRune(ch)
		}
	}
	return result.String()
}
