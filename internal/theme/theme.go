// Package theme defines theme definitions, light/dark families, and the
// registry that holds them.
package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrInvalidFamily is returned when a family's members do not form a
	// light/dark pair.
	ErrInvalidFamily = errors.New("invalid theme family")
	// ErrDuplicateTheme is returned when a family or theme ID is already registered.
	ErrDuplicateTheme = errors.New("duplicate theme")
)

// ThemeID names a theme or a family. The empty ID means none.
type ThemeID string

func (id ThemeID) String() string { return string(id) }

// Palette is the set of colors a theme paints with.
type Palette struct {
	IsDark     bool
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Dim        lipgloss.Color
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

// Definition is a concrete, named theme.
type Definition struct {
	ID      ThemeID
	Name    string
	Palette Palette
	Meta    map[string]string
}

// IsDefault reports whether the definition is marked with meta default=true.
func (d Definition) IsDefault() bool {
	return d.Meta["default"] == "true"
}

// Family pairs one light and one dark definition under a single name.
type Family struct {
	ID    ThemeID
	Name  string
	Light Definition
	Dark  Definition
}

// Validate checks the light/dark invariant and the member IDs.
func (f Family) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: empty family id", ErrInvalidFamily)
	}
	if f.Light.ID == "" || f.Dark.ID == "" {
		return fmt.Errorf("%w: family %q has a member without id", ErrInvalidFamily, f.ID)
	}
	if f.Light.ID == f.Dark.ID {
		return fmt.Errorf("%w: family %q uses %q for both members", ErrInvalidFamily, f.ID, f.Light.ID)
	}
	if f.Light.Palette.IsDark {
		return fmt.Errorf("%w: light member %q of %q has a dark palette", ErrInvalidFamily, f.Light.ID, f.ID)
	}
	if !f.Dark.Palette.IsDark {
		return fmt.Errorf("%w: dark member %q of %q has a light palette", ErrInvalidFamily, f.Dark.ID, f.ID)
	}
	return nil
}

// Variant returns the member matching isDark.
func (f Family) Variant(isDark bool) Definition {
	if isDark {
		return f.Dark
	}
	return f.Light
}

// Contains reports whether id names either member.
func (f Family) Contains(id ThemeID) bool {
	return f.Light.ID == id || f.Dark.ID == id
}

// Selection is the persisted user intent: a mode and an optional explicit theme.
type Selection struct {
	Mode     Mode
	Explicit ThemeID
}

// DefaultSelection follows the system with no explicit theme.
func DefaultSelection() Selection {
	return Selection{Mode: ModeSystem}
}

// WithMode returns a copy of s using mode.
func (s Selection) WithMode(mode Mode) Selection {
	s.Mode = mode
	return s
}

// WithExplicit returns a copy of s using id as the explicit theme.
func (s Selection) WithExplicit(id ThemeID) Selection {
	s.Explicit = id
	return s
}

// HasExplicit reports whether an explicit theme is set.
func (s Selection) HasExplicit() bool {
	return s.Explicit != ""
}

// State is a selection paired with the theme resolved from it. It is never persisted.
type State struct {
	Selection Selection
	Theme     Definition
}

// IsDark reports whether the resolved theme is dark.
func (s State) IsDark() bool {
	return s.Theme.Palette.IsDark
}
