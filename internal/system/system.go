// Package system reports whether the host prefers a dark appearance.
package system

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvVar forces the reported appearance when set to "dark" or "light".
const EnvVar = "DUOTONE_SYSTEM_THEME"

// Provider reports the host's dark/light preference at call time.
type Provider interface {
	IsSystemDark() bool
}

// Static always reports the same answer.
type Static bool

// IsSystemDark returns s.
func (s Static) IsSystemDark() bool { return bool(s) }

// Func adapts a plain function to Provider.
type Func func() bool

// IsSystemDark calls f.
func (f Func) IsSystemDark() bool { return f() }

// Terminal detects darkness from the terminal background.
//
// Override ("dark" or "light") wins, then the DUOTONE_SYSTEM_THEME
// environment variable, then the terminal's reported background color.
//
// lipgloss queries the terminal background once per process and caches the
// answer, so only Override and the environment variable are re-read on each
// call. Set DUOTONE_SYSTEM_THEME to steer a long-running process.
type Terminal struct {
	Override string

	// hasDarkBackground is a test seam.
	hasDarkBackground func() bool
}

// IsSystemDark applies the precedence described on Terminal.
func (t Terminal) IsSystemDark() bool {
	if dark, ok := parse(t.Override); ok {
		return dark
	}
	if dark, ok := parse(os.Getenv(EnvVar)); ok {
		return dark
	}
	if t.hasDarkBackground != nil {
		return t.hasDarkBackground()
	}
	return lipgloss.HasDarkBackground()
}

func parse(v string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}
