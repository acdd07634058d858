package controller

import (
	"log/slog"

	"github.com/duotone/duotone/internal/theme"
)

func (c *Controller) isDark(mode theme.Mode) bool {
	switch mode {
	case theme.ModeDark:
		return true
	case theme.ModeLight:
		return false
	default:
		return c.system.IsSystemDark()
	}
}

// resolve turns a selection into a concrete theme. An explicit theme whose
// darkness disagrees with the mode is swapped for its family sibling; one
// with no family is kept as-is.
func (c *Controller) resolve(sel theme.Selection) theme.State {
	dark := c.isDark(sel.Mode)

	var (
		candidate theme.Definition
		found     bool
	)
	if sel.HasExplicit() {
		candidate, found = c.registry.Get(sel.Explicit)
		if !found {
			c.logger.Debug("explicit theme not registered", slog.String("theme", string(sel.Explicit)))
		}
	}
	if !found {
		candidate = c.pickDefault(dark)
	}

	if candidate.Palette.IsDark != dark {
		if fam, ok := c.registry.FamilyOf(candidate.ID); ok {
			candidate = fam.Variant(dark)
		}
	}
	return theme.State{Selection: sel, Theme: candidate}
}

// pickDefault chooses, in order: the default family's member, the first
// definition of matching darkness marked default, the first of matching
// darkness, the default id itself, and finally the first registered.
func (c *Controller) pickDefault(dark bool) theme.Definition {
	if fam, ok := c.registry.Family(c.defaultID); ok {
		return fam.Variant(dark)
	}

	all := c.registry.All()
	for _, d := range all {
		if d.Palette.IsDark == dark && d.IsDefault() {
			return d
		}
	}
	for _, d := range all {
		if d.Palette.IsDark == dark {
			return d
		}
	}
	if d, ok := c.registry.Get(c.defaultID); ok {
		return d
	}
	return all[0]
}
