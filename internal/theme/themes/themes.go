// Package themes provides the built-in light/dark theme families.
package themes

import (
	"sort"

	"github.com/duotone/duotone/internal/theme"
)

// DefaultID is the family used when nothing else is configured.
const DefaultID theme.ThemeID = "ocean"

// catalogue maps family IDs to constructors.
var catalogue = make(map[theme.ThemeID]func() theme.Family)

func register(id theme.ThemeID, fn func() theme.Family) {
	catalogue[id] = fn
}

// Families returns every built-in family sorted by ID.
func Families() []theme.Family {
	ids := make([]string, 0, len(catalogue))
	for id := range catalogue {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	out := make([]theme.Family, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalogue[theme.ThemeID(id)]())
	}
	return out
}

// Registry returns a registry holding every built-in family followed by extra.
func Registry(extra ...theme.Family) (*theme.Registry, error) {
	r := theme.NewRegistry()
	if err := r.RegisterFamilies(Families()...); err != nil {
		return nil, err
	}
	if err := r.RegisterFamilies(extra...); err != nil {
		return nil, err
	}
	return r, nil
}

// pair builds a family whose members are named "<id>_light" and "<id>_dark".
func pair(id theme.ThemeID, name string, light, dark theme.Palette) theme.Family {
	light.IsDark = false
	dark.IsDark = true
	return theme.Family{
		ID:   id,
		Name: name,
		Light: theme.Definition{
			ID:      id + "_light",
			Name:    name + " Light",
			Palette: light,
			Meta:    map[string]string{"family": string(id)},
		},
		Dark: theme.Definition{
			ID:      id + "_dark",
			Name:    name + " Dark",
			Palette: dark,
			Meta:    map[string]string{"family": string(id)},
		},
	}
}
