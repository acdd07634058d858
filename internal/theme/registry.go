package theme

import "fmt"

// Registry maps theme IDs to definitions and family IDs to light/dark pairs.
// It is populated once at startup and is not safe for concurrent mutation.
type Registry struct {
	defs     map[ThemeID]Definition
	order    []ThemeID
	families map[ThemeID]Family
	famOrder []ThemeID
	owner    map[ThemeID]ThemeID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[ThemeID]Definition),
		families: make(map[ThemeID]Family),
		owner:    make(map[ThemeID]ThemeID),
	}
}

// RegisterFamily adds a family and both of its members.
func (r *Registry) RegisterFamily(f Family) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, ok := r.families[f.ID]; ok {
		return fmt.Errorf("%w: family %q", ErrDuplicateTheme, f.ID)
	}
	for _, id := range []ThemeID{f.Light.ID, f.Dark.ID} {
		if _, ok := r.defs[id]; ok {
			return fmt.Errorf("%w: theme %q", ErrDuplicateTheme, id)
		}
	}

	r.families[f.ID] = f
	r.famOrder = append(r.famOrder, f.ID)
	for _, d := range []Definition{f.Light, f.Dark} {
		r.defs[d.ID] = d
		r.order = append(r.order, d.ID)
		r.owner[d.ID] = f.ID
	}
	return nil
}

// RegisterFamilies adds each family in order, stopping at the first error.
func (r *Registry) RegisterFamilies(fs ...Family) error {
	for _, f := range fs {
		if err := r.RegisterFamily(f); err != nil {
			return err
		}
	}
	return nil
}

// RegisterTheme adds a standalone definition that belongs to no family.
func (r *Registry) RegisterTheme(d Definition) error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty theme id", ErrInvalidFamily)
	}
	if _, ok := r.defs[d.ID]; ok {
		return fmt.Errorf("%w: theme %q", ErrDuplicateTheme, d.ID)
	}
	r.defs[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Get returns the definition for id.
func (r *Registry) Get(id ThemeID) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Family returns the family registered under id.
func (r *Registry) Family(id ThemeID) (Family, bool) {
	f, ok := r.families[id]
	return f, ok
}

// FamilyOf returns the family owning the theme id.
func (r *Registry) FamilyOf(id ThemeID) (Family, bool) {
	famID, ok := r.owner[id]
	if !ok {
		return Family{}, false
	}
	return r.Family(famID)
}

// All returns every definition in registration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Families returns every family in registration order.
func (r *Registry) Families() []Family {
	out := make([]Family, 0, len(r.famOrder))
	for _, id := range r.famOrder {
		out = append(out, r.families[id])
	}
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
