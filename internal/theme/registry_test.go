package theme

import (
	"errors"
	"testing"
)

func TestRegistryRegisterFamilies(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterFamilies(fam("ocean"), fam("forest")); err != nil {
		t.Fatalf("RegisterFamilies: %v", err)
	}

	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}

	wantOrder := []ThemeID{"ocean_light", "ocean_dark", "forest_light", "forest_dark"}
	all := r.All()
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].ID, id)
		}
	}

	fams := r.Families()
	if len(fams) != 2 || fams[0].ID != "ocean" || fams[1].ID != "forest" {
		t.Errorf("Families() = %+v", fams)
	}

	if _, ok := r.Get("ocean_dark"); !ok {
		t.Error("Get(ocean_dark) not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}

	f, ok := r.FamilyOf("forest_light")
	if !ok || f.ID != "forest" {
		t.Errorf("FamilyOf(forest_light) = %q, %v", f.ID, ok)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterFamily(fam("ocean")); err != nil {
		t.Fatalf("RegisterFamily: %v", err)
	}

	if err := r.RegisterFamily(fam("ocean")); !errors.Is(err, ErrDuplicateTheme) {
		t.Errorf("duplicate family: got %v", err)
	}

	clash := fam("sea")
	clash.Dark.ID = "ocean_dark"
	if err := r.RegisterFamily(clash); !errors.Is(err, ErrDuplicateTheme) {
		t.Errorf("duplicate member: got %v", err)
	}
	if _, ok := r.Family("sea"); ok {
		t.Error("rejected family must not be partially registered")
	}

	if err := r.RegisterTheme(def("ocean_light", false, nil)); !errors.Is(err, ErrDuplicateTheme) {
		t.Errorf("duplicate standalone theme: got %v", err)
	}
}

func TestRegistryRejectsInvalidFamily(t *testing.T) {
	r := NewRegistry()
	bad := fam("ocean")
	bad.Dark.Palette.IsDark = false
	if err := r.RegisterFamily(bad); !errors.Is(err, ErrInvalidFamily) {
		t.Errorf("expected ErrInvalidFamily, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after rejected family", r.Len())
	}
}

func TestRegistryStandaloneTheme(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterTheme(def("contrast", true, nil)); err != nil {
		t.Fatalf("RegisterTheme: %v", err)
	}
	if _, ok := r.FamilyOf("contrast"); ok {
		t.Error("standalone theme should have no family")
	}
	if len(r.Families()) != 0 {
		t.Error("standalone theme should not create a family")
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	r := NewRegistry()
	_ = r.RegisterFamily(fam("ocean"))
	all := r.All()
	all[0] = Definition{}
	if r.All()[0].ID != "ocean_light" {
		t.Error("All() must return a copy")
	}
}

func TestNilRegistryLen(t *testing.T) {
	var r *Registry
	if r.Len() != 0 {
		t.Error("nil registry should have zero length")
	}
}
