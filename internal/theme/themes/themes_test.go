package themes

import (
	"testing"

	"github.com/duotone/duotone/internal/theme"
)

func TestFamiliesValid(t *testing.T) {
	for _, f := range Families() {
		t.Run(string(f.ID), func(t *testing.T) {
			if err := f.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if f.Light.ID != f.ID+"_light" || f.Dark.ID != f.ID+"_dark" {
				t.Errorf("unexpected member ids %q/%q", f.Light.ID, f.Dark.ID)
			}
			if f.Light.Palette.Background == "" || f.Dark.Palette.Background == "" {
				t.Error("members need a background color")
			}
		})
	}
}

func TestFamiliesSorted(t *testing.T) {
	fams := Families()
	want := []theme.ThemeID{"forest", "gruvbox", "mono", "nord", "ocean", "solarized"}
	if len(fams) != len(want) {
		t.Fatalf("Families() returned %d, want %d", len(fams), len(want))
	}
	for i := range want {
		if fams[i].ID != want[i] {
			t.Errorf("Families()[%d] = %q, want %q", i, fams[i].ID, want[i])
		}
	}
}

func TestRegistryIncludesDefault(t *testing.T) {
	r, err := Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if _, ok := r.Family(DefaultID); !ok {
		t.Errorf("default family %q not registered", DefaultID)
	}
	if r.Len() != 2*len(Families()) {
		t.Errorf("Len() = %d, want %d", r.Len(), 2*len(Families()))
	}
}

func TestRegistryExtraConflict(t *testing.T) {
	if _, err := Registry(Ocean()); err == nil {
		t.Error("registering a built-in twice should fail")
	}
}
