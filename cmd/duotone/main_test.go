package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/duotone/duotone/internal/controller"
	"github.com/duotone/duotone/internal/store"
	"github.com/duotone/duotone/internal/system"
	"github.com/duotone/duotone/internal/theme"
	"github.com/duotone/duotone/internal/theme/themes"
)

func newCtrl(t *testing.T, st store.Store) *controller.Controller {
	t.Helper()
	r, err := themes.Registry()
	if err != nil {
		t.Fatal(err)
	}
	c, err := controller.New(controller.Options{
		Registry:       r,
		Store:          st,
		System:         system.Static(false),
		DefaultThemeID: themes.DefaultID,
	})
	if err != nil {
		t.Fatal(err)
	}
	<-c.Loaded()
	return c
}

func TestApply(t *testing.T) {
	mem := store.NewMemory()
	c := newCtrl(t, mem)

	acted, err := apply(c, actions{Mode: "dark", Theme: "forest_light"})
	if err != nil || !acted {
		t.Fatalf("apply = %v, %v", acted, err)
	}
	if c.State().Theme.ID != "forest_dark" {
		t.Errorf("theme = %q, want forest_dark", c.State().Theme.ID)
	}
	c.Close()

	got, ok, err := mem.Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("Load: %v %v", ok, err)
	}
	if got != (theme.Selection{Mode: theme.ModeDark, Explicit: "forest_light"}) {
		t.Errorf("persisted %+v", got)
	}
}

func TestApplyErrors(t *testing.T) {
	c := newCtrl(t, store.NewMemory())
	defer c.Close()

	if _, err := apply(c, actions{Mode: "sepia"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := apply(c, actions{Theme: "nope"}); err == nil {
		t.Error("expected error for unknown theme")
	}
	if acted, err := apply(c, actions{}); acted || err != nil {
		t.Errorf("empty actions = %v, %v", acted, err)
	}
}

func TestApplyErrorLeavesSelectionUntouched(t *testing.T) {
	tests := []struct {
		name string
		a    actions
	}{
		{"valid mode, unknown theme", actions{Mode: "dark", Theme: "nope"}},
		{"unknown mode, valid theme", actions{Mode: "sepia", Theme: "nord_dark"}},
		{"reset, unknown theme", actions{Reset: true, Theme: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			saved := theme.Selection{Mode: theme.ModeLight, Explicit: "gruvbox_light"}
			if err := mem.Save(context.Background(), saved); err != nil {
				t.Fatal(err)
			}
			c := newCtrl(t, mem)

			acted, err := apply(c, tt.a)
			if err == nil || acted {
				t.Fatalf("apply = %v, %v; want error and nothing applied", acted, err)
			}
			if c.State().Selection != saved {
				t.Errorf("state changed to %+v", c.State().Selection)
			}
			c.Close()

			got, ok, err := mem.Load(context.Background())
			if err != nil || !ok {
				t.Fatalf("Load: %v %v", ok, err)
			}
			if got != saved {
				t.Errorf("persisted %+v, want %+v", got, saved)
			}
		})
	}
}

func TestApplyReset(t *testing.T) {
	c := newCtrl(t, store.NewMemory())
	defer c.Close()

	c.SetExplicitTheme("nord_light")
	if _, err := apply(c, actions{Reset: true}); err != nil {
		t.Fatal(err)
	}
	if c.State().Selection.HasExplicit() {
		t.Error("reset should clear the pinned theme")
	}
}

func TestListFamilies(t *testing.T) {
	c := newCtrl(t, store.NewMemory())
	defer c.Close()

	var buf bytes.Buffer
	listFamilies(&buf, c)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(themes.Families()) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "* ocean") {
			found = true
		}
	}
	if !found {
		t.Errorf("current family not marked:\n%s", buf.String())
	}
}

func TestPrintState(t *testing.T) {
	c := newCtrl(t, store.NewMemory())
	defer c.Close()
	c.SetExplicitTheme("gruvbox_dark")

	var buf bytes.Buffer
	printState(&buf, c.State(), true)
	out := buf.String()
	for _, want := range []string{"mode:     system", "pinned:   gruvbox_dark", "gruvbox_light", "appears:  light"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
