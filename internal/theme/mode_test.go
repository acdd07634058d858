package theme

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"system", ModeSystem, false},
		{"auto", ModeSystem, false},
		{"Light", ModeLight, false},
		{" dark ", ModeDark, false},
		{"dim", ModeSystem, true},
		{"", ModeSystem, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownMode) {
				t.Errorf("expected ErrUnknownMode, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeCycle(t *testing.T) {
	m := ModeSystem
	for _, want := range []Mode{ModeLight, ModeDark, ModeSystem} {
		m = m.Next()
		if m != want {
			t.Fatalf("Next() = %v, want %v", m, want)
		}
	}
	if ModeSystem.Prev() != ModeDark {
		t.Errorf("ModeSystem.Prev() = %v", ModeSystem.Prev())
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var back Mode
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != m {
			t.Errorf("text round trip %v -> %q -> %v", m, b, back)
		}
	}
	if _, err := Mode(9).MarshalText(); err == nil {
		t.Error("expected error for out-of-range mode")
	}
}
