package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when parsing an unrecognised mode name.
var ErrUnknownMode = errors.New("unknown theme mode")

// Mode decides whether the light or dark member of a family is used.
type Mode int

const (
	ModeSystem Mode = iota
	ModeLight
	ModeDark
)

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{ModeSystem, ModeLight, ModeDark}
}

func (m Mode) String() string {
	switch m {
	case ModeSystem:
		return "system"
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "system", "light" or "dark" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system", "auto":
		return ModeSystem, nil
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return ModeSystem, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Next cycles system -> light -> dark -> system.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % 3)
}

// Prev cycles in the opposite direction to Next.
func (m Mode) Prev() Mode {
	return Mode((int(m) + 2) % 3)
}

// MarshalText encodes the mode as its name.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeSystem, ModeLight, ModeDark:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
}

// UnmarshalText accepts any name ParseMode does.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
