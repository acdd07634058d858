package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/duotone/duotone/internal/theme"
	"github.com/pelletier/go-toml/v2"
)

// Config holds duotone runtime configuration loaded from TOML.
type Config struct {
	Theme    ThemeConfig    `toml:"theme"`
	Store    StoreConfig    `toml:"store"`
	System   SystemConfig   `toml:"system"`
	Log      LogConfig      `toml:"log"`
	Families []FamilyConfig `toml:"families"`
}

// ThemeConfig holds theme selection defaults.
type ThemeConfig struct {
	Default string `toml:"default"`
	NoColor bool   `toml:"no_color"`
}

// StoreConfig selects where the theme selection is persisted.
type StoreConfig struct {
	Backend string `toml:"backend"` // sqlite, file, memory
	Path    string `toml:"path"`
}

// SystemConfig controls system appearance detection.
type SystemConfig struct {
	Mode string `toml:"mode"` // auto, dark, light
}

// LogConfig selects the minimum slog level written to the log file.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// FamilyConfig declares a custom light/dark family.
type FamilyConfig struct {
	ID    string        `toml:"id"`
	Name  string        `toml:"name"`
	Light PaletteConfig `toml:"light"`
	Dark  PaletteConfig `toml:"dark"`
}

// PaletteConfig declares one family member. Colors are hex strings.
type PaletteConfig struct {
	ID         string            `toml:"id"`
	Name       string            `toml:"name"`
	Background string            `toml:"background"`
	Surface    string            `toml:"surface"`
	Text       string            `toml:"text"`
	Dim        string            `toml:"dim"`
	Accent     string            `toml:"accent"`
	Highlight  string            `toml:"highlight"`
	Border     string            `toml:"border"`
	Error      string            `toml:"error"`
	Success    string            `toml:"success"`
	Warning    string            `toml:"warning"`
	Meta       map[string]string `toml:"meta"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load reads configuration from disk. If path is empty, a default OS-specific
// location is used and a missing file there yields Default. An explicit path
// must exist.
func Load(path string) (*Config, string, error) {
	cfgPath := path
	if cfgPath == "" {
		var err error
		cfgPath, err = defaultPath()
		if err != nil {
			return nil, "", fmt.Errorf("resolve config path: %w", err)
		}
	}

	data, err := os.ReadFile(cfgPath)
	if errors.Is(err, os.ErrNotExist) && path == "" {
		return Default(), cfgPath, nil
	}
	if err != nil {
		return nil, cfgPath, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, cfgPath, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(cfg); err != nil {
		return nil, cfgPath, err
	}

	return &cfg, cfgPath, nil
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	name := "duotone"
	if runtime.GOOS == "windows" {
		name = "Duotone"
	}
	return filepath.Join(dir, name, "config.toml"), nil
}

// StateDir returns the directory holding logs and persisted state.
func StateDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	name := "duotone"
	if runtime.GOOS == "windows" {
		name = "Duotone"
	}
	return filepath.Join(dir, name, "state"), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme.Default == "" {
		cfg.Theme.Default = "ocean"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "sqlite"
	}
	if cfg.System.Mode == "" {
		cfg.System.Mode = "auto"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	for i := range cfg.Families {
		f := &cfg.Families[i]
		if f.Name == "" {
			f.Name = f.ID
		}
		if f.Light.ID == "" {
			f.Light.ID = f.ID + "_light"
		}
		if f.Dark.ID == "" {
			f.Dark.ID = f.ID + "_dark"
		}
		if f.Light.Name == "" {
			f.Light.Name = f.Name + " Light"
		}
		if f.Dark.Name == "" {
			f.Dark.Name = f.Name + " Dark"
		}
	}
}

// Validate performs semantic validation of config.
func Validate(cfg Config) error {
	switch cfg.Store.Backend {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("store.backend %q must be sqlite, file or memory", cfg.Store.Backend)
	}
	switch strings.ToLower(cfg.System.Mode) {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("system.mode %q must be auto, dark or light", cfg.System.Mode)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, f := range cfg.Families {
		if f.ID == "" {
			return errors.New("families.id is required")
		}
		if seen[f.ID] {
			return fmt.Errorf("family %q declared twice", f.ID)
		}
		seen[f.ID] = true
		for _, p := range []PaletteConfig{f.Light, f.Dark} {
			if err := validatePalette(f.ID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePalette(family string, p PaletteConfig) error {
	if p.Background == "" || p.Text == "" || p.Accent == "" {
		return fmt.Errorf("family %q member %q: background, text and accent are required", family, p.ID)
	}
	colors := map[string]string{
		"background": p.Background, "surface": p.Surface, "text": p.Text, "dim": p.Dim,
		"accent": p.Accent, "highlight": p.Highlight, "border": p.Border,
		"error": p.Error, "success": p.Success, "warning": p.Warning,
	}
	for field, c := range colors {
		if c != "" && !isHexColor(c) {
			return fmt.Errorf("family %q member %q: %s %q is not a hex color", family, p.ID, field, c)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", s, err)
	}
	return level, nil
}

// DefaultThemeID returns the configured default family or theme id.
func (c Config) DefaultThemeID() theme.ThemeID {
	return theme.ThemeID(c.Theme.Default)
}

// ThemeFamilies converts the custom families into theme families.
func (c Config) ThemeFamilies() []theme.Family {
	out := make([]theme.Family, 0, len(c.Families))
	for _, f := range c.Families {
		out = append(out, theme.Family{
			ID:    theme.ThemeID(f.ID),
			Name:  f.Name,
			Light: f.Light.definition(false),
			Dark:  f.Dark.definition(true),
		})
	}
	return out
}

func (p PaletteConfig) definition(dark bool) theme.Definition {
	or := func(v, fallback string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(v)
	}
	return theme.Definition{
		ID:   theme.ThemeID(p.ID),
		Name: p.Name,
		Palette: theme.Palette{
			IsDark:     dark,
			Background: lipgloss.Color(p.Background),
			Surface:    or(p.Surface, p.Background),
			Text:       lipgloss.Color(p.Text),
			Dim:        or(p.Dim, p.Text),
			Accent:     lipgloss.Color(p.Accent),
			Highlight:  or(p.Highlight, p.Accent),
			Border:     or(p.Border, p.Accent),
			Error:      or(p.Error, p.Accent),
			Success:    or(p.Success, p.Accent),
			Warning:    or(p.Warning, p.Accent),
		},
		Meta: p.Meta,
	}
}
