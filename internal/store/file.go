package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/duotone/duotone/internal/theme"
	"github.com/pelletier/go-toml/v2"
)

// File persists the selection as a small TOML document.
type File struct {
	path string
	mu   sync.Mutex
}

type fileSelection struct {
	Mode  theme.Mode `toml:"mode"`
	Theme string     `toml:"theme,omitempty"`
}

// NewFile returns a File store backed by path. The file is created on first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load decodes the saved selection, or reports false when the file does not exist.
func (f *File) Load(ctx context.Context) (theme.Selection, bool, error) {
	if err := ctx.Err(); err != nil {
		return theme.Selection{}, false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return theme.Selection{}, false, nil
	}
	if err != nil {
		return theme.Selection{}, false, fmt.Errorf("read selection: %w", err)
	}

	var doc fileSelection
	if err := toml.Unmarshal(data, &doc); err != nil {
		return theme.Selection{}, false, fmt.Errorf("parse selection: %w", err)
	}
	return theme.Selection{Mode: doc.Mode, Explicit: theme.ThemeID(doc.Theme)}, true, nil
}

// Save writes to a temp file and renames it over the target.
func (f *File) Save(ctx context.Context, sel theme.Selection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := toml.Marshal(fileSelection{Mode: sel.Mode, Theme: string(sel.Explicit)})
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".selection-*.toml")
	if err != nil {
		return fmt.Errorf("create temp selection: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write selection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace selection: %w", err)
	}
	return nil
}
