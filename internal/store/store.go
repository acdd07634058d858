// Package store persists the user's theme selection.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/duotone/duotone/internal/config"
	"github.com/duotone/duotone/internal/theme"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store loads and saves a theme selection. Save replaces any prior value.
// Load reports false when nothing has been saved.
type Store interface {
	Load(ctx context.Context) (theme.Selection, bool, error)
	Save(ctx context.Context, sel theme.Selection) error
}

// Open builds the store named by cfg.Backend. The returned closer is never nil.
func Open(cfg config.StoreConfig) (Store, io.Closer, error) {
	switch cfg.Backend {
	case "sqlite":
		s, err := NewSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "file":
		path := cfg.Path
		if path == "" {
			dir, err := config.StateDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve state dir: %w", err)
			}
			path = filepath.Join(dir, "selection.toml")
		}
		return NewFile(path), nopCloser{}, nil
	case "memory":
		return NewMemory(), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Memory keeps the selection in process memory.
type Memory struct {
	mu  sync.Mutex
	sel theme.Selection
	ok  bool
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the held selection, or false before the first Save.
func (m *Memory) Load(ctx context.Context) (theme.Selection, bool, error) {
	if err := ctx.Err(); err != nil {
		return theme.Selection{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sel, m.ok, nil
}

// Save replaces the held selection.
func (m *Memory) Save(ctx context.Context, sel theme.Selection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sel, m.ok = sel, true
	return nil
}
