package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/duotone/duotone/internal/config"
	"github.com/duotone/duotone/internal/theme"
	_ "modernc.org/sqlite"
)

// SQLite persists the selection in a single-row SQLite table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath.
// If dbPath is empty, uses the default location.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		dir, err := config.StateDir()
		if err != nil {
			return nil, fmt.Errorf("resolve theme db path: %w", err)
		}
		dbPath = filepath.Join(dir, "theme.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open theme db: %w", err)
	}
	// Overlapping saves would otherwise return SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) ensureSchema(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS theme_selection (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		mode TEXT NOT NULL,
		explicit_id TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate theme schema: %w", err)
	}
	return nil
}

// Load returns the saved selection, or false when no row exists yet.
func (s *SQLite) Load(ctx context.Context) (theme.Selection, bool, error) {
	var mode, explicit string
	err := s.db.QueryRowContext(ctx,
		`SELECT mode, explicit_id FROM theme_selection WHERE id = 1`).
		Scan(&mode, &explicit)
	if errors.Is(err, sql.ErrNoRows) {
		return theme.Selection{}, false, nil
	}
	if err != nil {
		return theme.Selection{}, false, fmt.Errorf("load theme selection: %w", err)
	}

	m, err := theme.ParseMode(mode)
	if err != nil {
		return theme.Selection{}, false, fmt.Errorf("load theme selection: %w", err)
	}
	return theme.Selection{Mode: m, Explicit: theme.ThemeID(explicit)}, true, nil
}

// Save upserts the selection row.
func (s *SQLite) Save(ctx context.Context, sel theme.Selection) error {
	mode, err := sel.Mode.MarshalText()
	if err != nil {
		return fmt.Errorf("save theme selection: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO theme_selection (id, mode, explicit_id, updated_at)
		 VALUES (1, ?, ?, strftime('%s','now'))
		 ON CONFLICT(id) DO UPDATE SET
			mode = excluded.mode,
			explicit_id = excluded.explicit_id,
			updated_at = excluded.updated_at`,
		string(mode), string(sel.Explicit))
	if err != nil {
		return fmt.Errorf("save theme selection: %w", err)
	}
	return nil
}

// Clear removes the persisted selection.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM theme_selection`); err != nil {
		return fmt.Errorf("clear theme selection: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
