// Package prefs persists the small amount of durable viewer state: the
// theme preference and a short navigation history. Everything else in the
// viewer is ephemeral by design.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Theme modes. Light and dark are mutually exclusive; there is no "auto"
// stored value — absence of a stored theme means "follow the OS signal".
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store wraps a SQLite database holding viewer preferences.
type Store struct {
	*sql.DB
	path string
}

// Open creates or opens the preferences database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory store (useful for testing).
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	s := &Store{DB: sqlDB, path: ":memory:"}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS visits (
    id TEXT PRIMARY KEY,
    fragment TEXT NOT NULL,
    seen DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_visits_seen ON visits(seen DESC);
`

// Theme returns the persisted theme mode. The second return is false when
// no theme has ever been toggled, in which case the caller falls back to the
// OS light/dark signal.
func (s *Store) Theme() (string, bool, error) {
	var mode string
	err := s.QueryRow(`SELECT value FROM preferences WHERE key = 'theme'`).Scan(&mode)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading theme: %w", err)
	}
	return mode, true, nil
}

// SetTheme persists the theme mode. Called on every explicit toggle.
func (s *Store) SetTheme(mode string) error {
	if mode != ThemeLight && mode != ThemeDark {
		return fmt.Errorf("invalid theme mode %q", mode)
	}
	_, err := s.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES ('theme', ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		mode)
	if err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}

// Visit is one recorded navigation.
type Visit struct {
	ID       string
	Fragment string
	Seen     time.Time
}

// RecordVisit stores an applied navigation for the recently-viewed list.
func (s *Store) RecordVisit(fragment string) error {
	_, err := s.Exec(
		`INSERT INTO visits (id, fragment) VALUES (?, ?)`,
		uuid.NewString(), fragment)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Recent returns the n most recent distinct fragments, newest first.
func (s *Store) Recent(n int) ([]Visit, error) {
	rows, err := s.Query(
		`SELECT id, fragment, MAX(seen) AS last_seen FROM visits
		 GROUP BY fragment ORDER BY last_seen DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var seen string
		if err := rows.Scan(&v.ID, &v.Fragment, &seen); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		if t, perr := time.Parse("2006-01-02 15:04:05", seen); perr == nil {
			v.Seen = t
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
