// Package history persists visited pages so the home page can offer a
// "Recently viewed" list across sessions.
package history

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit bounds the rows kept per path listing.
const DefaultLimit = 5

// Visit is one page view.
type Visit struct {
	Path      string
	Title     string
	VisitedAt time.Time
}

// Store handles visit persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// TryOpen opens the store, logging instead of failing. A nil store disables
// history for the session.
func TryOpen(path string) *Store {
	s, err := Open(path)
	if err != nil {
		log.Printf("Warning: could not open history database: %v", err)
		return nil
	}
	return s
}

// DefaultPath returns ~/.local/share/bmdocs/history.db, or a relative path
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bmdocs", "history.db")
	}
	return filepath.Join(home, ".local", "share", "bmdocs", "history.db")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		visited_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a visit to path.
func (s *Store) Record(path, title string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("record visit: empty path")
	}
	_, err := s.db.Exec(`
		INSERT INTO visits (path, title, visited_at)
		VALUES (?, ?, ?)
	`, path, title, s.now().UnixNano())
	return err
}

// Recent returns up to limit distinct paths, most recently visited first.
// The title is the one recorded with the latest visit.
func (s *Store) Recent(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.Query(`
		SELECT v.path, v.title, v.visited_at
		FROM visits v
		JOIN (
			SELECT path, MAX(id) AS last_id
			FROM visits
			GROUP BY path
		) latest ON latest.last_id = v.id
		ORDER BY v.visited_at DESC, v.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var nanos int64
		if err := rows.Scan(&v.Path, &v.Title, &nanos); err != nil {
			return nil, err
		}
		v.VisitedAt = time.Unix(0, nanos)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Count returns the total number of recorded visits.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&n)
	return n, err
}

// Clear deletes all visits.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM visits`)
	return err
}
