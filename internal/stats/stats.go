// Package stats keeps a local ledger of past widget sessions.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the session ledger, backed by a local SQLite file. A nil
// Store is safe to use: every method is a no-op, so a failed Open can
// simply be logged and ignored.
type Store struct {
	db *sql.DB
}

// Open creates or opens the ledger at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create stats dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started DATETIME NOT NULL,
		ended DATETIME NOT NULL,
		score INTEGER NOT NULL,
		currency INTEGER NOT NULL,
		collections INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}
	return &Store{db: db}, nil
}

// RecordSession appends one row for a finished session.
func (s *Store) RecordSession(started, ended time.Time, score, currency, collections int) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (started, ended, score, currency, collections) VALUES (?, ?, ?, ?, ?)`,
		started, ended, score, currency, collections,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// BestScore returns the highest session score on record, 0 if none.
func (s *Store) BestScore() (int, error) {
	if s == nil {
		return 0, nil
	}
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM sessions`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	return best, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
