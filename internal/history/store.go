// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch outcomes across runs. The CSV report
// stays the authoritative surface for a single run; the database is the
// cross-run record.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookpress/pkg/types"
)

const dbFile = "history.db"

// Store manages the outcome history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database under outDir, creating the
// schema if it does not exist.
func Open(outDir string) (*Store, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	dbPath := filepath.Join(outDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_at TEXT NOT NULL,
		file TEXT NOT NULL,
		type TEXT,
		status TEXT NOT NULL,
		book TEXT
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_outcomes_file ON outcomes(file)`)
	return err
}

// RecordRun inserts one row per outcome, all sharing the run timestamp.
func (s *Store) RecordRun(ctx context.Context, at time.Time, outcomes []types.Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO outcomes (run_at, file, type, status, book) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	runAt := at.UTC().Format(time.RFC3339)
	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, runAt, o.File, o.Type, o.Status, o.Book); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting outcome for %s: %w", o.File, err)
		}
	}
	return tx.Commit()
}

// Entry is one recorded outcome row.
type Entry struct {
	RunAt  string
	File   string
	Type   string
	Status string
	Book   string
}

// Recent returns up to n outcome rows, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_at, file, type, status, book FROM outcomes ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunAt, &e.File, &e.Type, &e.Status, &e.Book); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
