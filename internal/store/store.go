// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed event-profile data to a SQLite database
// in the cache directory, so parsed sheets can be inspected without
// re-reading the workbooks.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

const dbFile = "guidegen.db"

// Store manages the parsed-event SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the event database at cacheDir/guidegen.db and
// creates the schema if it does not exist.
func Open(cacheDir string) (*Store, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			source TEXT NOT NULL,
			sheet TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (source, sheet, position)
		)`,
		`CREATE TABLE IF NOT EXISTS event_rows (
			source TEXT NOT NULL,
			sheet TEXT NOT NULL,
			event TEXT NOT NULL,
			year INTEGER NOT NULL,
			p1 TEXT, p8 TEXT, p9 TEXT, p16 TEXT,
			f1 TEXT, f8 TEXT, f9 TEXT, f16 TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_event_rows_key ON event_rows(source, sheet, event)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// PutSheet replaces all stored events and rows for (source, sheet) with
// the given parse result. The write is transactional: a failure leaves
// the previously stored data intact.
func (s *Store) PutSheet(ctx context.Context, data types.SheetData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"events", "event_rows"} {
		q := fmt.Sprintf(`DELETE FROM %s WHERE source = ? AND sheet = ?`, table)
		if _, err := tx.ExecContext(ctx, q, data.Source, data.Sheet); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	evStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO events (source, sheet, position, name) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing event insert: %w", err)
	}
	defer evStmt.Close()

	rowStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO event_rows (source, sheet, event, year, p1, p8, p9, p16, f1, f8, f9, f16)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer rowStmt.Close()

	for pos, ev := range data.Events {
		if _, err := evStmt.ExecContext(ctx, data.Source, data.Sheet, pos, ev.Name); err != nil {
			return fmt.Errorf("inserting event %q: %w", ev.Name, err)
		}
		for _, r := range ev.Rows {
			_, err := rowStmt.ExecContext(ctx, data.Source, data.Sheet, ev.Name, r.Year,
				r.Prelims[0], r.Prelims[1], r.Prelims[2], r.Prelims[3],
				r.Finals[0], r.Finals[1], r.Finals[2], r.Finals[3])
			if err != nil {
				return fmt.Errorf("inserting row %q/%d: %w", ev.Name, r.Year, err)
			}
		}
	}

	return tx.Commit()
}

// EventSummary is one line of `guidegen events` output.
type EventSummary struct {
	Source    string `json:"source"`
	Sheet     string `json:"sheet"`
	Name      string `json:"name"`
	Seasons   int    `json:"seasons"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
}

// ListEvents returns stored events in parse order, optionally filtered
// by source and/or sheet. Empty filter values match everything.
func (s *Store) ListEvents(ctx context.Context, source, sheet string) ([]EventSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.source, e.sheet, e.name,
		        COUNT(r.year), COALESCE(MIN(r.year), 0), COALESCE(MAX(r.year), 0)
		 FROM events e
		 LEFT JOIN event_rows r
		   ON r.source = e.source AND r.sheet = e.sheet AND r.event = e.name
		 WHERE (? = '' OR e.source = ?) AND (? = '' OR e.sheet = ?)
		 GROUP BY e.source, e.sheet, e.position, e.name
		 ORDER BY e.source, e.sheet, e.position`,
		source, source, sheet, sheet)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var out []EventSummary
	for rows.Next() {
		var es EventSummary
		if err := rows.Scan(&es.Source, &es.Sheet, &es.Name, &es.Seasons, &es.FirstYear, &es.LastYear); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		out = append(out, es)
	}
	return out, rows.Err()
}
