// Package store implements the write-through operation journal.
//
// The journal is a side effect only: engines append one row per successful
// mutating tool call (and per successful export_paths call) and never read
// anything back, so a broken or absent
// journal can never change service behaviour. Backed by SQLite.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Journal appends operation records to a SQLite database.
type Journal struct {
	db      *sql.DB
	service string
}

// Open creates (or connects to) the journal database. databaseURL "memory"
// selects an in-memory database; anything else is passed to the driver as a
// DSN.
func Open(service, databaseURL string) (*Journal, error) {
	dsn := databaseURL
	if databaseURL == "" || databaseURL == "memory" {
		dsn = ":memory:"
	}

	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}
	if dsn == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	j := &Journal{db: db, service: service}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS operations (
			id TEXT PRIMARY KEY,
			service TEXT NOT NULL,
			session_id TEXT NOT NULL,
			operation TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_operations_session
			ON operations(session_id, created_at);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("migrating journal schema: %w", err)
	}
	return nil
}

// Record appends one operation row. Safe on a nil journal; failures are
// returned for logging but callers must not let them affect the operation
// outcome.
func (j *Journal) Record(sessionID, operation, detail string) error {
	if j == nil {
		return nil
	}
	_, err := j.db.Exec(
		`INSERT INTO operations (id, service, session_id, operation, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), j.service, sessionID, operation, detail,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", operation, err)
	}
	return nil
}

// Count returns the number of journalled operations for a session. Used by
// tests; the engines themselves never read the journal.
func (j *Journal) Count(sessionID string) (int, error) {
	if j == nil {
		return 0, nil
	}
	row := j.db.QueryRow(
		`SELECT COUNT(*) FROM operations WHERE session_id = ?`, sessionID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting journal rows: %w", err)
	}
	return n, nil
}

// Close releases the database handle. Safe on a nil journal.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}
