// Package codex provides SQLite-based storage for the capture ledger:
// lifetime per-species capture counts and completed-run records.
package codex

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Ledger wraps a SQLite connection for capture bookkeeping.
type Ledger struct {
	conn *sqlx.DB
}

// Open opens or creates a ledger database at the given path.
func Open(path string) (*Ledger, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.conn.Close()
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS captures (
		species_id TEXT PRIMARY KEY,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		score INTEGER NOT NULL,
		ended_at TEXT NOT NULL
	);
	`
	_, err := l.conn.Exec(schema)
	return err
}

// RecordCapture increments the capture count for a species id.
func (l *Ledger) RecordCapture(speciesID string) error {
	_, err := l.conn.Exec(`INSERT INTO captures (species_id, count) VALUES (?, 1)
		ON CONFLICT(species_id) DO UPDATE SET count = count + 1`, speciesID)
	if err != nil {
		return fmt.Errorf("record capture %s: %w", speciesID, err)
	}
	return nil
}

// Count returns the capture count for a species id, 0 if never caught.
func (l *Ledger) Count(speciesID string) (int, error) {
	var count int
	err := l.conn.Get(&count, "SELECT count FROM captures WHERE species_id = ?", speciesID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", speciesID, err)
	}
	return count, nil
}

// TotalCaptures returns the lifetime capture count across all species.
func (l *Ledger) TotalCaptures() (int, error) {
	var total int
	err := l.conn.Get(&total, "SELECT COALESCE(SUM(count), 0) FROM captures")
	if err != nil {
		return 0, fmt.Errorf("total captures: %w", err)
	}
	return total, nil
}

// RunRecord is one completed run.
type RunRecord struct {
	ID         string `db:"id"`
	Seed       int64  `db:"seed"`
	Difficulty string `db:"difficulty"`
	Score      int    `db:"score"`
	EndedAt    string `db:"ended_at"`
}

// RecordRun stores a completed run and returns its generated id.
func (l *Ledger) RecordRun(seed int64, difficulty string, score int) (string, error) {
	id := uuid.NewString()
	_, err := l.conn.Exec(
		"INSERT INTO runs (id, seed, difficulty, score, ended_at) VALUES (?, ?, ?, ?, ?)",
		id, seed, difficulty, score, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the most recent runs, newest first.
func (l *Ledger) RecentRuns(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := l.conn.Select(&runs,
		"SELECT id, seed, difficulty, score, ended_at FROM runs ORDER BY ended_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	return runs, nil
}
