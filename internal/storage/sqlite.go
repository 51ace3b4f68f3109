// Package storage keeps the history of finished rounds in an in-memory SQLite
// database. Nothing is written to disk: the history lives as long as the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Round outcomes as stored.
const (
	OutcomeXWins = "x"
	OutcomeOWins = "o"
	OutcomeDraw  = "draw"
)

// Store manages the in-memory round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        string
	Outcome   string // OutcomeXWins, OutcomeOWins or OutcomeDraw
	Turns     int
	Board     string // Final position, three rows joined by newlines
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the round was played.
func (r RoundRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Tally is the win count over all recorded rounds.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Rounds returns the number of recorded rounds.
func (t Tally) Rounds() int {
	return t.XWins + t.OWins + t.Draws
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL CHECK (outcome IN ('x', 'o', 'draw')),
			turns INTEGER NOT NULL,
			board TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, dropping the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its generated ID.
func (s *Store) SaveRound(rec RoundRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, outcome, turns, board, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Outcome, rec.Turns, rec.Board,
		rec.StartedAt.UnixMilli(), rec.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return rec.ID, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, turns, board, started_at, ended_at
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var started, ended int64
		if err := rows.Scan(&r.ID, &r.Outcome, &r.Turns, &r.Board, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Tally counts outcomes over all recorded rounds.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN outcome = 'x' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'o' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'draw' THEN 1 ELSE 0 END), 0)
		 FROM rounds`,
	).Scan(&t.XWins, &t.OWins, &t.Draws)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	return t, nil
}

// AverageTurns returns the mean number of turns per round, 0 when empty.
func (s *Store) AverageTurns() (float64, error) {
	var avg sql.NullFloat64
	if err := s.db.QueryRow("SELECT AVG(turns) FROM rounds").Scan(&avg); err != nil {
		return 0, fmt.Errorf("storage: cannot query average turns: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}
