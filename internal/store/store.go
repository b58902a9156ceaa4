// Package store keeps the results of the current run in an in-memory SQLite
// database. Nothing is written to disk; the data is gone when the process exits.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for session results.
type Store struct {
	db *sql.DB
}

// OpenMemory creates a private in-memory database and applies migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every new connection to :memory: would see an empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			finished_at TEXT NOT NULL,
			words INTEGER NOT NULL,
			scoring INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			total_typed INTEGER NOT NULL,
			mistakes INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a completed session.
func (s *Store) InsertSession(ctx context.Context, stats model.SessionStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (finished_at, words, scoring, elapsed_ms, wpm, accuracy, total_typed, mistakes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.FinishedAt.Format(time.RFC3339Nano),
		stats.Words,
		int(stats.Scoring),
		stats.Result.Elapsed.Milliseconds(),
		stats.Result.WPM,
		stats.Result.Accuracy,
		stats.Result.TotalTyped,
		stats.Result.Mistakes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns stored sessions in insertion order. A positive last
// limits the result to the most recent sessions.
func (s *Store) ListSessions(ctx context.Context, last int) ([]model.SessionAggregate, error) {
	query := `SELECT id, finished_at, wpm, accuracy FROM (
		SELECT id, finished_at, wpm, accuracy FROM sessions
		ORDER BY id DESC
		LIMIT ?
	) ORDER BY id ASC`
	limit := last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var finishedAt string
		if err := rows.Scan(&agg.SessionID, &finishedAt, &agg.WPM, &agg.Accuracy); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, finishedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
