package score

import (
	"database/sql"
	"fmt"
	"time"

	"hypersnake/game/types"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the table in a SQLite database, one row per rank.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates it.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the schema if it is missing.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			rank INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			points INTEGER NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			recorded_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_session ON high_scores(session_id)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, points, session_id FROM high_scores ORDER BY rank LIMIT ?`,
		types.MaxHighScores,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Points, &e.Session); err != nil {
			return nil, fmt.Errorf("failed to scan high score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save replaces the stored table in a single transaction.
func (s *SQLiteStore) Save(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("failed to clear high scores: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO high_scores (rank, name, points, session_id, recorded_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, e := range entries {
		if _, err := stmt.Exec(i, e.Name, e.Points, e.Session, now); err != nil {
			return fmt.Errorf("failed to insert high score %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit high scores: %w", err)
	}
	return nil
}
