// Package storage provides SQLite-based persistence for finished-game
// scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	Score     int
	MaxTile   int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	HighScore  int
	BestTile   int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveScore(score, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, max_tile) VALUES (?, ?)",
		score, maxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_tile, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.MaxTile, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics over all recorded games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(max_tile), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestTile, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearScores deletes every recorded score.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
