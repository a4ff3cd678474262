// Package storage provides SQLite-based persistence for snake high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for high score persistence.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is one player's stored best.
type HighScoreEntry struct {
	Player    string
	Best      int
	UpdatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			player TEXT PRIMARY KEY,
			best INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighScore returns the stored best for the given player.
// Returns 0 if the player has no record yet.
func (s *Store) HighScore(player string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT best FROM high_scores WHERE player = ?",
		player,
	).Scan(&best)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// SaveHighScore stores the score as the player's best if it beats the
// current one. A stored best never goes down. Returns true when the
// record was created or raised.
func (s *Store) SaveHighScore(player string, score int) (bool, error) {
	result, err := s.db.Exec(
		`INSERT INTO high_scores (player, best, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		     best = excluded.best,
		     updated_at = excluded.updated_at
		 WHERE excluded.best > high_scores.best`,
		player, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read rows affected: %w", err)
	}

	return n > 0, nil
}

// TopHighScores retrieves stored bests, highest first.
// Ties are broken by player name for stable output.
func (s *Store) TopHighScores(limit int) ([]HighScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player, best, updated_at
		 FROM high_scores
		 ORDER BY best DESC, player ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScoreEntry
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Player, &e.Best, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearHighScore deletes the record for one player.
func (s *Store) ClearHighScore(player string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// ClearAll deletes every stored best.
func (s *Store) ClearAll() error {
	_, err := s.db.Exec("DELETE FROM high_scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	return nil
}
