// Package storage provides SQLite-based persistence for played-session
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game session.
type SessionRecord struct {
	ID            int64
	Player        string
	Score         int
	Level         int
	BestStreak    int
	Accuracy      float64
	DurationMs    int64
	AvgReactionMs float64
	Correct       int
	Wrong         int
	Outcome       string // "game_over", "capacity_win", "forfeit"
	CreatedAt     time.Time
}

// Totals aggregates session history across all players.
type Totals struct {
	GamesPlayed        int
	SequencesCompleted int
	BestLevel          int
	LongestStreak      int
	HighScore          int
	AvgScore           float64
	LastPlayed         time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			best_streak INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			avg_reaction_ms REAL NOT NULL DEFAULT 0,
			correct INTEGER NOT NULL DEFAULT 0,
			wrong INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL DEFAULT 'game_over',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// SaveSession records one finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (player, score, level, best_streak, accuracy, duration_ms, avg_reaction_ms, correct, wrong, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Player,
		rec.Score,
		rec.Level,
		rec.BestStreak,
		rec.Accuracy,
		rec.DurationMs,
		rec.AvgReactionMs,
		rec.Correct,
		rec.Wrong,
		rec.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, player, score, level, best_streak, accuracy,
	duration_ms, avg_reaction_ms, correct, wrong, outcome, created_at`

func scanSession(rows *sql.Rows) (SessionRecord, error) {
	var rec SessionRecord
	var createdAt any
	if err := rows.Scan(
		&rec.ID,
		&rec.Player,
		&rec.Score,
		&rec.Level,
		&rec.BestStreak,
		&rec.Accuracy,
		&rec.DurationMs,
		&rec.AvgReactionMs,
		&rec.Correct,
		&rec.Wrong,
		&rec.Outcome,
		&createdAt,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	return rec, nil
}

// parseTimestamp handles both time.Time and string datetime values.
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

// RecentSessions retrieves the most recently played sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// PlayerSessions retrieves session history for one player,
// matched case-insensitively, newest first.
func (s *Store) PlayerSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE player = ? COLLATE NOCASE
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestSession returns the highest-scoring session for a player,
// or nil if the player has no history.
func (s *Store) BestSession(player string) (*SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE player = ? COLLATE NOCASE
		 ORDER BY score DESC, level DESC, best_streak DESC
		 LIMIT 1`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	rec, err := scanSession(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AllTotals aggregates the full session history.
func (s *Store) AllTotals() (*Totals, error) {
	totals := &Totals{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(correct), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(MAX(best_streak), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM sessions`,
	).Scan(
		&totals.GamesPlayed,
		&totals.SequencesCompleted,
		&totals.BestLevel,
		&totals.LongestStreak,
		&totals.HighScore,
		&totals.AvgScore,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot aggregate sessions: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		totals.LastPlayed = parseTimestamp(lastPlayed)
	}

	return totals, nil
}

// ClearSessions deletes the full session history.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
