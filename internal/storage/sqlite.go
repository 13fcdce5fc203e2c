package storage

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps leaderboard entries in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Stats contains aggregated statistics for one difficulty mode, or for all
// modes when Mode is empty.
type Stats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := mkdirFor(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_entries_top ON entries(score DESC);
		CREATE INDEX IF NOT EXISTS idx_entries_mode ON entries(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records one finished game.
func (s *SQLiteStore) Append(e Entry) error {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.Exec(
		"INSERT INTO entries (session_id, name, mode, score, created_at) VALUES (?, ?, ?, ?, ?)",
		e.Session, e.Name, e.Mode, e.Score, created.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save entry: %w", err)
	}
	return nil
}

// LastEntries returns up to n of the newest entries, oldest first.
func (s *SQLiteStore) LastEntries(n int) ([]Entry, error) {
	entries, err := s.query(
		`SELECT session_id, name, mode, score, created_at
		 FROM entries
		 ORDER BY id DESC
		 LIMIT ?`,
		clampRecent(n),
	)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

// TopScores retrieves the top n entries across all modes.
func (s *SQLiteStore) TopScores(n int) ([]Entry, error) {
	if n <= 0 {
		n = 10
	}
	return s.query(
		`SELECT session_id, name, mode, score, created_at
		 FROM entries
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
}

// TopScoresByMode retrieves the top n entries for one difficulty mode.
func (s *SQLiteStore) TopScoresByMode(mode string, n int) ([]Entry, error) {
	if n <= 0 {
		n = 10
	}
	return s.query(
		`SELECT session_id, name, mode, score, created_at
		 FROM entries
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, n,
	)
}

// SessionEntries returns the entries written by one session, oldest first.
func (s *SQLiteStore) SessionEntries(sessionID string) ([]Entry, error) {
	return s.query(
		`SELECT session_id, name, mode, score, created_at
		 FROM entries
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

// HighScore returns the highest score for mode, or across all modes when
// mode is empty. Returns 0 if no entries exist.
func (s *SQLiteStore) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM entries WHERE ? = '' OR mode = ?",
		mode, mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for mode, or for all modes when
// mode is empty.
func (s *SQLiteStore) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM entries WHERE ? = '' OR mode = ?`,
		mode, mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

func (s *SQLiteStore) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.Session, &e.Name, &e.Mode, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ Leaderboard = (*SQLiteStore)(nil)
	_ Indexed     = (*SQLiteStore)(nil)
)
