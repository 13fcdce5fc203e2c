// Package storage persists leaderboard entries.
// Two backends share the Leaderboard interface: a plain text file in the
// "<score> <name>" line format and a SQLite database using the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxNameLen is the longest player name kept on the leaderboard.
const MaxNameLen = 10

// MaxRecent is the largest number of entries LastEntries returns.
const MaxRecent = 3

// ErrEmptyName is returned when a submitted name has no letters left after filtering.
var ErrEmptyName = errors.New("storage: name must contain at least one letter")

// Entry is one finished game on the leaderboard. Name is empty when the
// player left without entering one.
type Entry struct {
	Score     int
	Name      string
	Mode      string
	Session   string
	CreatedAt time.Time
}

// Leaderboard is an append-only record of finished games.
type Leaderboard interface {
	// Append stores score and name together as one record.
	Append(entry Entry) error
	// LastEntries returns the most recent records, oldest first.
	// n is clamped to 1..MaxRecent.
	LastEntries(n int) ([]Entry, error)
	// TopScores returns up to n records ordered by score, highest first.
	TopScores(n int) ([]Entry, error)
	Close() error
}

// Indexed is implemented by backends that keep the mode and session of
// every entry and can query by them. The text backend cannot.
type Indexed interface {
	// TopScoresByMode is TopScores restricted to one mode.
	TopScoresByMode(mode string, n int) ([]Entry, error)
	// SessionEntries returns the records written by one session, oldest first.
	SessionEntries(sessionID string) ([]Entry, error)
	// HighScore and Stats cover every mode when mode is empty.
	HighScore(mode string) (int, error)
	Stats(mode string) (*Stats, error)
}

// Open opens the leaderboard at path. Files ending in .db, .sqlite or
// .sqlite3 use SQLite; anything else is a text leaderboard.
func Open(path string) (Leaderboard, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		store, err := OpenText(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// NormalizeName keeps ASCII letters only, upper-cases them and truncates to
// MaxNameLen.
func NormalizeName(name string) (string, error) {
	var sb strings.Builder
	for _, r := range name {
		if sb.Len() == MaxNameLen {
			break
		}
		if IsNameRune(r) {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyName
	}
	return strings.ToUpper(sb.String()), nil
}

// IsNameRune reports whether r may appear in a player name.
func IsNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func clampRecent(n int) int {
	return min(max(n, 1), MaxRecent)
}

func mkdirFor(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}
