package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSQLiteAppendAndLastEntries(t *testing.T) {
	store := openTestDB(t)

	entries, err := store.LastEntries(3)
	require.NoError(t, err)
	assert.Empty(t, entries)

	created := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	for i, name := range []string{"ANA", "BOB", "CY", "DEE"} {
		require.NoError(t, store.Append(Entry{
			Score:     i + 1,
			Name:      name,
			Mode:      "EASY",
			Session:   "s-" + name,
			CreatedAt: created.Add(time.Duration(i) * time.Minute),
		}))
	}

	last, err := store.LastEntries(3)
	require.NoError(t, err)
	require.Len(t, last, 3)
	assert.Equal(t, []string{"BOB", "CY", "DEE"}, names(last))
	assert.Equal(t, "s-DEE", last[2].Session)
	assert.Equal(t, "EASY", last[2].Mode)
	assert.True(t, last[2].CreatedAt.Equal(created.Add(3*time.Minute)), "created_at = %v", last[2].CreatedAt)

	one, err := store.LastEntries(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"DEE"}, names(one))

	capped, err := store.LastEntries(10)
	require.NoError(t, err)
	assert.Len(t, capped, MaxRecent)
}

func TestSQLiteTopScores(t *testing.T) {
	store := openTestDB(t)

	for _, e := range []Entry{
		{Score: 4, Name: "A", Mode: "EASY"},
		{Score: 9, Name: "B", Mode: "HARD"},
		{Score: 7, Name: "C", Mode: "EASY"},
		{Score: 9, Name: "D", Mode: "EASY"},
	} {
		require.NoError(t, store.Append(e))
	}

	top, err := store.TopScores(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "C"}, names(top))

	easy, err := store.TopScoresByMode("EASY", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "A"}, names(easy))
}

func TestSQLiteHighScoreAndStats(t *testing.T) {
	store := openTestDB(t)

	high, err := store.HighScore("")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	require.NoError(t, store.Append(Entry{Score: 3, Mode: "EASY", Session: "x"}))
	require.NoError(t, store.Append(Entry{Score: 5, Mode: "EASY", Session: "x"}))
	require.NoError(t, store.Append(Entry{Score: 12, Mode: "HARD", Session: "y"}))

	high, err = store.HighScore("EASY")
	require.NoError(t, err)
	assert.Equal(t, 5, high)

	high, err = store.HighScore("")
	require.NoError(t, err)
	assert.Equal(t, 12, high)

	stats, err := store.Stats("EASY")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 5, stats.HighScore)
	assert.InDelta(t, 4.0, stats.AvgScore, 0.001)
	assert.EqualValues(t, 8, stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())

	mine, err := store.SessionEntries("x")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.sqlite")

	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Append(Entry{Score: 8, Name: "ANA"}))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	last, err := store.LastEntries(1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, 8, last[0].Score)
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
