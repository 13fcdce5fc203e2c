package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/oddtile/internal/storage"
)

func newTestScoreboard(t *testing.T, width int, entries ...storage.Entry) ScoreboardModel {
	t.Helper()

	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, e := range entries {
		require.NoError(t, store.Append(e))
	}
	return NewScoreboardModel(store, width, 30)
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardFiltersByMode(t *testing.T) {
	m := newTestScoreboard(t, 100,
		storage.Entry{Score: 4, Name: "ANA", Mode: "EASY"},
		storage.Entry{Score: 9, Name: "BOB", Mode: "HARD"},
		storage.Entry{Score: 2, Name: "CY", Mode: "EASY"},
	)

	assert.Equal(t, allModes, m.Mode())
	assert.Len(t, m.scores, 3)
	assert.Equal(t, modeSummary{games: 3, best: 9, total: 15}, m.summary)

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "EASY", m.Mode())
	require.Len(t, m.scores, 2)
	assert.Equal(t, "ANA", m.scores[0].Name)
	assert.InDelta(t, 3.0, m.summary.average(), 0.001)

	view := m.View()
	assert.Contains(t, view, "LEADERBOARD - EASY")
	assert.Contains(t, view, "ANA")
	assert.NotContains(t, view, "BOB")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "HARD", m.Mode())
	assert.Equal(t, 9, m.summary.best)
}

func TestScoreboardModeTabsQueryEachMode(t *testing.T) {
	entries := make([]storage.Entry, 0, maxScores+1)
	for range maxScores {
		entries = append(entries, storage.Entry{Score: 10, Name: "EVE", Mode: "EASY"})
	}
	entries = append(entries, storage.Entry{Score: 1, Name: "HAL", Mode: "HARD"})
	m := newTestScoreboard(t, 100, entries...)

	assert.Len(t, m.scores, maxScores)
	assert.Equal(t, modeSummary{games: maxScores + 1, best: 10, total: 10*maxScores + 1}, m.summary,
		"the summary covers every game, not only the rows shown")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "HARD", m.Mode())
	require.Len(t, m.scores, 1)
	assert.Equal(t, "HAL", m.scores[0].Name)
	assert.Equal(t, modeSummary{games: 1, best: 1, total: 1}, m.summary)
	assert.Contains(t, m.View(), "HAL")
}

func TestScoreboardTextBackendFiltersInMemory(t *testing.T) {
	store, err := storage.OpenText(filepath.Join(t.TempDir(), "leaderboard.txt"))
	require.NoError(t, err)
	require.NoError(t, store.Append(storage.Entry{Score: 6, Name: "ANA", Mode: "EASY"}))
	require.NoError(t, store.Append(storage.Entry{Score: 2}))

	m := NewScoreboardModel(store, 100, 30)
	assert.Len(t, m.scores, 2)
	assert.Equal(t, modeSummary{games: 2, best: 6, total: 8}, m.summary)

	// Text lines carry no mode, so mode tabs stay empty.
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "EASY", m.Mode())
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No scores recorded yet.")
}

func TestScoreboardEmptyAndNarrow(t *testing.T) {
	m := newTestScoreboard(t, 60)

	view := m.View()
	assert.Contains(t, view, "No scores recorded yet.")
	assert.Contains(t, view, "0 games")
	assert.Zero(t, m.summary.average())
}

func TestScoreboardBack(t *testing.T) {
	m := newTestScoreboard(t, 100)

	standalone := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, standalone.IsGoingBack())
	assert.Empty(t, standalone.View())

	m.embedded = true
	embedded, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.True(t, embedded.(ScoreboardModel).IsGoingBack())
	assert.NotEmpty(t, embedded.View())
}
