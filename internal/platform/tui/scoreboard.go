package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/storage"
)

const (
	minWidthForPanel = 80  // narrower terminals get tabs and a summary line
	panelWidth       = 20
	maxScores        = 100
	allModes         = "ALL"
)

var (
	accentColor = lipgloss.Color("229")
	mutedColor  = lipgloss.Color("241")
	borderColor = lipgloss.Color("240")
	selectColor = lipgloss.Color("57")
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevMode, k.NextMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeSummary aggregates the games recorded for one mode.
type modeSummary struct {
	games int
	best  int
	total int
}

func summarize(entries []storage.Entry) modeSummary {
	var s modeSummary
	for _, e := range entries {
		s.games++
		s.total += e.Score
		s.best = max(s.best, e.Score)
	}
	return s
}

func (s modeSummary) average() float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.total) / float64(s.games)
}

// ScoreboardModel shows the leaderboard as a table filtered by mode.
// Embedded in the game model it reports back instead of quitting.
type ScoreboardModel struct {
	modes      []string
	modeCursor int
	store      storage.Leaderboard
	scores     []storage.Entry
	summary    modeSummary
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	embedded   bool
	quitting   bool
	goingBack  bool
	loadErr    error
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows an
// empty board.
func NewScoreboardModel(store storage.Leaderboard, width, height int) ScoreboardModel {
	modes := []string{allModes}
	for _, m := range config.Modes() {
		modes = append(modes, string(m))
	}

	m := ScoreboardModel{
		modes: modes,
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
	}
	m.Resize(width, height)
	m.Reload()
	return m
}

// Mode returns the mode filter currently shown.
func (m ScoreboardModel) Mode() string {
	return m.modes[m.modeCursor]
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Name", Width: storage.MaxNameLen + 2},
			{Title: "Mode", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(selectColor).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Reload re-reads the entries of the selected mode. Indexed backends are
// queried per mode; others are filtered from their top scores.
func (m *ScoreboardModel) Reload() {
	m.scores, m.summary, m.loadErr = nil, modeSummary{}, nil
	switch store := m.store.(type) {
	case nil:
	case indexedLeaderboard:
		m.scores, m.summary, m.loadErr = loadIndexed(store, m.Mode())
	default:
		var all []storage.Entry
		all, m.loadErr = store.TopScores(maxScores)
		m.scores = filterMode(all, m.Mode())
		m.summary = summarize(m.scores)
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rows[i] = entryRow(i+1, e)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

type indexedLeaderboard interface {
	storage.Leaderboard
	storage.Indexed
}

// loadIndexed reads the top scores and the full-history summary of mode.
func loadIndexed(store indexedLeaderboard, mode string) ([]storage.Entry, modeSummary, error) {
	filter := mode
	if mode == allModes {
		filter = ""
	}

	var (
		scores []storage.Entry
		err    error
	)
	if filter == "" {
		scores, err = store.TopScores(maxScores)
	} else {
		scores, err = store.TopScoresByMode(filter, maxScores)
	}
	if err != nil {
		return nil, modeSummary{}, err
	}

	stats, err := store.Stats(filter)
	if err != nil {
		return scores, summarize(scores), err
	}
	return scores, modeSummary{
		games: stats.GamesCount,
		best:  stats.HighScore,
		total: int(stats.TotalScore),
	}, nil
}

func filterMode(entries []storage.Entry, mode string) []storage.Entry {
	if mode == allModes {
		return entries
	}
	var kept []storage.Entry
	for _, e := range entries {
		if e.Mode == mode {
			kept = append(kept, e)
		}
	}
	return kept
}

func entryRow(rank int, e storage.Entry) table.Row {
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	date := ""
	if !e.CreatedAt.IsZero() {
		date = e.CreatedAt.Local().Format("Jan 02 15:04")
	}
	return table.Row{"#" + strconv.Itoa(rank), strconv.Itoa(e.Score), orDash(e.Name), orDash(e.Mode), date}
}

func (m *ScoreboardModel) shiftMode(delta int) {
	n := len(m.modes)
	m.modeCursor = (m.modeCursor + delta + n) % n
	m.Reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.shiftMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.shiftMode(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Resize adapts the layout to a new terminal size.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width, m.height = width, height
	rows := m.table.Rows()
	m.table = m.newTable()
	m.table.SetRows(rows)
	m.help.Width = width
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).
		Render(centerText("LEADERBOARD - "+m.Mode(), m.width))

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPanel(), "  ", boxStyle.Render(m.renderTable()))
	} else {
		body = m.renderTabs() + "\n" +
			centerText(mutedStyle.Render(m.summaryLine()), m.width) + "\n\n" +
			boxStyle.Render(m.renderTable())
	}

	return title + "\n\n" + body + "\n" + mutedStyle.Render(m.help.View(m.keys))
}

// renderPanel lists the modes with the selected one's summary beneath.
func (m ScoreboardModel) renderPanel() string {
	var b strings.Builder
	b.WriteString("Modes\n")
	b.WriteString(strings.Repeat("─", panelWidth-4) + "\n")
	for i, mode := range m.modes {
		if i == m.modeCursor {
			b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("> " + mode))
		} else {
			b.WriteString("  " + mode)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nGames  %d\nBest   %d\nAvg    %.1f", m.summary.games, m.summary.best, m.summary.average())
	return boxStyle.Width(panelWidth).Render(b.String())
}

func (m ScoreboardModel) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(selectColor).Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = active.Render(mode)
		} else {
			tabs[i] = mutedStyle.Render(" " + mode + " ")
		}
	}
	return centerText(strings.Join(tabs, " "), m.width)
}

func (m ScoreboardModel) summaryLine() string {
	return fmt.Sprintf("%d games  best %d  avg %.1f", m.summary.games, m.summary.best, m.summary.average())
}

func (m ScoreboardModel) renderTable() string {
	empty := mutedStyle.Italic(true).Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return empty.Render("Cannot read the leaderboard:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return empty.Render("No scores recorded yet.\nFind some odd tiles!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunScoreboard runs the scoreboard as a standalone program.
func RunScoreboard(store storage.Leaderboard, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
