package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/games/oddtile"
	"github.com/vovakirdan/oddtile/internal/storage"
)

// view is the screen currently shown.
type view int

const (
	viewTitle view = iota
	viewHowTo
	viewDifficulty
	viewConfirm
	viewGame
	viewRoundOver
	viewScores
)

// Model is the Bubble Tea model for one player. It owns no game state of
// its own: everything flows through the session.
type Model struct {
	session *oddtile.Session
	store   storage.Leaderboard
	cfg     config.OddTileConfig
	logger  *log.Logger

	screen  *core.Screen
	width   int
	height  int
	view    view
	buttons []*Button
	keys    KeyMap
	help    help.Model
	cursor  oddtile.Position
	tickGen int
	name    textinput.Model
	recent  []storage.Entry
	best    string
	scores  ScoreboardModel
	status  string

	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger for UI events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates the UI for a session. store may be nil.
func NewModel(sess *oddtile.Session, store storage.Leaderboard, cfg config.OddTileConfig, rc core.RuntimeConfig, opts ...ModelOption) Model {
	name := textinput.New()
	name.CharLimit = storage.MaxNameLen
	name.Placeholder = "NAME"

	m := Model{
		session: sess,
		store:   store,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		name:    name,
		screen:  core.NewScreen(rc.ScreenW, max(rc.ScreenH-1, 1)),
		width:   rc.ScreenW,
		height:  rc.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.scores = NewScoreboardModel(store, rc.ScreenW, rc.ScreenH)
	m.scores.embedded = true
	m.applyLayout()
	m.setView(viewTitle)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.handleTick(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.view == viewRoundOver {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize adapts the screen buffer, board layout and buttons to the terminal.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, max(height-1, 1))
	m.help.Width = width
	m.scores.Resize(width, height)
	m.applyLayout()
	m.layoutButtons()
}

// applyLayout centers the board on screen.
func (m *Model) applyLayout() {
	geom := oddtile.Layout(oddtile.GeometryFor(m.cfg.Board), m.screen.Width(), m.screen.Height(), m.cfg.Board.Size)
	m.session.SetGeometry(geom)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.view {
	case viewScores:
		updated, cmd := m.scores.Update(msg)
		m.scores = updated.(ScoreboardModel)
		switch {
		case m.scores.IsQuitting():
			return m.quit()
		case m.scores.IsGoingBack():
			m.setView(viewTitle)
			return nil
		}
		return cmd

	case viewRoundOver:
		return m.handleNameKey(msg)
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit()
	}
	return m.dispatch(action)
}

// handleNameKey routes keys on the round-over screen. Letters go to the
// name input; everything else that is not a letter is dropped. While a
// score is pending, Enter only submits the name; Esc or the SELECT
// DIFFICULTY button skip naming.
func (m *Model) handleNameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if !m.session.HasPending() {
			return m.dispatch(core.ActionConfirm)
		}
		m.submitName()
		return nil
	case tea.KeyEsc:
		return m.dispatch(core.ActionBack)
	}

	filtered, ok := FilterNameKey(msg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(filtered)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := pointerEvent(msg)
	if !ok {
		return nil
	}

	if m.view == viewGame && ev.Kind == core.PointerPress {
		if b := m.session.Board(); b != nil {
			if pos, hit := b.CellAtPoint(ev.X, ev.Y); hit {
				m.cursor = pos
			}
		}
		if m.session.Click(ev.X, ev.Y) {
			m.logger.Debug("odd tile clicked", "score", m.session.Score())
		}
		return nil
	}

	for _, b := range m.buttons {
		if b.HandlePointer(ev) {
			return m.dispatch(b.Action)
		}
	}
	return nil
}

// dispatch performs a semantic action on the current screen. Buttons and
// keys share it.
func (m *Model) dispatch(a core.Action) tea.Cmd {
	switch m.view {
	case viewTitle:
		switch a {
		case core.ActionConfirm:
			m.setView(viewHowTo)
		case core.ActionScores:
			m.scores.goingBack = false
			m.scores.Reload()
			m.setView(viewScores)
		case core.ActionQuit, core.ActionBack:
			return m.quit()
		}

	case viewHowTo:
		switch a {
		case core.ActionConfirm:
			if m.session.OpenDifficultyMenu() {
				m.setView(viewDifficulty)
			}
		case core.ActionBack:
			m.setView(viewTitle)
		}

	case viewDifficulty:
		switch a {
		case core.ActionLeft, core.ActionUp:
			m.session.PrevMode()
			m.layoutButtons()
		case core.ActionRight, core.ActionDown:
			m.session.NextMode()
			m.layoutButtons()
		case core.ActionConfirm:
			if m.session.Propose(m.session.Proposed()) {
				m.setView(viewConfirm)
			}
		}

	case viewConfirm:
		switch a {
		case core.ActionYes, core.ActionConfirm:
			return m.startGame()
		case core.ActionNo, core.ActionBack:
			if m.session.Reject() {
				m.setView(viewDifficulty)
			}
		}

	case viewGame:
		return m.dispatchGame(a)

	case viewRoundOver:
		switch a {
		case core.ActionConfirm:
			m.acknowledge()
			if m.session.OpenDifficultyMenu() {
				m.setView(viewDifficulty)
			}
		case core.ActionBack:
			m.acknowledge()
			m.setView(viewTitle)
		}
	}
	return nil
}

// dispatchGame moves the keyboard cursor and clicks through the same hit
// test the mouse uses.
func (m *Model) dispatchGame(a core.Action) tea.Cmd {
	b := m.session.Board()
	if b == nil {
		return nil
	}

	switch a {
	case core.ActionUp:
		m.cursor.Row--
	case core.ActionDown:
		m.cursor.Row++
	case core.ActionLeft:
		m.cursor.Col--
	case core.ActionRight:
		m.cursor.Col++
	case core.ActionConfirm:
		m.session.ClickCell(m.cursor)
		return nil
	case core.ActionBack:
		if m.session.Cancel() {
			return m.enterRoundOver()
		}
		return nil
	}
	m.cursor.Row = core.Clamp(m.cursor.Row, 0, b.Rows()-1)
	m.cursor.Col = core.Clamp(m.cursor.Col, 0, b.RowLen(m.cursor.Row)-1)
	return nil
}

func (m *Model) startGame() tea.Cmd {
	if !m.session.Confirm() {
		m.status = "Cannot start a game"
		return nil
	}
	m.tickGen++
	m.cursor = oddtile.Position{}
	m.applyLayout()
	m.setView(viewGame)
	return tickCmd(m.tickGen)
}

// handleTick depletes the countdown. Ticks stop being scheduled once the
// game is over.
func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	if msg.Gen != m.tickGen || m.session.State() != oddtile.StatePlaying {
		return nil
	}
	if m.session.Tick() {
		return m.enterRoundOver()
	}
	return tickCmd(m.tickGen)
}

func (m *Model) enterRoundOver() tea.Cmd {
	m.setView(viewRoundOver)
	m.name.Reset()
	m.loadRecent()
	return m.name.Focus()
}

func (m *Model) loadRecent() {
	m.recent = nil
	if m.store == nil {
		return
	}
	recent, err := m.store.LastEntries(m.cfg.Leaderboard.Recent)
	if err != nil {
		m.logger.Warn("cannot read leaderboard", "error", err)
		return
	}
	m.recent = recent
	m.loadBest()
}

// loadBest reads the high score shown on the round-over screen: per mode
// when the backend indexes modes, across all games otherwise.
func (m *Model) loadBest() {
	m.best = ""
	mode := string(m.session.Result().Mode)

	var (
		label = "BEST"
		best  int
		err   error
	)
	if idx, ok := m.store.(storage.Indexed); ok {
		label += " " + mode
		best, err = idx.HighScore(mode)
	} else {
		var top []storage.Entry
		if top, err = m.store.TopScores(1); len(top) > 0 {
			best = top[0].Score
		}
	}
	if err != nil {
		m.logger.Warn("cannot read high score", "mode", mode, "error", err)
		return
	}
	m.best = fmt.Sprintf("%s  %d", label, best)
}

func (m *Model) submitName() {
	err := m.session.SubmitName(m.name.Value())
	switch {
	case errors.Is(err, storage.ErrEmptyName):
		m.status = "A name needs at least one letter"
	case errors.Is(err, oddtile.ErrNoPendingScore):
		m.status = "Score already saved"
	case err != nil:
		m.status = fmt.Sprintf("Could not save score: %v", err)
	default:
		m.status = fmt.Sprintf("Saved as %s", m.session.Result().Name)
		m.name.Blur()
		m.loadRecent()
	}
}

// acknowledge leaves the result screen, saving an unnamed score if needed.
func (m *Model) acknowledge() {
	if err := m.session.Acknowledge(); err != nil {
		m.logger.Error("cannot save score", "error", err)
	}
	m.name.Blur()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) setView(v view) {
	m.view = v
	if v != viewRoundOver {
		m.status = ""
	}
	m.layoutButtons()
}

// layoutButtons places the buttons of the current screen.
func (m *Model) layoutButtons() {
	cx := m.screen.Width() / 2
	h := m.screen.Height()

	switch m.view {
	case viewTitle:
		m.buttons = []*Button{
			NewButton("PLAY", core.ActionConfirm, cx, h/2-1),
			NewButton("SCORES", core.ActionScores, cx, h/2+2),
			NewButton("EXIT", core.ActionQuit, cx, h/2+5),
		}
	case viewHowTo:
		m.buttons = []*Button{NewButton("NEXT", core.ActionConfirm, cx, h-4)}
	case viewDifficulty:
		m.buttons = []*Button{
			NewButton("<", core.ActionLeft, cx-16, h/2-1),
			NewButton(fmt.Sprintf("%-6s", m.session.Proposed()), core.ActionConfirm, cx, h/2-1),
			NewButton(">", core.ActionRight, cx+16, h/2-1),
		}
	case viewConfirm:
		m.buttons = []*Button{
			NewButton("NO", core.ActionNo, cx-10, h/2+2),
			NewButton("YES", core.ActionYes, cx+10, h/2+2),
		}
	case viewRoundOver:
		m.buttons = []*Button{NewButton("SELECT DIFFICULTY", core.ActionConfirm, cx, h-4)}
	default:
		m.buttons = nil
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scores.View()
	}

	m.screen.Clear()
	switch m.view {
	case viewTitle:
		m.drawTitle()
	case viewHowTo:
		m.drawHowTo()
	case viewDifficulty:
		m.drawDifficulty()
	case viewConfirm:
		m.drawConfirm()
	case viewGame:
		m.drawGame()
	case viewRoundOver:
		m.drawRoundOver()
	}
	for _, b := range m.buttons {
		b.Draw(m.screen)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local player and closes the
// session when it exits, flushing any unsaved score.
func Run(sess *oddtile.Session, store storage.Leaderboard, cfg config.OddTileConfig, rc core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(
		NewModel(sess, store, cfg, rc, opts...),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return errors.Join(err, sess.Close())
}
