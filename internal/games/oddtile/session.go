package oddtile

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/registry"
	"github.com/vovakirdan/oddtile/internal/storage"
)

// ErrNoPendingScore is returned by SubmitName when there is no finished
// session waiting for a name.
var ErrNoPendingScore = errors.New("oddtile: no score waiting for a name")

// State is a step of the session state machine.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateConfirming
	StatePlaying
	StateRoundEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelecting:
		return "DifficultySelecting"
	case StateConfirming:
		return "DifficultyConfirming"
	case StatePlaying:
		return "Playing"
	case StateRoundEnded:
		return "RoundEnded"
	default:
		return "Unknown"
	}
}

// Leaderboard receives finished sessions.
type Leaderboard interface {
	Append(entry storage.Entry) error
}

// Result describes a finished session.
type Result struct {
	Mode      config.Mode
	Score     int
	Rounds    int    // Boards shown, including the unfinished last one
	FinalTime string // Timer display when the session ended
	Name      string // Set once the score was saved with a name
	Saved     bool
}

// Session owns one player's game: the difficulty flow, the current round,
// its board and the countdown. Events are delivered serially by the caller;
// Session does no locking.
type Session struct {
	id     string
	gen    *Generator
	sets   []registry.TileSet
	modes  config.ModesConfig
	geom   Geometry
	scores Leaderboard
	logger *log.Logger
	now    func() time.Time

	state    State
	proposed config.Mode
	mode     config.Mode
	score    int
	rounds   int
	board    *Board
	timer    *Timer

	pending *Result
	last    Result
}

// Option configures a Session.
type Option func(*Session)

// WithLeaderboard sets where finished sessions are recorded.
func WithLeaderboard(lb Leaderboard) Option {
	return func(s *Session) { s.scores = lb }
}

// WithLogger sets the session logger. Default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithModes overrides the mode durations.
func WithModes(m config.ModesConfig) Option {
	return func(s *Session) { s.modes = m }
}

// WithGeometry sets the board layout used for hit testing.
func WithGeometry(g Geometry) Option {
	return func(s *Session) { s.geom = g }
}

// WithID sets the session identifier recorded with leaderboard entries.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithMode preselects the mode shown when the difficulty menu opens.
func WithMode(m config.Mode) Option {
	return func(s *Session) {
		if m.Valid() {
			s.proposed = m
		}
	}
}

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates an idle session drawing rounds from sets.
func NewSession(gen *Generator, sets []registry.TileSet, opts ...Option) (*Session, error) {
	if gen == nil {
		return nil, errors.New("oddtile: nil generator")
	}
	if gen.Size() < 2 {
		return nil, ErrBoardTooSmall
	}
	if len(sets) == 0 {
		return nil, ErrNoTileSets
	}
	for _, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, err
		}
	}

	s := &Session{
		id:       uuid.NewString(),
		gen:      gen,
		sets:     sets,
		modes:    config.DefaultOddTileConfig().Modes,
		geom:     DefaultGeometry(),
		logger:   log.New(io.Discard),
		now:      time.Now,
		state:    StateIdle,
		proposed: config.ModeEasy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Proposed returns the mode shown on the difficulty and confirmation screens.
func (s *Session) Proposed() config.Mode { return s.proposed }

// Mode returns the confirmed mode of the current or last game.
func (s *Session) Mode() config.Mode { return s.mode }

// Score returns the number of odd tiles found in the current game.
func (s *Session) Score() int { return s.score }

// RoundsPlayed returns the number of boards generated in the current game.
func (s *Session) RoundsPlayed() int { return s.rounds }

// Board returns the current board, or nil outside a game.
func (s *Session) Board() *Board { return s.board }

// Round returns the current round.
func (s *Session) Round() (Round, bool) {
	if s.board == nil {
		return Round{}, false
	}
	return s.board.Round(), true
}

// Timer returns the countdown of the current game, or nil before the first game.
func (s *Session) Timer() *Timer { return s.timer }

// Ended reports whether the session is showing a finished game.
func (s *Session) Ended() bool { return s.state == StateRoundEnded }

// Result returns the most recently finished game.
func (s *Session) Result() Result { return s.last }

// HasPending reports whether a finished score has not been saved yet.
func (s *Session) HasPending() bool { return s.pending != nil }

// Prompt returns the confirmation question for the proposed mode.
func (s *Session) Prompt() string {
	return fmt.Sprintf("PLAY ON %s?", s.proposed.Title())
}

// OpenDifficultyMenu moves from Idle to difficulty selection.
func (s *Session) OpenDifficultyMenu() bool {
	if s.state != StateIdle {
		return false
	}
	s.transition(StateSelecting)
	return true
}

// NextMode advances the difficulty carousel.
func (s *Session) NextMode() bool {
	if s.state != StateSelecting {
		return false
	}
	s.proposed = s.proposed.Next()
	return true
}

// PrevMode moves the difficulty carousel back.
func (s *Session) PrevMode() bool {
	if s.state != StateSelecting {
		return false
	}
	s.proposed = s.proposed.Prev()
	return true
}

// Propose picks a mode and asks for confirmation.
func (s *Session) Propose(m config.Mode) bool {
	if s.state != StateSelecting || !m.Valid() {
		return false
	}
	s.proposed = m
	s.transition(StateConfirming)
	return true
}

// Reject declines the proposed mode and returns to selection.
func (s *Session) Reject() bool {
	if s.state != StateConfirming {
		return false
	}
	s.transition(StateSelecting)
	return true
}

// Confirm starts a game in the proposed mode: score 0, a fresh round and a
// timer set to the mode's duration. The caller starts delivering ticks.
func (s *Session) Confirm() bool {
	if s.state != StateConfirming {
		return false
	}

	round, err := s.gen.Generate(s.sets)
	if err != nil {
		s.logger.Error("cannot generate round", "error", err)
		return false
	}

	s.mode = s.proposed
	s.score = 0
	s.rounds = 1
	s.board = NewBoard(round, s.geom)
	s.timer = TimerFor(s.mode.Duration(s.modes))
	s.transition(StatePlaying)
	s.logger.Info("game started", "session", s.id, "mode", s.mode, "time", s.timer.String())
	return true
}

// Tick depletes the countdown by one second. Returns true when this tick
// ended the game. Ticks outside a game are ignored.
func (s *Session) Tick() bool {
	if s.state != StatePlaying {
		return false
	}
	s.timer.DepleteOneSecond()
	if s.timer.IsExpired() {
		s.end("timeout")
		return true
	}
	return false
}

// Click handles a pointer click at screen position (x, y). A click on the odd
// tile scores a point and deals a new round; anything else is ignored.
func (s *Session) Click(x, y int) bool {
	if s.state != StatePlaying || s.board == nil {
		return false
	}

	pos := s.board.OddPosition()
	if !s.board.HitTest(pos, x, y) || !s.board.IsOdd(pos) {
		return false
	}

	s.score++
	round, err := s.gen.Generate(s.sets)
	if err != nil {
		// Sets were validated at construction; keep the old board if it happens anyway.
		s.logger.Error("cannot generate round", "error", err)
		return true
	}
	s.rounds++
	s.board = NewBoard(round, s.geom)
	s.logger.Debug("odd tile found", "session", s.id, "score", s.score)
	return true
}

// ClickCell clicks the top-left corner of the tile at pos.
// Keyboard input goes through the same hit test as the pointer.
func (s *Session) ClickCell(pos Position) bool {
	if s.board == nil {
		return false
	}
	r, ok := s.board.Rect(pos)
	if !ok {
		return false
	}
	return s.Click(r.X, r.Y)
}

// SetGeometry moves the board, e.g. after a terminal resize.
func (s *Session) SetGeometry(g Geometry) {
	s.geom = g
	if s.board != nil {
		s.board = NewBoard(s.board.Round(), g)
	}
}

// Geometry returns the board layout.
func (s *Session) Geometry() Geometry { return s.geom }

// Cancel ends a running game early. The score is kept like on timeout.
func (s *Session) Cancel() bool {
	if s.state != StatePlaying {
		return false
	}
	s.end("cancelled")
	return true
}

// SubmitName saves the pending score under name as one leaderboard record.
// Invalid names return storage.ErrEmptyName and leave the score pending.
func (s *Session) SubmitName(name string) error {
	if s.pending == nil {
		return ErrNoPendingScore
	}
	normalized, err := storage.NormalizeName(name)
	if err != nil {
		return err
	}
	return s.flush(normalized)
}

// Acknowledge leaves the result screen for Idle, saving an unnamed score if
// the player skipped name entry.
func (s *Session) Acknowledge() error {
	if s.state != StateRoundEnded {
		return nil
	}
	var err error
	if s.pending != nil {
		err = s.flush("")
	}
	s.transition(StateIdle)
	return err
}

// Close ends the session. A running game is ended and any unsaved score is
// flushed to the leaderboard before the session is discarded.
func (s *Session) Close() error {
	if s.state == StatePlaying {
		s.end("closed")
	}
	if s.pending != nil {
		return s.flush("")
	}
	return nil
}

// end finishes the running game and parks its result until it is saved.
func (s *Session) end(reason string) {
	res := Result{
		Mode:      s.mode,
		Score:     s.score,
		Rounds:    s.rounds,
		FinalTime: s.timer.String(),
	}
	s.last = res
	s.pending = &res

	s.timer.Reset()
	s.board = nil
	s.score = 0
	s.transition(StateRoundEnded)
	s.logger.Info("game ended",
		"session", s.id,
		"reason", reason,
		"mode", res.Mode,
		"score", res.Score,
	)
}

// flush writes the pending result. A failed write is reported once and not retried.
func (s *Session) flush(name string) error {
	res := *s.pending
	s.pending = nil

	if s.scores == nil {
		return nil
	}

	entry := storage.Entry{
		Score:     res.Score,
		Name:      name,
		Mode:      string(res.Mode),
		Session:   s.id,
		CreatedAt: s.now(),
	}
	if err := s.scores.Append(entry); err != nil {
		s.logger.Error("cannot save score", "session", s.id, "error", err)
		return fmt.Errorf("oddtile: save score: %w", err)
	}

	res.Name = name
	res.Saved = true
	s.last = res
	return nil
}

func (s *Session) transition(to State) {
	s.logger.Debug("state change", "session", s.id, "from", s.state, "to", to)
	s.state = to
}
