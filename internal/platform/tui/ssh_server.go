package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/games/oddtile"
	"github.com/vovakirdan/oddtile/internal/registry"
	"github.com/vovakirdan/oddtile/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.oddtile/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the game configuration shared by every connection.
	Game config.OddTileConfig

	// TileSets are the sets rounds are drawn from.
	TileSets []registry.TileSet
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultOddTileConfig(),
	}
}

// sessionTable tracks the game session behind each SSH connection.
type sessionTable struct {
	mu   sync.Mutex
	byID map[string]*oddtile.Session
}

func newSessionTable() *sessionTable {
	return &sessionTable{byID: make(map[string]*oddtile.Session)}
}

func (t *sessionTable) add(connID string, sess *oddtile.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byID[connID] = sess
}

// take removes and returns the session of connID.
func (t *sessionTable) take(connID string) (*oddtile.Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sess, ok := t.byID[connID]
	delete(t.byID, connID)
	return sess, ok
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}

// SSHServer serves the game over SSH. Each connection gets its own session;
// the leaderboard is shared.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    storage.Leaderboard
	logger   *log.Logger
	sessions *sessionTable
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "oddtile-ssh",
	})

	if len(cfg.TileSets) == 0 {
		cfg.TileSets = registry.List()
	}

	store, err := storage.Open(cfg.Game.Leaderboard.Path)
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		sessions: newSessionTable(),
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err == nil {
		srv.server, err = wish.NewServer(
			wish.WithAddress(cfg.Address),
			wish.WithHostKeyPath(hostKeyPath),
			wish.WithIdleTimeout(cfg.IdleTimeout),
			wish.WithMiddleware(
				bubbletea.Middleware(srv.teaHandler),
				srv.loggingMiddleware,
			),
		)
	}
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("create SSH server: %w", err)
	}
	return srv, nil
}

// resolveHostKey returns the host key location, defaulting to
// ~/.oddtile/host_key, and makes sure its directory exists. wish generates
// the key on first start.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory: %w", err)
		}
		path = filepath.Join(home, ".oddtile", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a game session and a Bubble Tea program for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rc := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}

	sessLogger := s.logger.With("user", sshSession.User())
	sess, err := oddtile.NewSession(
		oddtile.NewGenerator(rc.Seed, s.config.Game.Board.Size),
		s.config.TileSets,
		oddtile.WithLeaderboard(s.store),
		oddtile.WithModes(s.config.Game.Modes),
		oddtile.WithLogger(sessLogger),
	)
	if err != nil {
		s.logger.Error("cannot create game session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	s.sessions.add(sshSession.Context().SessionID(), sess)
	sessLogger.Info("game session created", "session", sess.ID())

	model := NewModel(sess, s.store, s.config.Game, rc, WithModelLogger(sessLogger))
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events and closes the game session
// once the program has exited, saving any score the player left behind.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.closeSession(sshSession.Context().SessionID())
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

func (s *SSHServer) closeSession(connID string) {
	sess, ok := s.sessions.take(connID)
	if !ok {
		return
	}
	if err := sess.Close(); err != nil {
		s.logger.Error("cannot save score on disconnect", "session", sess.ID(), "error", err)
	}
	s.logSessionGames(sess.ID())
}

// logSessionGames reports what a disconnecting player left on the board.
// Only indexed stores keep the session id.
func (s *SSHServer) logSessionGames(id string) {
	idx, ok := s.store.(storage.Indexed)
	if !ok {
		return
	}
	entries, err := idx.SessionEntries(id)
	if err != nil {
		s.logger.Warn("cannot read session scores", "session", id, "error", err)
		return
	}
	best := 0
	for _, e := range entries {
		best = max(best, e.Score)
	}
	s.logger.Info("session scores", "session", id, "games", len(entries), "best", best)
}

// ActiveSessions returns the number of connected players.
func (s *SSHServer) ActiveSessions() int {
	return s.sessions.len()
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM,
// or until the listener fails.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address)
	errCh := make(chan error, 1)
	go func() { errCh <- s.server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, ssh.ErrServerClosed) {
			_ = s.Shutdown()
			return fmt.Errorf("serve ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.ActiveSessions())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)

	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
