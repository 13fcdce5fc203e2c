package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/games/oddtile"
	"github.com/vovakirdan/oddtile/internal/platform/tui"
	"github.com/vovakirdan/oddtile/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Mouse          - Click tiles and buttons
  Arrows/HJKL    - Move the cursor, change difficulty
  Enter/Space    - Select, click the tile under the cursor
  Y/N            - Answer the confirmation
  Esc            - Back, end the current game
  Tab            - Leaderboard (title screen)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy    - 90 seconds
  medium  - 60 seconds
  hard    - 30 seconds

Examples:
  oddtile play
  oddtile play --difficulty hard
  oddtile play --leaderboard ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselect difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	mode := config.ModeEasy
	if flagDifficulty != "" {
		mode, err = config.ParseMode(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	sets, err := loadTileSets(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tile sets: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger("oddtile")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	// Play without a leaderboard if it cannot be opened.
	store, err := storage.Open(cfg.Leaderboard.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
	} else {
		defer store.Close()
	}

	sess, err := oddtile.NewSession(
		oddtile.NewGenerator(rc.Seed, cfg.Board.Size),
		sets,
		oddtile.WithLeaderboard(store),
		oddtile.WithModes(cfg.Modes),
		oddtile.WithMode(mode),
		oddtile.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(sess, store, cfg, rc, tui.WithModelLogger(logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
