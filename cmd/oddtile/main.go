// oddtile is a terminal "find the odd tile" game.
//
// Usage:
//
//	oddtile play             - Play locally
//	oddtile serve            - Start SSH server for remote play
//	oddtile scores           - Show recent and top scores
//	oddtile sets             - List available tile sets
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible boards
//	--leaderboard <path>   - Leaderboard file (.txt text, .db SQLite)
//	--config <path>        - Custom YAML config
//	--log <path>           - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/registry"
)

var (
	// Global flags
	flagSeed        int64
	flagLeaderboard string
	flagConfig      string
	flagLogPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oddtile",
	Short: "Odd Tile - find the tile that does not belong",
	Long: `Odd Tile is a terminal game: every board hides one tile that differs
from all the others. Click it before the clock runs out.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  sets     - List tile sets

Examples:
  oddtile play
  oddtile play --difficulty hard
  oddtile serve --ssh :2222
  oddtile scores --top 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(setsCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.OddTileConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	return cfg, nil
}

// loadTileSets registers sets from the configured directory and returns the
// enabled ones. An empty enabled list means every registered set. Files in
// the directory that cannot be used are reported on stderr and skipped.
func loadTileSets(cfg config.OddTileConfig) ([]registry.TileSet, error) {
	if cfg.TileSets.Dir != "" {
		dir, err := config.ExpandHome(cfg.TileSets.Dir)
		if err != nil {
			return nil, err
		}
		if _, statErr := os.Stat(dir); statErr == nil {
			_, skipped, err := registry.RegisterDir(dir)
			if err != nil {
				return nil, err
			}
			for _, s := range skipped {
				log.Warn("skipping tile set", "file", s.Path, "error", s.Err)
			}
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return nil, statErr
		}
	}

	sets, err := registry.Select(cfg.TileSets.Enabled)
	if err != nil {
		return nil, fmt.Errorf("tilesets.enabled: %w", err)
	}
	return sets, nil
}

// newLogger returns a file logger when --log is set, otherwise a discarding
// one. The terminal belongs to the UI. The returned closer is never nil.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
