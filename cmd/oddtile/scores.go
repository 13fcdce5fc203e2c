package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oddtile/internal/platform/tui"
	"github.com/vovakirdan/oddtile/internal/storage"
)

var (
	flagTop         int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the most recent entries and the top scores.

Examples:
  oddtile scores
  oddtile scores --top 20
  oddtile scores -i                 # Browse in a table
  oddtile scores --leaderboard ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of top scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Leaderboard.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	recent, err := store.LastEntries(storage.MaxRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	top, err := store.TopScores(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'oddtile play' to set the first high score!")
		return
	}

	fmt.Println("Recent")
	fmt.Println()
	for _, e := range recent {
		fmt.Printf("  %-10d  %s\n", e.Score, displayName(e.Name))
	}

	fmt.Println()
	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %-10s  %-6s  %s\n", "Rank", "Score", "Name", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-6s  %s\n", "----", "-----", "----", "----", "----")
	for i, e := range top {
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		mode := e.Mode
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-10s  %-6s  %s\n", i+1, e.Score, displayName(e.Name), mode, date)
	}

	if sq, ok := store.(*storage.SQLiteStore); ok {
		if stats, err := sq.Stats(""); err == nil {
			fmt.Println()
			fmt.Printf("Games played: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
		}
	}
}

func displayName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
