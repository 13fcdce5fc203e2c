package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List tile sets",
	Long: `Shows the built-in tile sets and any loaded from the configured
tile set directory. Sets listed under "enabled" in the config are the ones
rounds draw from.`,
	Args: cobra.NoArgs,
	Run:  runSets,
}

func runSets(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	sets, err := loadTileSets(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tile sets: %v\n", err)
		os.Exit(1)
	}

	if len(sets) == 0 {
		fmt.Println("No tile sets available.")
		return
	}

	fmt.Println("Tile sets:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range sets {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Tiles")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, s := range sets {
		glyphs := make([]string, len(s.Tiles))
		for i, t := range s.Tiles {
			glyphs[i] = t.Glyph
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, strings.Join(glyphs, "  "))
	}
}
