package config

import (
	_ "embed"
)

//go:embed defaults/oddtile.yaml
var defaultOddTileYAML []byte

// DefaultOddTileConfig returns the hardcoded default configuration.
func DefaultOddTileConfig() OddTileConfig {
	return OddTileConfig{
		Modes: ModesConfig{
			EasySeconds:   90,
			MediumSeconds: 60,
			HardSeconds:   30,
		},
		Board: BoardConfig{
			Size:       36,
			Columns:    6,
			TileWidth:  7,
			TileHeight: 1,
			GapX:       1,
			GapY:       1,
		},
		Leaderboard: LeaderboardConfig{
			Path:   "~/.oddtile/leaderboard.txt",
			Recent: 3,
		},
		TileSets: TileSetsConfig{
			Dir: "~/.oddtile/tilesets",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultOddTileYAML
}
