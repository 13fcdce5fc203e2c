// Package config provides YAML-based configuration loading and difficulty
// modes for the odd tile game.
package config

// OddTileConfig contains all configuration for the game.
type OddTileConfig struct {
	Modes       ModesConfig       `yaml:"modes"`
	Board       BoardConfig       `yaml:"board"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	TileSets    TileSetsConfig    `yaml:"tilesets"`
}

// ModesConfig defines the countdown of each difficulty mode, in seconds.
type ModesConfig struct {
	EasySeconds   int `yaml:"easy_seconds"`
	MediumSeconds int `yaml:"medium_seconds"`
	HardSeconds   int `yaml:"hard_seconds"`
}

// BoardConfig defines board size and terminal tile geometry.
type BoardConfig struct {
	Size       int `yaml:"size"`        // Tiles per round (common + odd)
	Columns    int `yaml:"columns"`     // Tiles per row
	TileWidth  int `yaml:"tile_width"`  // Tile width in cells
	TileHeight int `yaml:"tile_height"` // Tile height in cells
	GapX       int `yaml:"gap_x"`       // Horizontal gap between tiles
	GapY       int `yaml:"gap_y"`       // Vertical gap between tiles
}

// LeaderboardConfig defines where scores are persisted.
type LeaderboardConfig struct {
	Path   string `yaml:"path"`   // .txt (text) or .db (SQLite)
	Recent int    `yaml:"recent"` // Entries shown after a round (1-3)
}

// TileSetsConfig selects which tile sets rounds draw from.
type TileSetsConfig struct {
	Dir     string   `yaml:"dir"`     // Extra YAML tile sets, optional
	Enabled []string `yaml:"enabled"` // Empty means all registered sets
}

// Normalize fills zero or out-of-range values with defaults.
func (c *OddTileConfig) Normalize() {
	d := DefaultOddTileConfig()

	if c.Modes.EasySeconds <= 0 {
		c.Modes.EasySeconds = d.Modes.EasySeconds
	}
	if c.Modes.MediumSeconds <= 0 {
		c.Modes.MediumSeconds = d.Modes.MediumSeconds
	}
	if c.Modes.HardSeconds <= 0 {
		c.Modes.HardSeconds = d.Modes.HardSeconds
	}

	if c.Board.Size < 2 {
		c.Board.Size = d.Board.Size
	}
	if c.Board.Columns <= 0 {
		c.Board.Columns = d.Board.Columns
	}
	if c.Board.TileWidth <= 0 {
		c.Board.TileWidth = d.Board.TileWidth
	}
	if c.Board.TileHeight <= 0 {
		c.Board.TileHeight = d.Board.TileHeight
	}
	// Inclusive hit boxes reach one cell past the tile; gaps keep them apart.
	if c.Board.GapX < 1 {
		c.Board.GapX = 1
	}
	if c.Board.GapY < 1 {
		c.Board.GapY = 1
	}

	if c.Leaderboard.Path == "" {
		c.Leaderboard.Path = d.Leaderboard.Path
	}
	if c.Leaderboard.Recent < 1 || c.Leaderboard.Recent > 3 {
		c.Leaderboard.Recent = d.Leaderboard.Recent
	}
}
