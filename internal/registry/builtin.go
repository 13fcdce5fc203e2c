package registry

import "github.com/vovakirdan/oddtile/internal/core"

// Built-in tile sets. Each has three tiles; one becomes the common tile of a
// round and one of the remaining two the odd tile.
func init() {
	MustRegister(TileSet{
		Name:  "cats",
		Title: "Cats",
		Tiles: []Tile{
			{ID: "cat1", Glyph: "=^.^=", Color: core.ColorOrange},
			{ID: "cat2", Glyph: "=^o^=", Color: core.ColorOrange},
			{ID: "cat3", Glyph: "=^-^=", Color: core.ColorOrange},
		},
	})
	MustRegister(TileSet{
		Name:  "dogs",
		Title: "Dogs",
		Tiles: []Tile{
			{ID: "dog1", Glyph: "U'.'U", Color: core.ColorYellow},
			{ID: "dog2", Glyph: "U'o'U", Color: core.ColorYellow},
			{ID: "dog3", Glyph: "U'w'U", Color: core.ColorYellow},
		},
	})
	MustRegister(TileSet{
		Name:  "octopi",
		Title: "Octopi",
		Tiles: []Tile{
			{ID: "octopus1", Glyph: "(oVo)", Color: core.ColorMagenta},
			{ID: "octopus2", Glyph: "(o^o)", Color: core.ColorMagenta},
			{ID: "octopus3", Glyph: "(ovo)", Color: core.ColorMagenta},
		},
	})
	MustRegister(TileSet{
		Name:  "pandas",
		Title: "Pandas",
		Tiles: []Tile{
			{ID: "panda1", Glyph: "(@.@)", Color: core.ColorBrightWhite},
			{ID: "panda2", Glyph: "(@_@)", Color: core.ColorBrightWhite},
			{ID: "panda3", Glyph: "(@o@)", Color: core.ColorBrightWhite},
		},
	})
	MustRegister(TileSet{
		Name:  "raccoons",
		Title: "Raccoons",
		Tiles: []Tile{
			{ID: "raccoon1", Glyph: "[o.o]", Color: core.ColorGray},
			{ID: "raccoon2", Glyph: "[o,o]", Color: core.ColorGray},
			{ID: "raccoon3", Glyph: "[o_o]", Color: core.ColorGray},
		},
	})
}
