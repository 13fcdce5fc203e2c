// Package oddtile implements the "find the odd tile" game: round generation,
// board layout and hit testing, the countdown timer and the game session
// state machine. It has no terminal dependencies; the platform layer feeds it
// ticks and pointer events and renders its read-only state.
package oddtile

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/oddtile/internal/registry"
)

// DefaultBoardSize is 35 common tiles plus one odd tile.
const DefaultBoardSize = 36

var (
	// ErrNoTileSets is returned when the generator has nothing to draw from.
	ErrNoTileSets = errors.New("oddtile: no tile sets")

	// ErrBoardTooSmall is returned for boards that cannot hold a common and an odd tile.
	ErrBoardTooSmall = errors.New("oddtile: board size must be at least 2")
)

// Round is one board: Size-1 copies of Common and a single Odd tile, shuffled.
type Round struct {
	Set      string   // Name of the tile set the round was drawn from
	Size     int      // Number of cells
	Common   string   // Tile ID repeated on every cell but one
	Odd      string   // Tile ID of the single odd cell
	Cells    []string // Tile ID per cell, row-major
	OddIndex int      // Index of the odd cell in Cells

	// check maps every tile ID on the board to whether it is the odd one.
	check map[string]bool
}

// IsOdd reports whether tileID is the odd tile of this round.
func (r Round) IsOdd(tileID string) bool {
	return r.check[tileID]
}

// Generator produces rounds from tile sets using its own RNG.
type Generator struct {
	rng  *rand.Rand
	size int
}

// NewGenerator creates a generator for boards of the given size.
// A zero seed is valid and deterministic; callers wanting variety pass a time-based seed.
func NewGenerator(seed int64, size int) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		size: size,
	}
}

// Size returns the board size of generated rounds.
func (g *Generator) Size() int {
	return g.size
}

// Generate picks a tile set uniformly at random and builds a shuffled round.
func (g *Generator) Generate(sets []registry.TileSet) (Round, error) {
	if g.size < 2 {
		return Round{}, ErrBoardTooSmall
	}
	if len(sets) == 0 {
		return Round{}, ErrNoTileSets
	}

	set := sets[g.rng.Intn(len(sets))]
	pool := distinct(set.IDs())
	if len(pool) < 2 {
		return Round{}, fmt.Errorf("%w: %q", registry.ErrTooFewTiles, set.Name)
	}

	// Take the common tile out of the pool so it cannot be picked as odd.
	ci := g.rng.Intn(len(pool))
	common := pool[ci]
	pool = append(pool[:ci:ci], pool[ci+1:]...)

	cells := make([]string, g.size-1, g.size)
	for i := range cells {
		cells[i] = common
	}

	odd := pool[g.rng.Intn(len(pool))]
	cells = append(cells, odd)

	g.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	oddIndex := -1
	for i, id := range cells {
		if id == odd {
			oddIndex = i
			break
		}
	}

	return Round{
		Set:      set.Name,
		Size:     g.size,
		Common:   common,
		Odd:      odd,
		Cells:    cells,
		OddIndex: oddIndex,
		check:    map[string]bool{common: false, odd: true},
	}, nil
}

// distinct returns ids without duplicates, keeping first occurrences in order.
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
