package oddtile

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/oddtile/internal/registry"
)

func TestGenerateInvariants(t *testing.T) {
	sets := registry.List()

	for seed := int64(0); seed < 200; seed++ {
		gen := NewGenerator(seed, DefaultBoardSize)
		r, err := gen.Generate(sets)
		if err != nil {
			t.Fatalf("seed %d: Generate() failed: %v", seed, err)
		}

		if len(r.Cells) != DefaultBoardSize {
			t.Fatalf("seed %d: got %d cells, want %d", seed, len(r.Cells), DefaultBoardSize)
		}
		if r.Common == r.Odd {
			t.Fatalf("seed %d: common and odd tile are both %q", seed, r.Common)
		}

		commons, odds := 0, 0
		for _, id := range r.Cells {
			switch id {
			case r.Common:
				commons++
			case r.Odd:
				odds++
			default:
				t.Fatalf("seed %d: unexpected tile %q on board", seed, id)
			}
		}
		if odds != 1 {
			t.Errorf("seed %d: odd tile appears %d times, want 1", seed, odds)
		}
		if commons != DefaultBoardSize-1 {
			t.Errorf("seed %d: common tile appears %d times, want %d", seed, commons, DefaultBoardSize-1)
		}
		if r.Cells[r.OddIndex] != r.Odd {
			t.Errorf("seed %d: OddIndex %d points at %q", seed, r.OddIndex, r.Cells[r.OddIndex])
		}
		if !r.IsOdd(r.Odd) || r.IsOdd(r.Common) {
			t.Errorf("seed %d: IsOdd disagrees with Odd/Common", seed)
		}
	}
}

func TestGenerateTwoTileSet(t *testing.T) {
	set := registry.TileSet{
		Name:  "pair",
		Tiles: []registry.Tile{{ID: "a"}, {ID: "b"}},
	}

	seen := map[[2]string]bool{}
	for seed := int64(0); seed < 100; seed++ {
		r, err := NewGenerator(seed, 4).Generate([]registry.TileSet{set})
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		pair := [2]string{r.Common, r.Odd}
		if pair != [2]string{"a", "b"} && pair != [2]string{"b", "a"} {
			t.Fatalf("seed %d: got common/odd %v", seed, pair)
		}
		seen[pair] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both orderings over 100 seeds, got %v", seen)
	}
}

func TestGenerateDuplicateIDs(t *testing.T) {
	// Duplicates collapse; two distinct IDs remain.
	set := registry.TileSet{
		Name:  "dupes",
		Tiles: []registry.Tile{{ID: "a"}, {ID: "a"}, {ID: "b"}},
	}
	for seed := int64(0); seed < 50; seed++ {
		r, err := NewGenerator(seed, 9).Generate([]registry.TileSet{set})
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		if r.Common == r.Odd {
			t.Fatalf("seed %d: common == odd == %q", seed, r.Common)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	sets := registry.List()
	g1 := NewGenerator(42, DefaultBoardSize)
	g2 := NewGenerator(42, DefaultBoardSize)

	for i := range 10 {
		r1, _ := g1.Generate(sets)
		r2, _ := g2.Generate(sets)
		if !slices.Equal(r1.Cells, r2.Cells) {
			t.Fatalf("round %d differs between generators with the same seed", i)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := NewGenerator(1, DefaultBoardSize).Generate(nil); !errors.Is(err, ErrNoTileSets) {
		t.Errorf("Generate(nil) error = %v, want ErrNoTileSets", err)
	}

	single := registry.TileSet{Name: "one", Tiles: []registry.Tile{{ID: "x"}, {ID: "x"}}}
	_, err := NewGenerator(1, DefaultBoardSize).Generate([]registry.TileSet{single})
	if !errors.Is(err, registry.ErrTooFewTiles) {
		t.Errorf("single-tile set error = %v, want ErrTooFewTiles", err)
	}

	if _, err := NewGenerator(1, 1).Generate(registry.List()); !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("size 1 error = %v, want ErrBoardTooSmall", err)
	}
}
