// Package registry provides a global catalog of tile sets.
// Built-in sets register themselves in init(); extra sets can be loaded from
// YAML files at start-up. The round generator draws from this catalog.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/oddtile/internal/core"
)

// ErrTooFewTiles is returned when a tile set cannot provide both a common
// and an odd tile.
var ErrTooFewTiles = errors.New("registry: tile set needs at least 2 distinct tiles")

// ErrDuplicateTile is returned when a set reuses a tile ID owned by another set.
var ErrDuplicateTile = errors.New("registry: tile id already registered")

// ErrUnknownSet is returned when a requested tile set is not registered.
var ErrUnknownSet = errors.New("registry: unknown tile set")

// Tile is a single tile design. ID is what the game logic compares,
// Glyph and Color are what the terminal draws.
type Tile struct {
	ID    string
	Glyph string
	Color core.Color
}

// TileSet is a thematic group of tiles (e.g. "cats").
type TileSet struct {
	Name  string
	Title string
	Tiles []Tile
}

// IDs returns the tile identifiers in declaration order.
func (s TileSet) IDs() []string {
	ids := make([]string, len(s.Tiles))
	for i, t := range s.Tiles {
		ids[i] = t.ID
	}
	return ids
}

// Validate checks the set invariants: a name and at least two distinct tile IDs.
func (s TileSet) Validate() error {
	if s.Name == "" {
		return errors.New("registry: tile set has no name")
	}
	distinct := make(map[string]struct{}, len(s.Tiles))
	for _, t := range s.Tiles {
		if t.ID == "" {
			return fmt.Errorf("registry: tile set %q has a tile without id", s.Name)
		}
		distinct[t.ID] = struct{}{}
	}
	if len(distinct) < 2 {
		return fmt.Errorf("%w: %q has %d", ErrTooFewTiles, s.Name, len(distinct))
	}
	return nil
}

var (
	sets  = make(map[string]TileSet)
	tiles = make(map[string]Tile)
	mu    sync.RWMutex
)

// Register adds a tile set to the registry.
// Returns an error if the set is invalid, its name is already taken or one
// of its tile IDs belongs to another set. Tile IDs are global so renderers
// can look a tile up by ID alone.
func Register(set TileSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	if set.Title == "" {
		set.Title = set.Name
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := sets[set.Name]; exists {
		return fmt.Errorf("registry: tile set %q already registered", set.Name)
	}
	for _, t := range set.Tiles {
		if _, taken := tiles[t.ID]; taken {
			return fmt.Errorf("%w: %q in set %q", ErrDuplicateTile, t.ID, set.Name)
		}
	}

	sets[set.Name] = set
	for _, t := range set.Tiles {
		if _, ok := tiles[t.ID]; !ok {
			tiles[t.ID] = t
		}
	}
	return nil
}

// MustRegister is Register for built-in sets; it panics on error.
func MustRegister(set TileSet) {
	if err := Register(set); err != nil {
		panic(err)
	}
}

// List returns all registered tile sets, sorted by name.
func List() []TileSet {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TileSet, 0, len(sets))
	for _, s := range sets {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the tile set with the given name.
func Get(name string) (TileSet, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sets[name]
	if !ok {
		return TileSet{}, fmt.Errorf("%w %q", ErrUnknownSet, name)
	}
	return s, nil
}

// Select returns the named sets in the given order, skipping repeated
// names. No names selects every registered set. Unknown names are all
// reported in one ErrUnknownSet error.
func Select(names []string) ([]TileSet, error) {
	if len(names) == 0 {
		return List(), nil
	}

	var unknown []string
	for _, name := range names {
		if !Exists(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSet, strings.Join(unknown, ", "))
	}

	var (
		seen   []string
		result []TileSet
	)
	for _, name := range names {
		if slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)
		set, err := Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, set)
	}
	return result, nil
}

// Exists checks if a tile set with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sets[name]
	return ok
}

// LookupTile returns the tile with the given ID. Each ID belongs to exactly
// one registered set.
func LookupTile(id string) (Tile, bool) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := tiles[id]
	return t, ok
}

// unregister removes a set; used by tests to keep the global catalog clean.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()

	s, ok := sets[name]
	if !ok {
		return
	}
	delete(sets, name)
	for _, t := range s.Tiles {
		delete(tiles, t.ID)
	}
}
