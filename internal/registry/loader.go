package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/oddtile/internal/core"
)

// yamlTileSet represents the YAML structure of a tile set file.
type yamlTileSet struct {
	Name  string     `yaml:"name"`
	Title string     `yaml:"title"`
	Tiles []yamlTile `yaml:"tiles"`
}

type yamlTile struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ParseYAML parses a tile set definition.
// Unknown colors fall back to the default color; a missing glyph uses the ID.
func ParseYAML(data []byte) (TileSet, error) {
	var ys yamlTileSet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return TileSet{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	set := TileSet{
		Name:  ys.Name,
		Title: ys.Title,
		Tiles: make([]Tile, 0, len(ys.Tiles)),
	}
	for _, yt := range ys.Tiles {
		color, _ := core.ParseColor(yt.Color)
		glyph := yt.Glyph
		if glyph == "" {
			glyph = yt.ID
		}
		set.Tiles = append(set.Tiles, Tile{ID: yt.ID, Glyph: glyph, Color: color})
	}

	if err := set.Validate(); err != nil {
		return TileSet{}, err
	}
	return set, nil
}

// Skipped names a tile set file that was not loaded or registered, and why.
type Skipped struct {
	Path string
	Err  error
}

func (s Skipped) Error() string {
	return fmt.Sprintf("%s: %v", s.Path, s.Err)
}

type loadedSet struct {
	path string
	set  TileSet
}

// LoadDir scans dir recursively for .yaml/.yml tile set files.
// Unreadable or invalid files are returned as skipped instead of failing
// the whole load. Sets are sorted by name.
func LoadDir(dir string) ([]TileSet, []Skipped, error) {
	loaded, skipped, err := loadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	sets := make([]TileSet, len(loaded))
	for i, l := range loaded {
		sets[i] = l.set
	}
	return sets, skipped, nil
}

func loadDir(dir string) ([]loadedSet, []Skipped, error) {
	var (
		loaded  []loadedSet
		skipped []Skipped
	)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			return nil
		}
		set, err := ParseYAML(data)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			return nil
		}

		loaded = append(loaded, loadedSet{path: path, set: set})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].set.Name < loaded[j].set.Name
	})
	return loaded, skipped, nil
}

// RegisterDir loads every tile set in dir and registers it. Files that fail
// to load and sets that Register rejects (taken name, reused tile ID) come
// back as skipped. Returns the names of the sets that were added.
func RegisterDir(dir string) ([]string, []Skipped, error) {
	loaded, skipped, err := loadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var added []string
	for _, l := range loaded {
		if err := Register(l.set); err != nil {
			skipped = append(skipped, Skipped{Path: l.path, Err: err})
			continue
		}
		added = append(added, l.set.Name)
	}
	return added, skipped, nil
}
