package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "oddtile.yaml"

// Load returns the game configuration.
//
// An explicit path must exist and parse. Without one, the first readable
// file among SearchPaths wins, and the embedded defaults are used when
// none is found. Broken files on the search path are skipped.
func Load(customPath string) (OddTileConfig, error) {
	if customPath != "" {
		return readFile(customPath)
	}

	for _, p := range SearchPaths() {
		if cfg, err := readFile(p); err == nil {
			return cfg, nil
		}
	}

	var cfg OddTileConfig
	if err := yaml.Unmarshal(defaultOddTileYAML, &cfg); err != nil {
		return DefaultOddTileConfig(), nil
	}
	cfg.Normalize()
	return cfg, nil
}

// SearchPaths lists the implicit config locations in lookup order:
// ~/.oddtile/configs/oddtile.yaml, then ./configs/oddtile.yaml.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".oddtile", "configs", ConfigFile))
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

func readFile(path string) (OddTileConfig, error) {
	var cfg OddTileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
