package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidGame is returned when game.yaml fails validation.
	ErrInvalidGame = errors.New("invalid game config")
	// ErrInvalidLevel is returned when a level file fails validation.
	ErrInvalidLevel = errors.New("invalid level config")
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := l.decode("game.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/level<n>.yaml
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.decode(fmt.Sprintf("levels/level%d.yaml", n), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	return &cfg, nil
}

// Campaign holds game.yaml and every level it declares.
type Campaign struct {
	Game   *GameConfig
	Levels map[int]*LevelConfig
}

// LoadAll loads game.yaml and levels 1..Levels.
func (l *Loader) LoadAll() (*Campaign, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels := make(map[int]*LevelConfig, game.Levels)
	for n := 1; n <= game.Levels; n++ {
		lvl, err := l.LoadLevel(n)
		if err != nil {
			return nil, err
		}
		levels[n] = lvl
	}

	return &Campaign{Game: game, Levels: levels}, nil
}

func (l *Loader) decode(path string, out any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
