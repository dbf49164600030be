package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tictactoe/meta"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelPath is the location of the config file inside the XDG config dirs.
const RelPath = "tictactoe/config.yaml"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Seed for every random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`

	Learner    Learner    `yaml:"learner"`
	Search     Search     `yaml:"search"`
	Experiment Experiment `yaml:"experiment"`
}

type Learner struct {
	LearningRate    float64 `yaml:"learning_rate"`
	ExplorationRate float64 `yaml:"exploration_rate"`
	DrawValue       float64 `yaml:"draw_value"`
	InitValue       float64 `yaml:"init_value"`
}

type Search struct {
	Cache bool `yaml:"cache"`
}

type Experiment struct {
	Battles        int    `yaml:"battles"`
	GamesPerBattle int    `yaml:"games_per_battle"`
	OutputDir      string `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		Learner: Learner{
			LearningRate:    meta.LEARNING_RATE,
			ExplorationRate: meta.EXPLORATION_RATE,
			DrawValue:       meta.DRAW_VALUE,
			InitValue:       meta.INIT_VALUE,
		},
		Search: Search{Cache: true},
		Experiment: Experiment{
			Battles:        meta.BATTLES,
			GamesPerBattle: meta.GAMES_PER_BATTLE,
			OutputDir:      filepath.Join(xdg.DataHome, "tictactoe", "experiments"),
		},
	}
}

// Find returns the path of the first config file in the XDG config dirs.
func Find() (string, bool) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load overlays the YAML file at path on the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	l := c.Learner
	if !(l.LearningRate > 0 && l.LearningRate < 1) {
		return fmt.Errorf("%w: learning_rate %v not in (0,1)", ErrInvalid, l.LearningRate)
	}
	if !(l.ExplorationRate > 0 && l.ExplorationRate < 1) {
		return fmt.Errorf("%w: exploration_rate %v not in (0,1)", ErrInvalid, l.ExplorationRate)
	}
	if l.DrawValue < meta.LOSS_VALUE || l.DrawValue > meta.WIN_VALUE {
		return fmt.Errorf("%w: draw_value %v", ErrInvalid, l.DrawValue)
	}
	if l.InitValue < meta.LOSS_VALUE || l.InitValue > meta.WIN_VALUE {
		return fmt.Errorf("%w: init_value %v", ErrInvalid, l.InitValue)
	}
	if c.Experiment.Battles <= 0 || c.Experiment.GamesPerBattle <= 0 {
		return fmt.Errorf("%w: experiment needs positive battles and games_per_battle", ErrInvalid)
	}
	return nil
}
