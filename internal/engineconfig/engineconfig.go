package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"ball-splitter/internal/env"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/splitter.yaml"

// Config holds the simulation parameters and host preferences. Persisted as YAML.
// Arena size, cap and split ratio go to physics.NewWorld; the rest is read by the hosts.
type Config struct {
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	MaxBalls   int     `yaml:"max_balls"`
	SplitRatio float32 `yaml:"split_ratio"`
	Seed       uint64  `yaml:"seed,omitempty"` // 0 = seed from the clock

	Scale       float32 `yaml:"scale"`
	TargetFPS   int     `yaml:"target_fps"`
	ShowFPS     bool    `yaml:"show_fps"`
	ShowStats   bool    `yaml:"show_stats"`
	Sound       bool    `yaml:"sound"`
	SnapshotDir string  `yaml:"snapshot_dir"`
	LogPath     string  `yaml:"log_path"`
}

// Default returns the default configuration: an 800x600 arena capped at 512 balls, ratio 0.7.
func Default() Config {
	return Config{
		Width:       800,
		Height:      600,
		MaxBalls:    512,
		SplitRatio:  0.7,
		Scale:       1,
		TargetFPS:   60,
		ShowFPS:     false,
		ShowStats:   true,
		Sound:       false,
		SnapshotDir: "snapshots",
		LogPath:     "logs/splitter.txt",
	}
}

// overlay mirrors Config with pointer fields so a key present in the file, even with a
// zero value such as false, is told apart from a missing key.
type overlay struct {
	Width      *float32 `yaml:"width"`
	Height     *float32 `yaml:"height"`
	MaxBalls   *int     `yaml:"max_balls"`
	SplitRatio *float32 `yaml:"split_ratio"`
	Seed       *uint64  `yaml:"seed"`

	Scale       *float32 `yaml:"scale"`
	TargetFPS   *int     `yaml:"target_fps"`
	ShowFPS     *bool    `yaml:"show_fps"`
	ShowStats   *bool    `yaml:"show_stats"`
	Sound       *bool    `yaml:"sound"`
	SnapshotDir *string  `yaml:"snapshot_dir"`
	LogPath     *string  `yaml:"log_path"`
}

// Load reads the YAML file at path and lays every key it sets over Default().
// A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file overlay
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&cfg, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, fmt.Errorf("merge config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SavePrefs records the overlay toggles in the file at path, keeping every other key the file
// already has. Environment overrides are not written back.
func SavePrefs(path string, showFPS, showStats bool) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	cfg.ShowFPS = showFPS
	cfg.ShowStats = showStats
	return Save(path, cfg)
}

// ApplyEnv overrides fields from SPLITTER_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v, ok, err := env.Float32("SPLITTER_WIDTH"); err != nil {
		return err
	} else if ok {
		cfg.Width = v
	}
	if v, ok, err := env.Float32("SPLITTER_HEIGHT"); err != nil {
		return err
	} else if ok {
		cfg.Height = v
	}
	if v, ok, err := env.Int("SPLITTER_MAX_BALLS"); err != nil {
		return err
	} else if ok {
		cfg.MaxBalls = v
	}
	if v, ok, err := env.Float32("SPLITTER_SPLIT_RATIO"); err != nil {
		return err
	} else if ok {
		cfg.SplitRatio = v
	}
	if v, ok, err := env.Uint64("SPLITTER_SEED"); err != nil {
		return err
	} else if ok {
		cfg.Seed = v
	}
	if v, ok, err := env.Bool("SPLITTER_SOUND"); err != nil {
		return err
	} else if ok {
		cfg.Sound = v
	}
	return nil
}

// Validate reports the first field that would make the world or a host misbehave.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0) || math32.IsInf(c.Width, 0) || math32.IsInf(c.Height, 0):
		return fmt.Errorf("arena %gx%g must be positive and finite", c.Width, c.Height)
	case c.MaxBalls < 1:
		return fmt.Errorf("max_balls %d must be at least 1", c.MaxBalls)
	case !(c.SplitRatio > 0 && c.SplitRatio < 1):
		return fmt.Errorf("split_ratio %g must be in (0, 1)", c.SplitRatio)
	case !(c.Scale > 0):
		return fmt.Errorf("scale %g must be positive", c.Scale)
	case c.TargetFPS < 1:
		return fmt.Errorf("target_fps %d must be at least 1", c.TargetFPS)
	}
	return nil
}

// Resolve builds the effective configuration: the .env file at envPath is loaded into the
// process environment, the YAML file at configPath is laid over the defaults, SPLITTER_*
// variables override both, and the result is validated.
func Resolve(configPath, envPath string) (Config, error) {
	if envPath != "" {
		if err := env.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}
	cfg, err := Load(configPath)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
