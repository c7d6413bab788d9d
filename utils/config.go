package utils

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/torus-gol/model"
)

//go:embed defaults/gol.yaml
var defaultConfigYAML []byte

// LocalConfigPath is checked when no explicit config path is given
var LocalConfigPath = filepath.Join("configs", "gol.yaml")

// ErrInvalidConfig is wrapped by Validate for every rejected field
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Width            int           `yaml:"width"`
	Height           int           `yaml:"height"`
	TicksPerSecond   int           `yaml:"ticks_per_second"` // 0 runs unpaced
	Workers          int           `yaml:"workers"`
	Pattern          string        `yaml:"pattern"`
	OriginX          int           `yaml:"origin_x"`
	OriginY          int           `yaml:"origin_y"`
	Cells            []model.Point `yaml:"cells"` // extra live cells, added after the pattern
	RandomDensity    float64       `yaml:"random_density"`
	RandomSeed       int64         `yaml:"random_seed"`
	MaxGenerations   int           `yaml:"max_generations"` // 0 runs until interrupted
	HistorySize      int           `yaml:"history_size"`
	StopOnStagnation bool          `yaml:"stop_on_stagnation"`
	Render           bool          `yaml:"render"`
	LogLevel         string        `yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            50,
		Height:           50,
		TicksPerSecond:   10,
		Workers:          1,
		Pattern:          "reference",
		RandomDensity:    0.15,
		MaxGenerations:   0,
		HistorySize:      model.DefaultHistorySize,
		StopOnStagnation: false,
		Render:           true,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from YAML.
// Search order: path -> ./configs/gol.yaml -> embedded default -> DefaultConfig.
// Fields missing from the file keep their default values.
// A local config that exists but does not parse is an error.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", path)
		}
		return ParseConfig(data)
	}

	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		config, err := ParseConfig(data)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to parse file: %+v", LocalConfigPath)
		}
		return config, nil
	}

	if config, err := ParseConfig(defaultConfigYAML); err == nil {
		return config, nil
	}
	return DefaultConfig(), nil
}

// ParseConfig decodes YAML on top of DefaultConfig
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrap(err, "[ParseConfig] failed to unmarshal config")
	}
	return config, nil
}

// Validate rejects configurations the simulation cannot run
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TicksPerSecond < 0:
		return errors.Wrapf(ErrInvalidConfig, "ticks_per_second must not be negative, got %d", c.TicksPerSecond)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.Pattern != "" && c.Pattern != model.PatternRandom {
		if _, err := model.LookupPattern(c.Pattern); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	return nil
}
