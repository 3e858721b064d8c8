package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	Dimension      int           `json:"dimension"`
	Speed          string        `json:"speed"`
	Seed           int64         `json:"seed"`
	RefreshRate    time.Duration `json:"refresh_rate"`
	MaxGenerations int           `json:"max_generations"`
	Interactive    bool          `json:"interactive"`
	ShowStats      bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Dimension:      60,
		Speed:          engine.SpeedFast.String(),
		Seed:           0, // time based
		RefreshRate:    100 * time.Millisecond,
		MaxGenerations: 0,
		Interactive:    true,
		ShowStats:      true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Dimension, "dimension", c.Dimension, "side length of the square board")
	fs.StringVar(&c.Speed, "speed", c.Speed, "tick speed: slow, medium or fast")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population, 0 for time based")
	fs.DurationVar(&c.RefreshRate, "refresh", c.RefreshRate, "terminal refresh rate")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "exit after this many generations, 0 for no limit")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "read commands from stdin")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "show performance statistics")
}

// Validate checks the dimension and speed and returns the parsed speed
func (c Config) Validate() (engine.Speed, error) {
	if c.Dimension <= 0 {
		return 0, errors.Wrapf(model.ErrInvalidDimension, "[Validate] dimension: %d", c.Dimension)
	}
	speed, err := engine.ParseSpeed(c.Speed)
	if err != nil {
		return 0, errors.Wrap(err, "[Validate]")
	}
	if c.RefreshRate <= 0 {
		return 0, errors.Errorf("[Validate] refresh rate must be positive, got %v", c.RefreshRate)
	}
	return speed, nil
}
