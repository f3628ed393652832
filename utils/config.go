package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-env/model"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation driver
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                int64         `json:"seed"` // 0 draws from an unseeded source
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	AddPatterns         bool          `json:"add_patterns"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                model.DefaultRows,
		Cols:                model.DefaultCols,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      true, // Enable active region optimization
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
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

// Bind attaches the configuration to the provided FlagSet so flags override
// file and default values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 for no limit)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomization (0 for unseeded)")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute next states on all CPUs")
	fs.BoolVar(&c.UseMemoryPool, "memory-pool", c.UseMemoryPool, "reuse staging buffers between generations")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only compute the region around living cells")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "re-randomize on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant frames before a restart")
	fs.IntVar(&c.InjectionCount, "injection-count", c.InjectionCount, "random cells injected while stagnant")
	fs.BoolVar(&c.AddPatterns, "patterns", c.AddPatterns, "stamp gliders and blinkers on start")
}

// Validate checks that the configuration describes a runnable simulation.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation threshold %d", c.StagnationThreshold)
	case c.InjectionCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative injection count %d", c.InjectionCount)
	}
	return nil
}
