package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-env/model"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"rows": 12, "cols": 34, "seed": 9, "use_parallel": false}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Rows != 12 || config.Cols != 34 || config.Seed != 9 || config.UseParallel {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatalf("missing key did not keep its default: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: got %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{rows"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatalf("malformed file: expected an error")
	}
}

func TestDefaultConfigUsesGridDefaults(t *testing.T) {
	config := DefaultConfig()
	if config.Rows != model.DefaultRows || config.Cols != model.DefaultCols {
		t.Fatalf("default size %dx%d, want %dx%d", config.Rows, config.Cols, model.DefaultRows, model.DefaultCols)
	}
}

func TestBindOverridesValues(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.Bind(fs)

	args := []string{
		"-rows", "7", "-seed", "3", "-frame-rate", "1s", "-parallel=false",
		"-memory-pool=false", "-bounded=false", "-stagnation-threshold", "9", "-injection-count", "4",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if config.Rows != 7 || config.Seed != 3 || config.FrameRate != time.Second || config.UseParallel {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.UseMemoryPool || config.UseBoundedGrid || config.StagnationThreshold != 9 || config.InjectionCount != 4 {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.Cols != DefaultConfig().Cols {
		t.Fatalf("unset flag changed cols to %d", config.Cols)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := map[string]func(*Config){
		"zero rows":          func(c *Config) { c.Rows = 0 },
		"negative cols":      func(c *Config) { c.Cols = -2 },
		"negative frame":     func(c *Config) { c.FrameRate = -time.Second },
		"negative max gens":  func(c *Config) { c.MaxGenerations = -1 },
		"negative threshold": func(c *Config) { c.StagnationThreshold = -1 },
		"negative injection": func(c *Config) { c.InjectionCount = -1 },
	}
	for name, mutate := range tests {
		config := DefaultConfig()
		mutate(&config)
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", name, err)
		}
	}
}
