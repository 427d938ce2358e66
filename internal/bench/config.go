package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/hybridvec"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config describes one benchmark session.
type Config struct {
	NumVectors int     `yaml:"num_vectors"`
	Dimension  int     `yaml:"dimension"`
	Iterations int     `yaml:"iterations"`
	Runs       int     `yaml:"runs"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`

	// Seed 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// Workers is the number of goroutines per distance pass.
	Workers int `yaml:"workers"`

	// Padding is "even" or "legacy".
	Padding string `yaml:"padding"`

	// CodeBits is the width of the quantized half: 8 or 16.
	CodeBits int `yaml:"code_bits"`

	// OutputDir receives speedup_results.csv and speedup_stats.csv.
	// Empty disables CSV output.
	OutputDir string `yaml:"output_dir"`
}

// DefaultConfig returns the parameters of the reference benchmark.
func DefaultConfig() Config {
	return Config{
		NumVectors: 1000,
		Dimension:  4096,
		Iterations: 100,
		Runs:       500,
		Min:        -10,
		Max:        10,
		Workers:    runtime.GOMAXPROCS(0),
		Padding:    hybridvec.PadToEven.String(),
		CodeBits:   8,
		OutputDir:  ".",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the
// result. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the config for values the runner cannot work with.
func (c Config) Validate() error {
	switch {
	case c.NumVectors < 2:
		return fmt.Errorf("%w: num_vectors must be at least 2, got %d", ErrInvalidConfig, c.NumVectors)
	case c.Dimension < 1:
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalidConfig, c.Dimension)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, c.Runs)
	case !(c.Max > c.Min):
		return fmt.Errorf("%w: max (%g) must exceed min (%g)", ErrInvalidConfig, c.Max, c.Min)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.CodeBits != 8 && c.CodeBits != 16:
		return fmt.Errorf("%w: code_bits must be 8 or 16, got %d", ErrInvalidConfig, c.CodeBits)
	}
	if _, ok := hybridvec.ParsePadding(c.Padding); !ok {
		return fmt.Errorf("%w: unknown padding %q", ErrInvalidConfig, c.Padding)
	}
	return nil
}

func (c Config) padding() hybridvec.Padding {
	p, _ := hybridvec.ParsePadding(c.Padding)
	return p
}
