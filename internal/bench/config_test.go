package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.NumVectors)
	assert.Equal(t, 4096, cfg.Dimension)
	assert.Equal(t, 100, cfg.Iterations)
	assert.Equal(t, 500, cfg.Runs)
	assert.Equal(t, -10.0, cfg.Min)
	assert.Equal(t, 10.0, cfg.Max)
	assert.Equal(t, 8, cfg.CodeBits)
	assert.Equal(t, "even", cfg.Padding)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few vectors", func(c *Config) { c.NumVectors = 1 }},
		{"zero dimension", func(c *Config) { c.Dimension = 0 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"zero runs", func(c *Config) { c.Runs = 0 }},
		{"empty range", func(c *Config) { c.Min, c.Max = 1, 1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"bad code bits", func(c *Config) { c.CodeBits = 4 }},
		{"bad padding", func(c *Config) { c.Padding = "odd" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("OverridesDefaults", func(t *testing.T) {
		path := filepath.Join(dir, "bench.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
num_vectors: 10
dimension: 33
runs: 2
padding: legacy
code_bits: 16
seed: 7
`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.NumVectors)
		assert.Equal(t, 33, cfg.Dimension)
		assert.Equal(t, 2, cfg.Runs)
		assert.Equal(t, "legacy", cfg.Padding)
		assert.Equal(t, 16, cfg.CodeBits)
		assert.Equal(t, int64(7), cfg.Seed)
		// untouched keys keep their defaults
		assert.Equal(t, 100, cfg.Iterations)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("vectors: 10\n"), 0o600))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("code_bits: 3\n"), 0o600))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
