package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchreport/internal/benchmark"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "bench", cfg.Dir)
	assert.Equal(t, 5.0, cfg.StableBand)
	assert.Equal(t, benchmark.DefaultWeights(), cfg.Weights)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("BENCHREPORT_DIR", "results")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dir: nightly
trend:
  stable_band: 10
weights:
  median: 0.5
  p90: 0.2
  mean: 0.1
  p99: 0.1
  consistency: 0.1
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nightly", cfg.Dir)
	assert.Equal(t, 10.0, cfg.StableBand)
	assert.Equal(t, 0.5, cfg.Weights.Median)
}

func TestLoadRejectsBadWeights(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights:\n  median: 0.9\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate(t *testing.T) {
	cfg := Config{Dir: "bench", StableBand: 5, Weights: benchmark.DefaultWeights()}
	assert.NoError(t, Validate(cfg))

	cfg.Dir = ""
	cfg.StableBand = -1
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dir must not be empty")
	assert.Contains(t, err.Error(), "stable_band")
}
