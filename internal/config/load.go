package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"benchreport/internal/benchmark"
)

// Config holds all report settings.
type Config struct {
	// Dir is the directory scanned for benchmark result files.
	Dir string
	// Weights is the scoring scheme applied to every trace.
	Weights benchmark.Weights
	// StableBand is the percent change within which a trace counts as
	// STABLE in the trend comparison.
	StableBand float64
}

// Load initializes the configuration from file and environment variables.
// Every setting has a default, so running with no config at all is valid.
func Load(cfgFile string) (Config, error) {
	// explicit .env loading, ignored if missing
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("BENCHREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("dir", "bench")
	viper.SetDefault("trend.stable_band", 5.0)

	w := benchmark.DefaultWeights()
	viper.SetDefault("weights.median", w.Median)
	viper.SetDefault("weights.p90", w.P90)
	viper.SetDefault("weights.mean", w.Mean)
	viper.SetDefault("weights.p99", w.P99)
	viper.SetDefault("weights.consistency", w.Consistency)

	if err := viper.ReadInConfig(); err != nil {
		// A missing implicit config file is fine; an explicitly named one
		// that fails to read is not.
		if cfgFile != "" {
			return Config{}, err
		}
	}

	cfg := Config{
		Dir:        viper.GetString("dir"),
		StableBand: viper.GetFloat64("trend.stable_band"),
		Weights: benchmark.Weights{
			Median:      viper.GetFloat64("weights.median"),
			P90:         viper.GetFloat64("weights.p90"),
			Mean:        viper.GetFloat64("weights.mean"),
			P99:         viper.GetFloat64("weights.p99"),
			Consistency: viper.GetFloat64("weights.consistency"),
		},
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
