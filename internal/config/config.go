// Package config loads engine options from an optional YAML file and
// RANGEMAPPER_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/catalogmatch/rangemapper/internal/engine"
)

// Load reads engine options. Pass an empty path to rely on defaults and
// environment variables alone; a named config file that cannot be read is
// an error.
func Load(path string) (engine.Options, error) {
	opts := engine.DefaultOptions()

	v := viper.New()
	v.SetEnvPrefix("RANGEMAPPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, opts)

	if path != "" {
		v.SetConfigFile(ExpandPath(path))
		if err := v.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(opts); err != nil {
		return opts, fmt.Errorf("invalid configuration: %w", err)
	}

	return opts, nil
}

func setDefaults(v *viper.Viper, opts engine.Options) {
	v.SetDefault("weights.range", opts.Weights.Range)
	v.SetDefault("weights.description", opts.Weights.Description)
	v.SetDefault("weights.identifier", opts.Weights.Identifier)
	v.SetDefault("weights.category", opts.Weights.Category)
	v.SetDefault("weights.sub_range", opts.Weights.SubRange)
	v.SetDefault("weights.semantic", opts.Weights.Semantic)
	v.SetDefault("weights.exact_range_bonus", opts.Weights.ExactRangeBonus)
	v.SetDefault("weights.exact_sub_range_bonus", opts.Weights.ExactSubRangeBonus)
	v.SetDefault("thresholds.exact", opts.Thresholds.Exact)
	v.SetDefault("thresholds.high", opts.Thresholds.High)
	v.SetDefault("thresholds.medium", opts.Thresholds.Medium)
	v.SetDefault("thresholds.low", opts.Thresholds.Low)
	v.SetDefault("sub_range_threshold", opts.SubRangeThreshold)
	v.SetDefault("query_timeout", opts.QueryTimeout)
	v.SetDefault("cancel_check_interval", opts.CancelCheckInterval)
	v.SetDefault("max_recommendations", opts.MaxRecommendations)
	v.SetDefault("workers", opts.Workers)
}

func validate(opts engine.Options) error {
	weights := []struct {
		name  string
		value float64
	}{
		{"range", opts.Weights.Range},
		{"description", opts.Weights.Description},
		{"identifier", opts.Weights.Identifier},
		{"category", opts.Weights.Category},
		{"sub_range", opts.Weights.SubRange},
		{"semantic", opts.Weights.Semantic},
		{"exact_range_bonus", opts.Weights.ExactRangeBonus},
		{"exact_sub_range_bonus", opts.Weights.ExactSubRangeBonus},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("weight %s must be in [0, 1], got %.2f", w.name, w.value)
		}
	}

	t := opts.Thresholds
	if !(t.Exact > t.High && t.High > t.Medium && t.Medium > t.Low && t.Low > 0) {
		return fmt.Errorf("thresholds must descend exact > high > medium > low > 0, got %.2f/%.2f/%.2f/%.2f",
			t.Exact, t.High, t.Medium, t.Low)
	}

	if opts.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be positive, got %s", opts.QueryTimeout)
	}

	return nil
}
