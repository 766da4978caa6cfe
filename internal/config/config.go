// Package config loads peertopo settings from defaults, an optional YAML file,
// PEERTOPO_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every validation problem reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to environment variable names, e.g. PEERTOPO_LOG_LEVEL.
const EnvPrefix = "PEERTOPO"

// Config holds all runtime settings.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AnalysisConfig struct {
	TopN      int  `mapstructure:"top_n"`
	Normalize bool `mapstructure:"normalize"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// MetricsConfig points at a node_exporter textfile; empty disables it.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// FlagKeys maps command-line flag names onto configuration keys.
var FlagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"top":         "analysis.top_n",
	"normalize":   "analysis.normalize",
	"format":      "output.format",
	"metrics-out": "metrics.textfile",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("analysis.top_n", 5)
	v.SetDefault("analysis.normalize", false)
	v.SetDefault("output.format", "text")
	v.SetDefault("metrics.textfile", "")
}

// Load resolves the configuration. path may be empty; flags may be nil.
// Only flags present in FlagKeys and defined on flags are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalidConfig, c.Log.Format))
	}
	if c.Log.Level == "" {
		errs = append(errs, fmt.Errorf("%w: log.level is empty", ErrInvalidConfig))
	}
	if c.Analysis.TopN < 1 {
		errs = append(errs, fmt.Errorf("%w: analysis.top_n %d < 1", ErrInvalidConfig, c.Analysis.TopN))
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: output.format %q (want text or json)", ErrInvalidConfig, c.Output.Format))
	}
	return errors.Join(errs...)
}
