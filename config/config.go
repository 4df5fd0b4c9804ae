// Package config loads gridmeta tool configuration via Viper, merging
// defaults, an optional gridmeta.toml, and GRIDMETA_* environment
// variables.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/gridmeta/gridmeta/errors"
)

// Config is the gridmeta tool configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	// JSON switches the logger to machine-readable JSON output.
	JSON bool `mapstructure:"json"`

	// Level is the minimum level emitted: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the configuration, caching it for subsequent calls.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// LoadWithViper loads configuration from a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("GRIDMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// An on-disk config is optional; defaults plus environment are a
	// complete configuration.
	v.SetConfigName("gridmeta")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gridmeta")
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}
