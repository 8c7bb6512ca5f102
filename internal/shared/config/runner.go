package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RunnerConfig contains all configuration for the mrrun command.
type RunnerConfig struct {
	Workers    int           `mapstructure:"workers"`
	Partitions int           `mapstructure:"partitions"`
	Output     string        `mapstructure:"output"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadRunner loads the runner configuration from the given path.
// If configPath is empty, it looks for runner.yaml in the config/ directory.
// Environment variables with MAPREDUCE_ prefix override config file values.
func LoadRunner(configPath string) (*RunnerConfig, error) {
	v := viper.New()

	v.SetDefault("workers", 5)
	v.SetDefault("partitions", 10)
	v.SetDefault("output", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("runner")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("MAPREDUCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg RunnerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
