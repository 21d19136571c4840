// Package config loads the simulator configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full simulator configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Web        WebConfig        `mapstructure:"web"`
}

// SimulationConfig controls the batch runner.
type SimulationConfig struct {
	// Games is the number of games to simulate.
	Games int `mapstructure:"games"`
	// Workers caps concurrent games. Zero means one per CPU.
	Workers int `mapstructure:"workers"`
	// Strategy is the registered pilot key.
	Strategy string `mapstructure:"strategy"`
	// Decklist is an optional path to a custom decklist file. Empty
	// uses the pilot's stock list.
	Decklist string `mapstructure:"decklist"`
	// Seed fixes the batch seed for reproducible runs. Zero seeds from
	// the wall clock.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WebConfig controls the websocket front end.
type WebConfig struct {
	Address string `mapstructure:"address"`
}

// Load reads the configuration file at path. An empty path loads pure
// defaults. Any value can be overridden with a GOLDFISHER_ prefixed
// environment variable, for example GOLDFISHER_SIMULATION_GAMES.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("simulation.games", 100)
	v.SetDefault("simulation.workers", runtime.NumCPU())
	v.SetDefault("simulation.strategy", "aluren")
	v.SetDefault("simulation.decklist", "")
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("web.address", ":8080")

	v.SetEnvPrefix("GOLDFISHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
