// Package config reads the command configuration: environment defaults first,
// then flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds command configuration.
type Config struct {
	Preset       string        `env:"DRAUGHTS_PRESET" envDefault:"classic"`
	VariantFile  string        `env:"DRAUGHTS_VARIANT_FILE"`
	Games        int           `env:"DRAUGHTS_GAMES" envDefault:"30"`
	Seed         uint64        `env:"DRAUGHTS_SEED" envDefault:"1"`
	MaxTurns     int           `env:"DRAUGHTS_MAX_TURNS" envDefault:"300"`
	Workers      int           `env:"DRAUGHTS_WORKERS" envDefault:"4"`
	Output       string        `env:"DRAUGHTS_OUTPUT" envDefault:"experiments/results"`
	Watch        bool          `env:"DRAUGHTS_WATCH"`
	Delay        time.Duration `env:"DRAUGHTS_DELAY" envDefault:"800ms"`
	LogLevel     string        `env:"DRAUGHTS_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string        `env:"DRAUGHTS_OTEL_ENDPOINT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "Built-in variant to play")
	fs.StringVar(&cfg.VariantFile, "variant", cfg.VariantFile, "YAML variant file, overrides -preset")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "Number of games in the series")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the first game")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Turns before the side to move forfeits")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Games played concurrently")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Directory for CSV records, empty to skip")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "Play a single paced game and log every update")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause between moves when watching")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP endpoint, empty disables tracing")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if c.MaxTurns <= 0 {
		return errors.New("max turns must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
