// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds every setting the game reads at startup.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"     envDefault:"warn"`
	WordsFile string `env:"WORDS_FILE"`
	WordsDB   string `env:"WORDS_DB"`
	Daily     bool   `env:"HANGMAN_DAILY" envDefault:"false"`
	DailySalt string `env:"DAILY_SALT"    envDefault:"local_dev_salt"`
	NoColor   string `env:"NO_COLOR"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ColorDisabled reports whether NO_COLOR is set; any non-empty value counts.
func (c Config) ColorDisabled() bool { return c.NoColor != "" }

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
