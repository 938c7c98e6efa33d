package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/session"
)

// Config holds runtime settings resolved from the environment.
type Config struct {
	Difficulty string `env:"MATHQUIZ_DIFFICULTY" envDefault:"easy"`
	Questions  int    `env:"MATHQUIZ_QUESTIONS"  envDefault:"10"`
	TiersFile  string `env:"MATHQUIZ_TIERS_FILE"`
	LogFile    string `env:"MATHQUIZ_LOG_FILE"`
	Seed       uint64 `env:"MATHQUIZ_SEED"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Questions <= 0 {
		return Config{}, fmt.Errorf("MATHQUIZ_QUESTIONS must be > 0, got %d", cfg.Questions)
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Difficulty: difficulty.DefaultTier,
		Questions:  session.DefaultTotal,
	}
}

// Tiers returns the tier set from TiersFile, or the built-in tiers when
// no file is configured.
func (c Config) Tiers() (*difficulty.Set, error) {
	if c.TiersFile == "" {
		return difficulty.Defaults(), nil
	}
	return LoadTiers(c.TiersFile)
}
