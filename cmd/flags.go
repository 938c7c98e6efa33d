package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/config"
)

// addConfigFlags registers the flags that override MATHQUIZ_* variables.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("difficulty", "", "Starting level (overrides MATHQUIZ_DIFFICULTY)")
	f.Int("questions", 0, "Questions per round (overrides MATHQUIZ_QUESTIONS)")
	f.String("tiers", "", "YAML file with custom levels (overrides MATHQUIZ_TIERS_FILE)")
	f.String("log", "", "Append session events to this file (overrides MATHQUIZ_LOG_FILE)")
	f.Uint64("seed", 0, "Seed for reproducible questions (overrides MATHQUIZ_SEED)")
}

// resolveConfig loads the environment and applies any flags the user set.
// Flags win over environment variables, which win over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("difficulty") {
		cfg.Difficulty, _ = f.GetString("difficulty")
	}
	if f.Changed("questions") {
		cfg.Questions, _ = f.GetInt("questions")
		if cfg.Questions <= 0 {
			return config.Config{}, fmt.Errorf("--questions must be > 0, got %d", cfg.Questions)
		}
	}
	if f.Changed("tiers") {
		cfg.TiersFile, _ = f.GetString("tiers")
	}
	if f.Changed("log") {
		cfg.LogFile, _ = f.GetString("log")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	return cfg, nil
}
