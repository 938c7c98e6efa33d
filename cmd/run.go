package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/app"
	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
)

// deps are the runtime dependencies shared by every command.
type deps struct {
	cfg       config.Config
	tiers     *difficulty.Set
	generator problemgen.Generator
	logger    *log.Logger
	closer    io.Closer
}

func (d *deps) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// buildDeps resolves configuration, loads tiers and wires the generator.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	tiers, err := cfg.Tiers()
	if err != nil {
		return nil, fmt.Errorf("load tiers: %w", err)
	}
	if !tiers.Has(cfg.Difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q: choose one of %v", cfg.Difficulty, tiers.Names())
	}

	d := &deps{cfg: cfg, tiers: tiers}

	if cfg.LogFile != "" {
		logger := log.New(io.Discard, "", log.LstdFlags)
		f, err := tea.LogToFileWith(cfg.LogFile, "mathquiz", logger)
		if err != nil {
			return nil, err
		}
		d.logger = logger
		d.closer = f
	}

	source := problemgen.NewArithmeticSource(nil)
	if cfg.Seed != 0 {
		source = problemgen.NewSeededSource(cfg.Seed)
	}
	genCfg := problemgen.DefaultConfig()
	genCfg.Logger = d.logger
	d.generator = problemgen.New(source, genCfg)

	return d, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, skipHome bool) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Generator: d.generator,
		Tiers:     d.tiers,
		Tier:      d.cfg.Difficulty,
		Total:     d.cfg.Questions,
		SkipHome:  skipHome,
		Logger:    d.logger,
	})
}
