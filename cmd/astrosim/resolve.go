package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/san-kum/astrosim/internal/config"
	"github.com/san-kum/astrosim/internal/storage"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, preset, config file, environment and the
// flags the user actually set, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if !config.ApplyPreset(cfg, preset) {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.Merge(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("body") {
		cfg.Body = body
	}
	if flags.Changed("a") {
		cfg.A = semiA
	}
	if flags.Changed("e") {
		cfg.E = ecc
	}
	if flags.Changed("period") {
		cfg.Period = period
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("timing") {
		cfg.Timing = timing
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDataDir applies the environment and --data to the default data
// directory for commands that only read runs.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(cfg); err != nil {
		return "", err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	return cfg.DataDir, nil
}

// openStore opens the run store under dir with its catalog attached. A
// catalog that cannot be opened is logged and returned as nil; runs are
// still readable from their directories.
func openStore(ctx context.Context, dir string) (*storage.Store, *storage.Catalog, error) {
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return nil, nil, err
	}

	cat, err := storage.OpenCatalog(filepath.Join(dir, storage.CatalogFile))
	if err != nil {
		log.Printf("catalog unavailable: %v", err)
		return st, nil, nil
	}
	if err := storage.Sync(ctx, st, cat); err != nil {
		log.Printf("catalog sync failed: %v", err)
	}
	return st.WithCatalog(cat), cat, nil
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, *storage.Store, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, nil, err
	}
	st := storage.New(dir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, st, nil
}
