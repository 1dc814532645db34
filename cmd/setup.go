package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kasuboski/nyaaz/config"
	"github.com/kasuboski/nyaaz/pkg/action"
	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/manager"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite"
	"github.com/spf13/viper"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, fmt.Errorf("failed to read configurations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func openStore(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newShowManager wires a manager from configuration. store may be nil for commands that only search.
func newShowManager(ctx context.Context, cfg config.Config, store storage.Storage) (manager.ShowManager, error) {
	searcher, err := indexer.NewSearcherFactory().NewSearcher(cfg.Site)
	if err != nil {
		return manager.ShowManager{}, err
	}

	if cfg.Manager.LockFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Manager.LockFile), 0o755); err != nil {
			return manager.ShowManager{}, fmt.Errorf("failed to create lock directory: %w", err)
		}
	}

	logger.FromCtx(ctx).Debugw("configured",
		"site", cfg.Site.URI,
		"database", cfg.Storage.FilePath,
		"actions", len(cfg.OnNewEpisode),
	)

	return manager.New(searcher, store, action.NewExecutor(cfg.OnNewEpisode), cfg.Manager), nil
}

// setup loads configuration, opens the store and builds the manager
func setup(ctx context.Context) (config.Config, manager.ShowManager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, manager.ShowManager{}, err
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return cfg, manager.ShowManager{}, err
	}

	m, err := newShowManager(ctx, cfg, store)
	return cfg, m, err
}
