package cmd

import (
	"context"
	"fmt"

	"drinks-api/core/config"
	"drinks-api/core/database"
	"drinks-api/core/ingest"
	"drinks-api/core/logger"
	"drinks-api/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger every command starts with.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

func connect(cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database, logg)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// openStorage returns a nil client when no endpoint is configured.
func openStorage(ctx context.Context, cfg *config.Config, ensureBucket bool) (storage.Client, error) {
	if !cfg.Storage.Enabled() {
		return nil, nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if ensureBucket {
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
	}
	return client, nil
}

func newArchiver(client storage.Client, cfg *config.Config) *ingest.Archiver {
	if client == nil {
		return nil
	}
	return ingest.NewArchiver(client, cfg.Storage.Bucket, cfg.Import.ArchivePrefix)
}
