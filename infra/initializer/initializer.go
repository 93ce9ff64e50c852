package initializer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/amirasaad/ledger/infra"
	infra_repository "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/metrics"
	"gorm.io/gorm"
)

// InitializeDependencies opens the database, migrates the schema, seeds the demo
// persons when enabled and wires the unit of work factory.
// The returned function closes the database connection.
func InitializeDependencies(cfg *config.App, logOutput io.Writer) (
	deps *config.Deps,
	closeFn func() error,
	err error,
) {
	logger := SetupLogger(cfg.Log, logOutput)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	closeFn = sqlDB.Close

	if err = Migrate(db); err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	txOptions, err := infra.TxOptions(cfg.DB)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	deps = &config.Deps{
		UowFactory: infra_repository.NewUoWFactory(db,
			infra_repository.WithTxOptions(txOptions),
			infra_repository.WithLogger(logger),
		),
		Metrics: metrics.New(),
		Logger:  logger,
		Config:  cfg,
	}

	if cfg.Seed != nil && cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		inserted, err := Seed(ctx, deps.UowFactory, logger)
		if err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("failed to seed actors: %w", err)
		}
		logger.Info("Seed completed", "inserted", inserted)
	}

	return deps, closeFn, nil
}

// Migrate creates or updates the ledger tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(infra_repository.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
