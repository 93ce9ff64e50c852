package config

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	UowFactory repository.UnitOfWorkFactory
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Config     *App
}
