// Package handler defines the shapes of the use case handlers.
//
// Handlers receive the unit of work of the current request and resolve their
// repositories from it. They never begin, commit or roll back; the transaction
// decorator owns that.
package handler

import (
	"context"

	"github.com/amirasaad/ledger/pkg/repository"
)

// CommandHandler handles a command that returns no data.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, uow repository.UnitOfWork, cmd C) error
}

// CommandHandlerWithResult handles a command that returns data.
type CommandHandlerWithResult[C, R any] interface {
	Handle(ctx context.Context, uow repository.UnitOfWork, cmd C) (R, error)
}

// QueryHandler handles a read-only query.
type QueryHandler[Q, R any] interface {
	HandleQuery(ctx context.Context, uow repository.UnitOfWork, q Q) (R, error)
}
