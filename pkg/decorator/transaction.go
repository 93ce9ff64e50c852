// Package decorator provides decorator patterns for cross-cutting concerns in the application.
// It includes the transaction decorator that wraps every mutating use case in a unit of work.
package decorator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/repository"
)

// TransactionDecorator runs an operation inside the transactional scope of a unit of work.
type TransactionDecorator interface {
	Execute(ctx context.Context, uow repository.UnitOfWork, operation func() error) error
}

// UnitOfWorkTransactionDecorator implements TransactionDecorator.
//
// Transaction lifecycle:
//  1. Begins a transaction unless the unit of work already has one open.
//  2. Executes the operation.
//  3. On success saves staged changes and commits, but only if step 1 began the
//     transaction. A nested call leaves both to the outer scope.
//  4. On failure or panic rolls back the transaction it began and returns the
//     original error unchanged (panics are re-raised after rollback).
//  5. Always closes the transaction it began.
type UnitOfWorkTransactionDecorator struct {
	logger *slog.Logger
}

// NewUnitOfWorkTransactionDecorator creates a new UnitOfWorkTransactionDecorator instance.
func NewUnitOfWorkTransactionDecorator(logger *slog.Logger) *UnitOfWorkTransactionDecorator {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWorkTransactionDecorator{logger: logger}
}

// Execute runs the operation within the unit of work's transaction.
func (d *UnitOfWorkTransactionDecorator) Execute(
	ctx context.Context,
	uow repository.UnitOfWork,
	operation func() error,
) (err error) {
	began := false
	if !uow.InTransaction() {
		if err = uow.Begin(ctx); err != nil {
			d.logger.Error("Failed to begin transaction", "error", err)
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		began = true
		d.logger.Debug("Transaction started")
	}

	defer func() {
		if !began {
			return
		}
		if cerr := uow.Close(); cerr != nil {
			d.logger.Error("Failed to release transaction", "error", cerr)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Transaction panic recovered", "panic", r)
			if began {
				d.rollback(ctx, uow)
			}
			panic(r)
		}
	}()

	if err = operation(); err != nil {
		if began {
			d.logger.Debug("Rolling back transaction due to error", "error", err)
			d.rollback(ctx, uow)
		}
		return err
	}

	if !began {
		return nil
	}

	// A cancellation observed before commit must not leave partial writes behind.
	if err = ctx.Err(); err != nil {
		d.logger.Debug("Rolling back transaction due to cancellation", "error", err)
		d.rollback(ctx, uow)
		return err
	}

	if err = uow.SaveChanges(ctx); err != nil {
		d.logger.Error("Failed to save changes", "error", err)
		d.rollback(ctx, uow)
		return fmt.Errorf("failed to save changes: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		d.logger.Error("Failed to commit transaction", "error", err)
		d.rollback(ctx, uow)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	d.logger.Debug("Transaction committed")
	return nil
}

func (d *UnitOfWorkTransactionDecorator) rollback(ctx context.Context, uow repository.UnitOfWork) {
	// Rollback has to run even when ctx is already cancelled.
	if rbErr := uow.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
		d.logger.Error("Failed to rollback transaction", "error", rbErr)
	}
}
