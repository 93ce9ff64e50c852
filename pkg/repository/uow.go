package repository

import "context"

// UnitOfWork owns one transactional scope and hands out repositories bound to it.
//
// A unit of work is created per command. Repositories obtained before Begin read
// straight from storage and refuse writes; repositories obtained after Begin share the
// transaction, track the aggregates they load and stage the ones they create.
// SaveChanges writes every staged and tracked aggregate inside the transaction.
type UnitOfWork interface {
	// InTransaction reports whether a transaction is currently open.
	InTransaction() bool
	// Begin opens a transaction.
	Begin(ctx context.Context) error
	// SaveChanges persists staged and tracked aggregates within the open transaction.
	SaveChanges(ctx context.Context) error
	// Commit commits the open transaction.
	Commit(ctx context.Context) error
	// Rollback aborts the open transaction and discards staged changes.
	Rollback(ctx context.Context) error
	// Close releases the transaction resource. It is safe to call more than once.
	Close() error

	AccountRepository() (AccountRepository, error)
	ActorRepository() (ActorRepository, error)
}

// UnitOfWorkFactory creates a fresh unit of work for one command or query.
type UnitOfWorkFactory func() (UnitOfWork, error)
