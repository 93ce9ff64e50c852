// Package repository defines the persistence contracts consumed by the ledger use cases.
package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/specification"
)

var (
	// ErrNoSpecification is returned by Get when called without any specification.
	ErrNoSpecification = errors.New("at least one specification is required")
	// ErrMultipleResults is returned by Get when more than one entity matches.
	ErrMultipleResults = errors.New("more than one entity matched")
	// ErrReadOnly is returned when staging a change outside of a transaction.
	ErrReadOnly = errors.New("repository is read-only outside of a transaction")
)

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// Get returns the single account matching every specification.
	// It returns domain.ErrNotFound when nothing matches and ErrMultipleResults
	// when the specifications are not selective enough.
	Get(ctx context.Context, specs ...specification.Specification[*account.Account]) (*account.Account, error)

	// Create stages a new account. It is written when the unit of work saves its changes.
	Create(ctx context.Context, a *account.Account) error
}

// ActorRepository defines the interface for actor data access operations.
// Actors are read-only for the ledger; Create exists for seeding.
type ActorRepository interface {
	Get(ctx context.Context, specs ...specification.Specification[actor.Actor]) (actor.Actor, error)
	Create(ctx context.Context, a actor.Actor) error
}
