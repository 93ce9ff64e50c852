// Package account contains the handlers of the account use cases.
package account

import (
	"bytes"
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/specification"
	"github.com/google/uuid"
)

const (
	entityAccount = "Account"
	entityActor   = "Actor"
)

func findAccount(ctx context.Context, repo repository.AccountRepository, id uuid.UUID) (*account.Account, error) {
	acc, err := repo.Get(ctx, specification.AccountByID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewEntityNotFound(entityAccount, id)
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// findAccountPair loads the source and destination of a transfer in ascending
// public id order, so concurrent transfers over the same two accounts take their
// row locks in the same order. A missing source is reported before a missing
// destination.
func findAccountPair(
	ctx context.Context,
	repo repository.AccountRepository,
	fromID, toID uuid.UUID,
) (from, to *account.Account, err error) {
	ids := [2]uuid.UUID{fromID, toID}
	order := [2]int{0, 1}
	if bytes.Compare(toID[:], fromID[:]) < 0 {
		order = [2]int{1, 0}
	}

	var (
		loaded [2]*account.Account
		errs   [2]error
	)
	for _, i := range order {
		acc, err := findAccount(ctx, repo, ids[i])
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, nil, err
		}
		loaded[i], errs[i] = acc, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return loaded[0], loaded[1], nil
}

func findActor(ctx context.Context, repo repository.ActorRepository, id uuid.UUID) (actor.Actor, error) {
	a, err := repo.Get(ctx, specification.ActorByID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewEntityNotFound(entityActor, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
