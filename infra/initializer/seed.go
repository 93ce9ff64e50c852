package initializer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/decorator"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/specification"
	"github.com/google/uuid"
)

// SeedPerson is a demo person inserted on first start.
type SeedPerson struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// SeedPersons are the demo persons, with fixed ids so they can be used from the CLI
// and HTTP examples.
var SeedPersons = []SeedPerson{
	{uuid.MustParse("11111111-1111-1111-1111-111111111111"), "John", "Smith"},
	{uuid.MustParse("22222222-2222-2222-2222-222222222222"), "Emma", "Johnson"},
	{uuid.MustParse("33333333-3333-3333-3333-333333333333"), "Michael", "Williams"},
}

// Seed inserts every seed person that is not stored yet, in one transaction.
// It returns the number of persons inserted.
func Seed(ctx context.Context, uowFactory repository.UnitOfWorkFactory, logger *slog.Logger) (int, error) {
	uow, err := uowFactory()
	if err != nil {
		return 0, err
	}

	inserted := 0
	err = decorator.NewUnitOfWorkTransactionDecorator(logger).Execute(ctx, uow, func() error {
		repo, err := uow.ActorRepository()
		if err != nil {
			return err
		}
		for _, sp := range SeedPersons {
			_, err := repo.Get(ctx, specification.ActorByID(sp.ID))
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			p := actor.NewPersonFromData(0, sp.ID, sp.FirstName, sp.LastName)
			if err := repo.Create(ctx, p); err != nil {
				return err
			}
			logger.Debug("Seeding person", "actor_id", sp.ID, "name", sp.FirstName+" "+sp.LastName)
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
