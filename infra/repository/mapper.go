package repository

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/actor"
)

func mapModelToAccount(row *Account, owner actor.Actor) (*account.Account, error) {
	return account.NewBuilder().
		WithInternalKey(row.InternalKey).
		WithPublicID(row.PublicID).
		WithNumber(account.Number(row.Number)).
		WithCurrency(row.Currency).
		WithBalance(row.Balance.Decimal).
		WithOwner(owner).
		WithCreatedAt(row.CreatedAt).
		Build()
}

func mapAccountToModel(a *account.Account, ownerKey uint) Account {
	return Account{
		PublicID:  a.PublicID(),
		Number:    a.Number().String(),
		Currency:  a.Currency(),
		Balance:   Numeric{a.Balance().Value()},
		OwnerKey:  ownerKey,
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.CreatedAt(),
	}
}

func mapRowToActor(row *actorRow) (actor.Actor, error) {
	switch actor.Kind(row.Kind) {
	case actor.KindPerson:
		return actor.NewPersonFromData(row.InternalKey, row.PublicID, row.FirstName, row.LastName), nil
	default:
		return nil, fmt.Errorf("actor %s has unsupported kind %q", row.PublicID, row.Kind)
	}
}
