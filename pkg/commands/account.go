// Package commands contains command DTOs for service and handler orchestration.
package commands

import (
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

// CreateAccount opens an empty account for an existing actor.
type CreateAccount struct {
	ActorID  uuid.UUID
	Currency currency.Code
}

// Deposit adds Amount to the account's balance.
type Deposit struct {
	AccountID uuid.UUID
	Amount    money.Amount
}

// Transfer moves Amount from one account to another.
type Transfer struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        money.Amount
}
