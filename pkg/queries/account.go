// Package queries contains query DTOs and their read models.
package queries

import (
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

// GetBalance asks for the current balance of an account.
type GetBalance struct {
	AccountID uuid.UUID
}

// Balance is the read model returned by GetBalance.
type Balance struct {
	AccountID     uuid.UUID     `json:"account_id"`
	AccountNumber string        `json:"account_number"`
	Currency      currency.Code `json:"currency"`
	Balance       money.Amount  `json:"balance"`
}

// AccountCreated describes an account right after creation.
type AccountCreated struct {
	ID            uuid.UUID     `json:"id"`
	AccountNumber string        `json:"account_number"`
	Currency      currency.Code `json:"currency"`
	Balance       money.Amount  `json:"balance"`
	OwnerID       uuid.UUID     `json:"owner_id"`
}
