package account

import (
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/shopspring/decimal"
)

// AmountDto is an amount as sent by clients. Value accepts JSON numbers and strings.
type AmountDto struct {
	Value    *decimal.Decimal `json:"value" validate:"required"`
	Currency string           `json:"currency" validate:"required,len=3,alpha"`
}

// ToAmount converts the DTO to a domain amount, rejecting unsupported currencies.
func (d AmountDto) ToAmount() (money.Amount, error) {
	code, err := currency.Parse(d.Currency)
	if err != nil {
		return money.Amount{}, err
	}
	return money.New(*d.Value, code), nil
}

// CreateAccountRequest represents the request body for creating a new account.
type CreateAccountRequest struct {
	OwnerID  string `json:"owner_id" validate:"required,uuid"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
}

// DepositRequest represents the request body for depositing funds into an account.
type DepositRequest struct {
	Amount AmountDto `json:"amount"`
}

// TransferRequest represents the request body for transferring funds between accounts.
type TransferRequest struct {
	ToAccountID string    `json:"to_account_id" validate:"required,uuid"`
	Amount      AmountDto `json:"amount"`
}
