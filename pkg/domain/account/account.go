// Package account contains the Account aggregate and its invariants.
package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Number is the externally quoted account number. It is generated once and never changes.
type Number string

// NewNumber generates a fresh, globally unique account number.
func NewNumber() Number {
	return Number(uuid.NewString())
}

func (n Number) String() string { return string(n) }

// Account represents an actor's monetary account.
// It acts as an aggregate root: the balance only changes through Deposit and Withdraw.
//
// Invariants:
// - The currency is fixed at construction.
// - The balance can never be negative.
// - Every amount applied to the balance carries the account's currency.
// - The owner is set at construction and never reassigned.
type Account struct {
	internalKey uint
	publicID    uuid.UUID
	number      Number
	currency    currency.Code
	balance     decimal.Decimal
	owner       actor.Actor
	createdAt   time.Time
}

// New creates an empty account in the given currency, owned by owner.
// The owner is assumed to have been looked up and validated by the caller.
func New(code currency.Code, owner actor.Actor) *Account {
	return &Account{
		publicID:  uuid.New(),
		number:    NewNumber(),
		currency:  code,
		balance:   decimal.Zero,
		owner:     owner,
		createdAt: time.Now().UTC(),
	}
}

func (a *Account) InternalKey() uint       { return a.internalKey }
func (a *Account) PublicID() uuid.UUID     { return a.publicID }
func (a *Account) Number() Number          { return a.number }
func (a *Account) Currency() currency.Code { return a.currency }
func (a *Account) Owner() actor.Actor      { return a.owner }
func (a *Account) CreatedAt() time.Time    { return a.createdAt }

// AssignInternalKey records the storage key once the account has been inserted.
func (a *Account) AssignInternalKey(key uint) {
	a.internalKey = key
}

// Balance returns the current balance as an Amount in the account currency.
func (a *Account) Balance() money.Amount {
	return money.New(a.balance, a.currency)
}

// Deposit adds amount to the balance.
//
// The currency is checked before anything else, so a zero amount in the wrong
// currency is still rejected. A zero amount in the right currency is a no-op.
func (a *Account) Deposit(amount money.Amount) error {
	if err := a.validateCurrency(amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	if amount.IsNegative() {
		return &InvalidDepositAmountError{Amount: amount}
	}
	a.balance = a.balance.Add(amount.Value())
	return nil
}

// Withdraw removes amount from the balance.
// Checks run in the same order as Deposit: currency, zero, sign, then funds.
func (a *Account) Withdraw(amount money.Amount) error {
	if err := a.validateCurrency(amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	if amount.IsNegative() {
		return &InvalidWithdrawAmountError{Amount: amount}
	}
	remaining := a.balance.Sub(amount.Value())
	if remaining.IsNegative() {
		return ErrInsufficientFunds
	}
	a.balance = remaining
	return nil
}

func (a *Account) validateCurrency(amount money.Amount) error {
	if amount.Currency() != a.currency {
		return &InvalidCurrencyError{Actual: amount.Currency(), Expected: a.currency}
	}
	return nil
}
