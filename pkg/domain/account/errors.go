package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

var (
	// ErrInsufficientFunds is returned when a withdrawal would drive the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCurrencyMismatch is matched by every InvalidCurrencyError.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidAmount is matched by InvalidDepositAmountError and InvalidWithdrawAmountError.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeBalance is returned by the Builder when asked to hydrate a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrOwnerRequired is returned by the Builder when no owner was supplied.
	ErrOwnerRequired = errors.New("owner is required")
)

// InvalidCurrencyError reports a currency that does not match the one expected,
// either an amount against an account or one account against another.
type InvalidCurrencyError struct {
	Actual   currency.Code
	Expected currency.Code
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency: %s and %s do not match", e.Expected, e.Actual)
}

func (e *InvalidCurrencyError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// InvalidDepositAmountError is returned for negative deposits.
type InvalidDepositAmountError struct {
	Amount money.Amount
}

func (e *InvalidDepositAmountError) Error() string {
	return fmt.Sprintf("invalid deposit amount: %s, deposit amount must be greater than zero", e.Amount)
}

func (e *InvalidDepositAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// InvalidWithdrawAmountError is returned for negative withdrawals.
type InvalidWithdrawAmountError struct {
	Amount money.Amount
}

func (e *InvalidWithdrawAmountError) Error() string {
	return fmt.Sprintf("invalid withdraw amount: %s, withdraw amount must be greater than zero", e.Amount)
}

func (e *InvalidWithdrawAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}
