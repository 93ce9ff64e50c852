// Package money provides the Amount value object.
//
// An Amount is a decimal value tagged with a currency. It carries no validation of
// its own: negative and zero values are legal and it is up to the consumer (the
// account aggregate) to decide what it accepts.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in a specific currency.
// Amounts are immutable and compared by value.
type Amount struct {
	value    decimal.Decimal
	currency currency.Code
}

// New creates an Amount.
func New(value decimal.Decimal, code currency.Code) Amount {
	return Amount{value: value, currency: code}
}

// NewFromString parses value as a decimal and tags it with code.
func NewFromString(value string, code currency.Code) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return New(d, code), nil
}

// NewFromInt is a convenience for whole amounts.
func NewFromInt(value int64, code currency.Code) Amount {
	return New(decimal.NewFromInt(value), code)
}

// Zero returns a zero amount in the given currency.
func Zero(code currency.Code) Amount {
	return New(decimal.Zero, code)
}

// Value returns the decimal value.
func (a Amount) Value() decimal.Decimal {
	return a.value
}

// Currency returns the currency tag.
func (a Amount) Currency() currency.Code {
	return a.currency
}

// Equal reports whether both value and currency match. 100 and 100.00 are equal.
func (a Amount) Equal(other Amount) bool {
	return a.currency == other.currency && a.value.Equal(other.value)
}

// IsSameCurrency reports whether both amounts carry the same currency.
func (a Amount) IsSameCurrency(other Amount) bool {
	return a.currency == other.currency
}

// IsZero reports whether the value is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative reports whether the value is below zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// IsPositive reports whether the value is above zero.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// String formats the amount with the currency's decimals, e.g. "100.00 DKK".
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.value.StringFixed(int32(a.currency.Meta().Decimals)), a.currency)
}

// MarshalJSON implements json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"value":    a.value,
		"currency": a.currency.String(),
	})
}
