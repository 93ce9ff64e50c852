// Package currency defines the closed set of currencies the ledger accepts.
//
// Currencies are not registered at runtime: adding one means adding a constant
// and an entry to the supported table below.
package currency

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedCurrency is returned when a currency code is not part of the supported set.
var ErrUnsupportedCurrency = errors.New("currency not supported")

// Code is a currency tag carried by every monetary amount and account.
type Code string

const (
	// Undefined is the zero value. It is never supported and only models invalid input.
	Undefined Code = ""
	// DKK represents Danish Krone.
	DKK Code = "DKK"
)

// DefaultCode is used when a caller does not name a currency.
const DefaultCode = DKK

// Meta holds currency-specific metadata
type Meta struct {
	Decimals int
	Symbol   string
	Name     string
}

var supported = map[Code]Meta{
	DKK: {Decimals: 2, Symbol: "kr.", Name: "Danish Krone"},
}

// Parse converts user input into a supported Code.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsSupported() {
		return Undefined, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// IsSupported reports whether c is a member of the supported set.
func (c Code) IsSupported() bool {
	_, ok := supported[c]
	return ok
}

// Meta returns the metadata for c. Unsupported codes get two decimals and the code as symbol.
func (c Code) Meta() Meta {
	if m, ok := supported[c]; ok {
		return m
	}
	return Meta{Decimals: 2, Symbol: c.String(), Name: c.String()}
}

func (c Code) String() string {
	if c == Undefined {
		return "UNDEFINED"
	}
	return string(c)
}

// Value implements driver.Valuer.
func (c Code) Value() (driver.Value, error) {
	return string(c), nil
}

// Scan implements sql.Scanner.
func (c *Code) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = Undefined
	case string:
		*c = Code(v)
	case []byte:
		*c = Code(v)
	default:
		return fmt.Errorf("currency: cannot scan %T", src)
	}
	return nil
}

// ListSupported returns all supported codes in lexical order.
func ListSupported() []Code {
	codes := make([]Code, 0, len(supported))
	for c := range supported {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
