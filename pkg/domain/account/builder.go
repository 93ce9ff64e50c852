package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Builder provides a fluent API for constructing Account instances with every field
// set explicitly. It is used to hydrate accounts from a data store and for test setup;
// brand new accounts are created with New.
type Builder struct {
	internalKey uint
	publicID    uuid.UUID
	number      Number
	currency    currency.Code
	balance     decimal.Decimal
	owner       actor.Actor
	createdAt   time.Time
}

// NewBuilder creates a new Builder with a fresh id and number in the default currency.
func NewBuilder() *Builder {
	return &Builder{
		publicID:  uuid.New(),
		number:    NewNumber(),
		currency:  currency.DefaultCode,
		balance:   decimal.Zero,
		createdAt: time.Now().UTC(),
	}
}

// WithInternalKey sets the storage key.
func (b *Builder) WithInternalKey(key uint) *Builder {
	b.internalKey = key
	return b
}

// WithPublicID sets the public id.
func (b *Builder) WithPublicID(id uuid.UUID) *Builder {
	b.publicID = id
	return b
}

// WithNumber sets the account number.
func (b *Builder) WithNumber(n Number) *Builder {
	b.number = n
	return b
}

// WithCurrency sets the account currency.
func (b *Builder) WithCurrency(code currency.Code) *Builder {
	b.currency = code
	return b
}

// WithBalance sets the balance. Negative balances are rejected by Build.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithOwner sets the owning actor. This is a mandatory field.
func (b *Builder) WithOwner(owner actor.Actor) *Builder {
	b.owner = owner
	return b
}

// WithCreatedAt sets the creation timestamp. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build finalizes the construction of the Account, checking the owner and balance invariants.
func (b *Builder) Build() (*Account, error) {
	if b.owner == nil {
		return nil, ErrOwnerRequired
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Account{
		internalKey: b.internalKey,
		publicID:    b.publicID,
		number:      b.number,
		currency:    b.currency,
		balance:     b.balance,
		owner:       b.owner,
		createdAt:   b.createdAt,
	}, nil
}
