package specification

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// AccountByID matches the account with the given public id.
func AccountByID(id uuid.UUID) Specification[*account.Account] {
	return New("account_by_id",
		func(a *account.Account) bool { return a.PublicID() == id },
		"accounts.public_id = ?", id,
	)
}

// AccountByNumber matches the account with the given account number.
func AccountByNumber(n account.Number) Specification[*account.Account] {
	return New("account_by_number",
		func(a *account.Account) bool { return a.Number() == n },
		"accounts.number = ?", string(n),
	)
}
