package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/specification"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	uow *UoW
}

// Get implements repository.AccountRepository.
//
// Accounts staged with Create are matched in memory. Stored accounts are matched
// in SQL and, inside a transaction, locked FOR UPDATE until commit or rollback.
func (r *accountRepository) Get(
	ctx context.Context,
	specs ...specification.Specification[*account.Account],
) (*account.Account, error) {
	if len(specs) == 0 {
		return nil, repository.ErrNoSpecification
	}
	u := r.uow

	var matches []*account.Account
	for _, a := range u.newAccounts {
		if specification.All(a, specs...) {
			matches = append(matches, a)
		}
	}

	q := u.session(ctx).Model(&Account{})
	for _, s := range specs {
		query, args := s.Where()
		q = q.Where(query, args...)
	}
	if u.InTransaction() {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var rows []Account
	if err := WrapError(func() error { return q.Limit(2).Find(&rows).Error }); err != nil {
		return nil, fmt.Errorf("get account %v: %w", specification.Names(specs...), err)
	}

	for i := range rows {
		acc, err := r.load(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		matches = append(matches, acc)
	}

	switch len(matches) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, repository.ErrMultipleResults
	}
}

// Create implements repository.AccountRepository. The account is inserted by SaveChanges.
func (r *accountRepository) Create(_ context.Context, a *account.Account) error {
	if !r.uow.InTransaction() {
		return repository.ErrReadOnly
	}
	r.uow.newAccounts = append(r.uow.newAccounts, a)
	return nil
}

// load returns the tracked instance for row, or hydrates and tracks a new one.
func (r *accountRepository) load(ctx context.Context, row *Account) (*account.Account, error) {
	u := r.uow
	if t, ok := u.accounts[row.InternalKey]; ok {
		return t.account, nil
	}

	owner, err := getActor(u.session(ctx), "actors.internal_key = ?", row.OwnerKey)
	if err != nil {
		return nil, fmt.Errorf("load owner of account %s: %w", row.PublicID, err)
	}
	acc, err := mapModelToAccount(row, owner)
	if err != nil {
		return nil, fmt.Errorf("hydrate account %s: %w", row.PublicID, err)
	}

	if u.InTransaction() {
		u.accounts[row.InternalKey] = &tracked{account: acc, loaded: acc.Balance().Value()}
	}
	return acc, nil
}
