package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNoTransaction is returned by transactional operations when Begin was not called.
	ErrNoTransaction = errors.New("no transaction in progress")
	// ErrTransactionInProgress is returned by Begin when a transaction is already open.
	ErrTransactionInProgress = errors.New("transaction already in progress")
)

// tracked is an account loaded inside the transaction, with the balance it was loaded with.
type tracked struct {
	account *account.Account
	loaded  decimal.Decimal
}

// UoW is the GORM unit of work. It owns at most one transaction at a time and
// hands out repositories bound to it.
//
// Inside a transaction, accounts are read with row locks and kept in an identity
// map, so every repository of the same unit of work returns the same instance for
// the same row. SaveChanges inserts staged aggregates and writes back the balance of
// every loaded account that changed.
type UoW struct {
	db        *gorm.DB
	tx        *gorm.DB
	txOptions *sql.TxOptions
	logger    *slog.Logger

	accounts    map[uint]*tracked
	newAccounts []*account.Account
	newActors   []actor.Actor
}

// Option configures a UoW.
type Option func(*UoW)

// WithTxOptions sets the options used when beginning transactions, such as the isolation level.
func WithTxOptions(opts *sql.TxOptions) Option {
	return func(u *UoW) { u.txOptions = opts }
}

// WithLogger sets the logger of the unit of work.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UoW) { u.logger = logger }
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{
		db:       db,
		logger:   slog.Default(),
		accounts: make(map[uint]*tracked),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// NewUoWFactory returns a factory creating one UoW per call, all sharing db.
func NewUoWFactory(db *gorm.DB, opts ...Option) repository.UnitOfWorkFactory {
	return func() (repository.UnitOfWork, error) {
		return NewUoW(db, opts...), nil
	}
}

// InTransaction reports whether a transaction is open.
func (u *UoW) InTransaction() bool {
	return u.tx != nil
}

// Begin starts a new transaction.
func (u *UoW) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionInProgress
	}
	tx := u.db.WithContext(ctx).Begin(u.txOptions)
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	u.tx = tx
	return nil
}

// SaveChanges writes staged actors and accounts, then the balances of loaded
// accounts that changed since they were read.
func (u *UoW) SaveChanges(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx.WithContext(ctx)

	for _, a := range u.newActors {
		if err := insertActor(tx, a); err != nil {
			return err
		}
	}
	u.newActors = nil

	for _, key := range slices.Sorted(maps.Keys(u.accounts)) {
		t := u.accounts[key]
		balance := t.account.Balance().Value()
		if balance.Equal(t.loaded) {
			continue
		}
		err := WrapError(func() error {
			return tx.Model(&Account{}).
				Where("internal_key = ?", key).
				Updates(map[string]any{"balance": Numeric{balance}, "updated_at": time.Now().UTC()}).
				Error
		})
		if err != nil {
			return fmt.Errorf("update account %s: %w", t.account.PublicID(), err)
		}
		t.loaded = balance
	}

	for _, a := range u.newAccounts {
		if err := insertAccount(tx, a); err != nil {
			return err
		}
		u.accounts[a.InternalKey()] = &tracked{account: a, loaded: a.Balance().Value()}
	}
	u.newAccounts = nil

	return nil
}

// Commit commits the open transaction.
func (u *UoW) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	if err := u.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	u.reset()
	return nil
}

// Rollback aborts the open transaction and drops staged and tracked aggregates.
func (u *UoW) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Rollback().Error
	u.reset()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// Close rolls back a transaction that was neither committed nor rolled back.
// It is a no-op otherwise.
func (u *UoW) Close() error {
	if u.tx == nil {
		return nil
	}
	u.logger.Warn("Closing unit of work with an open transaction, rolling back")
	return u.Rollback(context.Background())
}

// AccountRepository returns an account repository bound to the current scope.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepository{uow: u}, nil
}

// ActorRepository returns an actor repository bound to the current scope.
func (u *UoW) ActorRepository() (repository.ActorRepository, error) {
	return &actorRepository{uow: u}, nil
}

func (u *UoW) reset() {
	u.tx = nil
	u.accounts = make(map[uint]*tracked)
	u.newAccounts = nil
	u.newActors = nil
}

// session returns the transaction when one is open, the plain connection otherwise.
func (u *UoW) session(ctx context.Context) *gorm.DB {
	if u.tx != nil {
		return u.tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}

func insertActor(tx *gorm.DB, a actor.Actor) error {
	p, ok := actor.AsPerson(a)
	if !ok {
		return fmt.Errorf("insert actor %s: unsupported kind %q", a.PublicID(), a.Kind())
	}
	row := Actor{PublicID: p.PublicID(), Kind: string(p.Kind())}
	if err := WrapError(func() error { return tx.Create(&row).Error }); err != nil {
		return fmt.Errorf("insert actor %s: %w", p.PublicID(), err)
	}
	person := Person{ActorKey: row.InternalKey, FirstName: p.FirstName(), LastName: p.LastName()}
	if err := WrapError(func() error { return tx.Omit(clause.Associations).Create(&person).Error }); err != nil {
		return fmt.Errorf("insert person %s: %w", p.PublicID(), err)
	}
	p.AssignInternalKey(row.InternalKey)
	return nil
}

func insertAccount(tx *gorm.DB, a *account.Account) error {
	ownerKey := a.Owner().InternalKey()
	if ownerKey == 0 {
		return fmt.Errorf("insert account %s: owner %s is not persisted", a.PublicID(), a.Owner().PublicID())
	}
	row := mapAccountToModel(a, ownerKey)
	if err := WrapError(func() error { return tx.Omit(clause.Associations).Create(&row).Error }); err != nil {
		return fmt.Errorf("insert account %s: %w", a.PublicID(), err)
	}
	a.AssignInternalKey(row.InternalKey)
	return nil
}
