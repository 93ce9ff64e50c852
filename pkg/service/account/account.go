// Package account is the entry point of the account use cases.
//
// Every command runs in its own unit of work, wrapped by the transaction
// decorator: either all of its changes are committed or none are. Queries read
// through a unit of work that never opens a transaction.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/decorator"
	"github.com/amirasaad/ledger/pkg/domain/money"
	handler "github.com/amirasaad/ledger/pkg/handler/account"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	commandCreateAccount = "create_account"
	commandDeposit       = "deposit"
	commandTransfer      = "transfer"
	queryGetBalance      = "get_balance"
)

// Service provides the account use cases.
type Service struct {
	uowFactory  repository.UnitOfWorkFactory
	transaction decorator.TransactionDecorator
	metrics     *metrics.Metrics
	logger      *slog.Logger

	createAccount *handler.CreateAccountHandler
	deposit       *handler.DepositHandler
	transfer      *handler.TransferHandler
	getBalance    *handler.GetBalanceHandler
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uowFactory:    deps.UowFactory,
		transaction:   decorator.NewUnitOfWorkTransactionDecorator(logger),
		metrics:       deps.Metrics,
		logger:        logger,
		createAccount: handler.NewCreateAccountHandler(logger),
		deposit:       handler.NewDepositHandler(logger),
		transfer:      handler.NewTransferHandler(logger),
		getBalance:    handler.NewGetBalanceHandler(),
	}
}

// CreateAccount opens an empty account in code for the actor ownerID.
func (s *Service) CreateAccount(
	ctx context.Context,
	ownerID uuid.UUID,
	code currency.Code,
) (created *queries.AccountCreated, err error) {
	logger := s.logger.With("command", commandCreateAccount, "owner_id", ownerID, "currency", code)
	err = s.execute(ctx, commandCreateAccount, logger, func(uow repository.UnitOfWork) error {
		created, err = s.createAccount.Handle(ctx, uow, commands.CreateAccount{ActorID: ownerID, Currency: code})
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Account created", "account_id", created.ID)
	return created, nil
}

// Deposit adds amount in code to the account.
func (s *Service) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, code currency.Code) error {
	logger := s.logger.With("command", commandDeposit, "account_id", accountID)
	cmd := commands.Deposit{AccountID: accountID, Amount: money.New(amount, code)}
	return s.execute(ctx, commandDeposit, logger, func(uow repository.UnitOfWork) error {
		return s.deposit.Handle(ctx, uow, cmd)
	})
}

// Transfer moves amount in code from one account to another.
func (s *Service) Transfer(
	ctx context.Context,
	fromAccountID, toAccountID uuid.UUID,
	amount decimal.Decimal,
	code currency.Code,
) error {
	logger := s.logger.With("command", commandTransfer, "from_account_id", fromAccountID, "to_account_id", toAccountID)
	cmd := commands.Transfer{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        money.New(amount, code),
	}
	return s.execute(ctx, commandTransfer, logger, func(uow repository.UnitOfWork) error {
		return s.transfer.Handle(ctx, uow, cmd)
	})
}

// GetBalance returns the balance of the account. It does not open a transaction.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (res *queries.Balance, err error) {
	defer func(started time.Time) { s.metrics.Observe(queryGetBalance, started, err) }(time.Now())

	uow, err := s.uowFactory()
	if err != nil {
		return nil, err
	}
	defer func() { _ = uow.Close() }()

	return s.getBalance.HandleQuery(ctx, uow, queries.GetBalance{AccountID: accountID})
}

// execute runs fn in a fresh unit of work inside the transaction decorator.
func (s *Service) execute(
	ctx context.Context,
	name string,
	logger *slog.Logger,
	fn func(uow repository.UnitOfWork) error,
) (err error) {
	defer func(started time.Time) { s.metrics.Observe(name, started, err) }(time.Now())

	uow, err := s.uowFactory()
	if err != nil {
		logger.Error("Failed to create unit of work", "error", err)
		return err
	}
	err = s.transaction.Execute(ctx, uow, func() error { return fn(uow) })
	if err != nil {
		logger.Warn("Command failed", "error", err)
		return err
	}
	logger.Debug("Command committed")
	return nil
}
