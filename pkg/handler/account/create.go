package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/amirasaad/ledger/pkg/repository"
)

// CreateAccountHandler opens a new account for an existing actor.
type CreateAccountHandler struct {
	logger *slog.Logger
}

func NewCreateAccountHandler(logger *slog.Logger) *CreateAccountHandler {
	return &CreateAccountHandler{logger: logger}
}

// Handle looks up the owner, then stages a new empty account for it.
// An unknown owner fails with an EntityNotFoundError and nothing is staged.
func (h *CreateAccountHandler) Handle(
	ctx context.Context,
	uow repository.UnitOfWork,
	cmd commands.CreateAccount,
) (*queries.AccountCreated, error) {
	actors, err := uow.ActorRepository()
	if err != nil {
		return nil, err
	}
	owner, err := findActor(ctx, actors, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc := account.New(cmd.Currency, owner)
	if err := accounts.Create(ctx, acc); err != nil {
		return nil, err
	}

	h.logger.Debug("Account staged", "account_id", acc.PublicID(), "owner_id", owner.PublicID())
	return &queries.AccountCreated{
		ID:            acc.PublicID(),
		AccountNumber: acc.Number().String(),
		Currency:      acc.Currency(),
		Balance:       acc.Balance(),
		OwnerID:       owner.PublicID(),
	}, nil
}
