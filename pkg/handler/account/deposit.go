package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/repository"
)

// DepositHandler adds money to one account.
type DepositHandler struct {
	logger *slog.Logger
}

func NewDepositHandler(logger *slog.Logger) *DepositHandler {
	return &DepositHandler{logger: logger}
}

func (h *DepositHandler) Handle(ctx context.Context, uow repository.UnitOfWork, cmd commands.Deposit) error {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return err
	}
	acc, err := findAccount(ctx, accounts, cmd.AccountID)
	if err != nil {
		return err
	}
	if err := acc.Deposit(cmd.Amount); err != nil {
		return err
	}
	h.logger.Debug("Deposit applied", "account_id", cmd.AccountID, "amount", cmd.Amount.String())
	return nil
}
