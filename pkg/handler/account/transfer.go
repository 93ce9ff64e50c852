package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
)

// TransferHandler moves money between two accounts of the same currency.
type TransferHandler struct {
	logger *slog.Logger
}

func NewTransferHandler(logger *slog.Logger) *TransferHandler {
	return &TransferHandler{logger: logger}
}

// Handle loads both accounts in lock order, checks that they share a currency, then withdraws
// from the source and deposits into the destination. Both changes are in-memory
// until the unit of work saves them, so a failure on either side leaves nothing
// behind once the transaction is rolled back.
func (h *TransferHandler) Handle(ctx context.Context, uow repository.UnitOfWork, cmd commands.Transfer) error {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return err
	}
	from, to, err := findAccountPair(ctx, accounts, cmd.FromAccountID, cmd.ToAccountID)
	if err != nil {
		return err
	}

	if from.Currency() != to.Currency() {
		return &account.InvalidCurrencyError{Actual: from.Currency(), Expected: to.Currency()}
	}

	if err := from.Withdraw(cmd.Amount); err != nil {
		return err
	}
	if err := to.Deposit(cmd.Amount); err != nil {
		return err
	}

	h.logger.Debug("Transfer applied",
		"from_account_id", cmd.FromAccountID,
		"to_account_id", cmd.ToAccountID,
		"amount", cmd.Amount.String(),
	)
	return nil
}
