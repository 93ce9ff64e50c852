package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/amirasaad/ledger/pkg/repository"
)

// GetBalanceHandler reads the balance of one account.
type GetBalanceHandler struct{}

func NewGetBalanceHandler() *GetBalanceHandler {
	return &GetBalanceHandler{}
}

func (h *GetBalanceHandler) HandleQuery(
	ctx context.Context,
	uow repository.UnitOfWork,
	q queries.GetBalance,
) (*queries.Balance, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := findAccount(ctx, accounts, q.AccountID)
	if err != nil {
		return nil, err
	}
	return &queries.Balance{
		AccountID:     acc.PublicID(),
		AccountNumber: acc.Number().String(),
		Currency:      acc.Currency(),
		Balance:       acc.Balance(),
	}, nil
}
