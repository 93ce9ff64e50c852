package account

import (
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/handler"
	"github.com/amirasaad/ledger/pkg/queries"
)

var (
	_ handler.CommandHandlerWithResult[commands.CreateAccount, *queries.AccountCreated] = (*CreateAccountHandler)(nil)
	_ handler.CommandHandler[commands.Deposit]                                         = (*DepositHandler)(nil)
	_ handler.CommandHandler[commands.Transfer]                                        = (*TransferHandler)(nil)
	_ handler.QueryHandler[queries.GetBalance, *queries.Balance]                       = (*GetBalanceHandler)(nil)
)
