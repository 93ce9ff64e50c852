package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  actors                                            list the seeded persons
  create <owner_id> [currency]                      open an account
  deposit <account_id> <amount> [currency]          deposit into an account
  transfer <from_id> <to_id> <amount> [currency]    move funds between accounts
  balance <account_id>                              show the balance of an account`

var (
	errUsage = errors.New("invalid usage")

	success = color.New(color.FgGreen).SprintfFunc()
	failure = color.New(color.FgRed).SprintfFunc()
	bold    = color.New(color.Bold).SprintFunc()
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			fmt.Fprintln(os.Stderr, failure("Error: %v", err))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	deps, closeDB, err := initializer.InitializeDependencies(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeDB() //nolint: errcheck
	svc := account.NewService(*deps)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "actors":
		for _, p := range initializer.SeedPersons {
			fmt.Fprintf(out, "%s  %s %s\n", bold(p.ID.String()), p.FirstName, p.LastName)
		}
		return nil
	case "create":
		if len(rest) < 1 {
			return errUsage
		}
		ownerID, err := uuid.Parse(rest[0])
		if err != nil {
			return fmt.Errorf("invalid owner id: %w", err)
		}
		code, err := optionalCurrency(rest, 1)
		if err != nil {
			return err
		}
		created, err := svc.CreateAccount(ctx, ownerID, code)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, success("Account created: ID=%s Number=%s Balance=%s",
			created.ID, created.AccountNumber, created.Balance))
		return nil
	case "deposit":
		if len(rest) < 2 {
			return errUsage
		}
		accountID, amount, err := parseAccountAndAmount(rest[0], rest[1])
		if err != nil {
			return err
		}
		code, err := optionalCurrency(rest, 2)
		if err != nil {
			return err
		}
		if err := svc.Deposit(ctx, accountID, amount, code); err != nil {
			return err
		}
		return printBalance(ctx, out, svc, accountID, "Deposited "+amount.String())
	case "transfer":
		if len(rest) < 3 {
			return errUsage
		}
		fromID, amount, err := parseAccountAndAmount(rest[0], rest[2])
		if err != nil {
			return err
		}
		toID, err := uuid.Parse(rest[1])
		if err != nil {
			return fmt.Errorf("invalid account id: %w", err)
		}
		code, err := optionalCurrency(rest, 3)
		if err != nil {
			return err
		}
		if err := svc.Transfer(ctx, fromID, toID, amount, code); err != nil {
			return err
		}
		return printBalance(ctx, out, svc, fromID, "Transferred "+amount.String()+" to "+toID.String())
	case "balance":
		if len(rest) < 1 {
			return errUsage
		}
		accountID, err := uuid.Parse(rest[0])
		if err != nil {
			return fmt.Errorf("invalid account id: %w", err)
		}
		return printBalance(ctx, out, svc, accountID, "")
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// optionalCurrency parses args[i] when present and falls back to the default currency.
func optionalCurrency(args []string, i int) (currency.Code, error) {
	if len(args) <= i {
		return currency.DefaultCode, nil
	}
	return currency.Parse(args[i])
}

func parseAccountAndAmount(id, value string) (uuid.UUID, decimal.Decimal, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, decimal.Zero, fmt.Errorf("invalid account id: %w", err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, decimal.Zero, fmt.Errorf("invalid amount: %w", err)
	}
	return accountID, amount, nil
}

func printBalance(ctx context.Context, out io.Writer, svc *account.Service, id uuid.UUID, prefix string) error {
	res, err := svc.GetBalance(ctx, id)
	if err != nil {
		return err
	}
	if prefix != "" {
		fmt.Fprintln(out, success("%s.", prefix))
	}
	fmt.Fprintf(out, "Account %s (%s) balance: %s\n", bold(res.AccountID.String()), res.AccountNumber, res.Balance)
	return nil
}
