// Package account exposes the account use cases over HTTP.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is the part of the account service used by the routes.
type Service interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, code currency.Code) (*queries.AccountCreated, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, code currency.Code) error
	Transfer(ctx context.Context, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, code currency.Code) error
	GetBalance(ctx context.Context, accountID uuid.UUID) (*queries.Balance, error)
}

// Routes registers the account endpoints.
//
// Routes:
//   - POST   /api/v1/accounts                : Create an account for an actor.
//   - POST   /api/v1/accounts/:id/deposits   : Deposit funds into the account.
//   - POST   /api/v1/accounts/:id/transfers  : Transfer funds to another account.
//   - GET    /api/v1/accounts/:id/balance    : Retrieve the balance of the account.
func Routes(app fiber.Router, svc Service, logger *slog.Logger) {
	g := app.Group("/api/v1/accounts")
	g.Post("/", CreateAccount(svc, logger))
	g.Post("/:id/deposits", Deposit(svc, logger))
	g.Post("/:id/transfers", Transfer(svc, logger))
	g.Get("/:id/balance", GetBalance(svc, logger))
}

// CreateAccount returns a Fiber handler creating an empty account for the given owner.
// The currency defaults to DKK.
// @Summary Create a new account
// @Description Opens an empty account for an existing actor. The currency defaults to DKK.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account owner and currency"
// @Success 200 {object} common.Response{data=queries.AccountCreated} "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Actor not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/accounts [post]
func CreateAccount(svc Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		ownerID := uuid.MustParse(input.OwnerID)
		code := currency.DefaultCode
		if input.Currency != "" {
			if code, err = currency.Parse(input.Currency); err != nil {
				return common.ProblemDetailsJSON(c, "Invalid currency", err)
			}
		}
		created, err := svc.CreateAccount(c.UserContext(), ownerID, code)
		if err != nil {
			logger.Warn("Failed to create account", "owner_id", ownerID, "error", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account created", created)
	}
}

// Deposit returns a Fiber handler depositing into the account in the path.
// @Summary Deposit funds into an account
// @Description Adds the amount to the account balance. A zero amount is accepted and changes nothing.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body DepositRequest true "Amount to deposit"
// @Success 204 "Deposited"
// @Failure 400 {object} common.ProblemDetails "Invalid request, amount or currency"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/accounts/{id}/deposits [post]
func Deposit(svc Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		amount, err := input.Amount.ToAmount()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		if err := svc.Deposit(c.UserContext(), accountID, amount.Value(), amount.Currency()); err != nil {
			logger.Warn("Failed to deposit", "account_id", accountID, "error", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Transfer returns a Fiber handler moving funds from the account in the path.
// @Summary Transfer funds between accounts
// @Description Withdraws the amount from the account in the path and deposits it into the destination, atomically.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Source account ID"
// @Param request body TransferRequest true "Destination and amount"
// @Success 204 "Transferred"
// @Failure 400 {object} common.ProblemDetails "Invalid request, amount or currency"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/accounts/{id}/transfers [post]
func Transfer(svc Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		toID := uuid.MustParse(input.ToAccountID)
		amount, err := input.Amount.ToAmount()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		if err := svc.Transfer(c.UserContext(), fromID, toID, amount.Value(), amount.Currency()); err != nil {
			logger.Warn("Failed to transfer", "from_account_id", fromID, "to_account_id", toID, "error", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetBalance returns a Fiber handler reading the balance of the account in the path.
// @Summary Get account balance
// @Description Returns the current balance, currency and number of the account.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response{data=queries.Balance} "Balance fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/accounts/{id}/balance [get]
func GetBalance(svc Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		balance, err := svc.GetBalance(c.UserContext(), accountID)
		if err != nil {
			logger.Debug("Failed to get balance", "account_id", accountID, "error", err)
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", balance)
	}
}
