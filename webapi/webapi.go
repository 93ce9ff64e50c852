// Package webapi exposes the ledger over HTTP.
// It is organized into sub-packages:
// - account: account creation, deposits, transfers and balances
// - common: problem details and request binding shared by the handlers
//
// The OpenAPI document is served under /swagger.
package webapi

import (
	"errors"
	"log/slog"
	"strings"

	_ "github.com/amirasaad/ledger/docs"
	"github.com/amirasaad/ledger/pkg/config"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

// SetupApp initializes Fiber with the ledger routes and middleware.
func SetupApp(deps *config.Deps, accountSvc accountweb.Service) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.App{}
	}

	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ErrorResponseJSON(c, fe.Code, fe.Message, nil)
			}
			log.Error("Unhandled error", "path", c.Path(), "error", err)
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(requestid.New())
	if rl := cfg.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rl.MaxRequests,
			Expiration:   rl.Window,
			KeyGenerator: clientKey,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
			},
		}))
	}
	fiberApp.Use(recover.New())
	if cfg.IsDevelopment() {
		fiberApp.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running! 🚀")
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))
	if deps.Metrics != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	accountweb.Routes(fiberApp, accountSvc, log)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. The first X-Forwarded-For
// entry wins, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
