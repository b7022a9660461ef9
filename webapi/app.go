// Package webapi assembles the Fiber application: middleware, error
// handling, and the route groups under checkout/ and payment/.
package webapi

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/config"
	checkoutweb "github.com/paygate-app/paygate/webapi/checkout"
	"github.com/paygate-app/paygate/webapi/common"
	"github.com/paygate-app/paygate/webapi/payment"
)

// Deps are the services and configuration the web API needs.
type Deps struct {
	CheckoutService *checkoutsvc.Service
	Config          *config.App
	Logger          *slog.Logger
}

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keyed on the client IP, preferring proxy headers
	// when present.
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				nil,
				fiber.StatusTooManyRequests,
			)
		},
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "paygate is up", nil)
	})

	checkoutweb.Routes(app, deps.CheckoutService, deps.Config, deps.Logger)
	payment.NewHandler(
		deps.CheckoutService,
		deps.Config.PaymentProviders.Stripe,
		deps.Logger,
	).Routes(app)

	return app
}
