package checkout

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/middleware"
	"github.com/paygate-app/paygate/webapi/common"
)

// Routes registers HTTP routes for checkout-related operations.
func Routes(
	app *fiber.App,
	checkoutSvc *checkoutsvc.Service,
	cfg *config.App,
	logger *slog.Logger,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/checkout/sessions", protected, CreateSession(checkoutSvc, logger))
	app.Get("/checkout/sessions/pending", protected, GetPendingSessions(checkoutSvc, logger))
	app.Get("/checkout/sessions/:id", protected, GetSession(checkoutSvc, logger))
	app.Post("/checkout/sessions/:id/expire", protected, ExpireSession(checkoutSvc, logger))
}

// CreateSession returns a Fiber handler that starts a checkout flow
// for the authenticated user.
// @Summary Create a checkout session
// @Description Creates a session at the payment provider and returns the hosted checkout URL.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Session parameters"
// @Success 201 {object} common.Response "Session created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 502 {object} common.ProblemDetails "Provider error"
// @Router /checkout/sessions [post]
// @Security Bearer
func CreateSession(checkoutSvc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		input, err := common.BindAndValidate[CreateSessionRequest](c)
		if err != nil {
			return nil
		}

		session, err := checkoutSvc.CreateSession(c.Context(), toServiceInput(userID, input))
		if err != nil {
			logger.Error("failed to create checkout session", "error", err, "user_id", userID)
			return common.ProblemDetailsJSON(c, "Failed to create checkout session", err)
		}

		return common.SuccessResponseJSON(
			c,
			fiber.StatusCreated,
			"Checkout session created",
			toDTO(session),
		)
	}
}

// GetSession returns a Fiber handler for retrieving one session owned
// by the current user.
// @Summary Get a checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} common.Response "Session fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /checkout/sessions/{id} [get]
// @Security Bearer
func GetSession(checkoutSvc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		session, err := checkoutSvc.GetSession(c.Context(), c.Params("id"), userID)
		if err != nil {
			logger.Error("failed to get checkout session", "error", err, "session_id", c.Params("id"))
			return common.ProblemDetailsJSON(c, "Failed to get checkout session", err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK, "Session fetched", toDTO(session))
	}
}

// GetPendingSessions returns a Fiber handler for retrieving pending
// checkout sessions for the current user.
// @Summary Get pending checkout sessions
// @Tags checkout
// @Produce json
// @Success 200 {object} common.Response "Pending sessions fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /checkout/sessions/pending [get]
// @Security Bearer
func GetPendingSessions(checkoutSvc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		sessions, err := checkoutSvc.ListPendingSessions(c.Context(), userID)
		if err != nil {
			logger.Error("failed to list pending sessions", "error", err, "user_id", userID)
			return common.ProblemDetailsJSON(c, "Failed to get pending sessions", err)
		}

		dtos := make([]*SessionDTO, 0, len(sessions))
		for _, s := range sessions {
			dtos = append(dtos, toDTO(s))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pending sessions fetched", dtos)
	}
}

// ExpireSession returns a Fiber handler that expires an open session.
// @Summary Expire a checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} common.Response "Session expired"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /checkout/sessions/{id}/expire [post]
// @Security Bearer
func ExpireSession(checkoutSvc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		session, err := checkoutSvc.ExpireSession(c.Context(), c.Params("id"), userID)
		if err != nil {
			logger.Error("failed to expire checkout session", "error", err, "session_id", c.Params("id"))
			return common.ProblemDetailsJSON(c, "Failed to expire checkout session", err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK, "Session expired", toDTO(session))
	}
}

func toServiceInput(userID uuid.UUID, input *CreateSessionRequest) checkoutsvc.CreateSessionInput {
	items := make([]checkoutsvc.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, checkoutsvc.LineItem{
			Name:        item.Name,
			Description: item.Description,
			UnitAmount:  item.UnitAmount,
			Currency:    item.Currency,
			Quantity:    item.Quantity,
			Images:      item.Images,
		})
	}
	return checkoutsvc.CreateSessionInput{
		UserID:            userID,
		CustomerEmail:     input.CustomerEmail,
		ClientReferenceID: input.ClientReferenceID,
		Locale:            input.Locale,
		SubmitType:        input.SubmitType,
		Items:             items,
	}
}

func toDTO(s *checkoutsvc.Session) *SessionDTO {
	return &SessionDTO{
		ID:                s.ID,
		UserID:            s.UserID.String(),
		ClientReferenceID: s.ClientReferenceID,
		Amount:            s.Amount,
		Currency:          s.Currency,
		Status:            s.Status,
		CheckoutURL:       s.CheckoutURL,
		CreatedAt:         s.CreatedAt,
		ExpiresAt:         s.ExpiresAt,
	}
}
