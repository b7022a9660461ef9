// Package payment exposes the endpoint the payment provider calls
// back with session lifecycle events.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/webhook"
)

type eventHandler func(context.Context, webhook.Event) error

// Handler dispatches verified provider events to the checkout service.
// Unknown event types are acknowledged and ignored so the provider
// does not retry them forever.
type Handler struct {
	cfg      config.Stripe
	logger   *slog.Logger
	handlers map[string]eventHandler
}

// NewHandler wires the per-event-type handlers.
func NewHandler(
	checkoutSvc *checkoutsvc.Service,
	cfg config.Stripe,
	logger *slog.Logger,
) *Handler {
	h := &Handler{cfg: cfg, logger: logger}
	h.handlers = map[string]eventHandler{
		"checkout.session.completed": func(ctx context.Context, event webhook.Event) error {
			session, err := parseSession(event)
			if err != nil {
				return err
			}
			return checkoutSvc.MarkCompleted(ctx, session.ID, session.PaymentIntent)
		},
		"checkout.session.expired": func(ctx context.Context, event webhook.Event) error {
			session, err := parseSession(event)
			if err != nil {
				return err
			}
			return checkoutSvc.MarkExpired(ctx, session.ID)
		},
	}
	return h
}

// Routes registers the webhook endpoint. It is unauthenticated; the
// signature check is the authentication.
func (h *Handler) Routes(app *fiber.App) {
	app.Post("/webhook/stripe", h.Receive)
}

// Receive verifies the signature, dispatches the event, and always
// acknowledges events it has no handler for.
func (h *Handler) Receive(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing Stripe-Signature header",
		})
	}

	payload := c.Body()
	if len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Empty request body",
		})
	}

	event, err := webhook.ConstructEvent(payload, signature, h.cfg.SigningSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid signature",
		})
	}

	handler, ok := h.handlers[event.Type]
	if !ok {
		h.logger.Debug("ignoring unhandled webhook event", "type", event.Type)
		return c.JSON(fiber.Map{"received": true})
	}

	if err := handler(c.Context(), event); err != nil {
		h.logger.Error("failed to process webhook event",
			"type", event.Type,
			"event_id", event.ID,
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing webhook",
		})
	}

	h.logger.Info("webhook event processed", "type", event.Type, "event_id", event.ID)
	return c.JSON(fiber.Map{"received": true})
}

type sessionPayload struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
}

func parseSession(event webhook.Event) (*sessionPayload, error) {
	var session sessionPayload
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("error parsing session from event: %w", err)
	}
	return &session, nil
}
