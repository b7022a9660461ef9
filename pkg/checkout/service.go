package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/currency"
	"github.com/paygate-app/paygate/pkg/domain"
	"github.com/paygate-app/paygate/pkg/domain/events"
	"github.com/paygate-app/paygate/pkg/eventbus"
	"github.com/paygate-app/paygate/pkg/stripeapi"
)

const defaultSessionTTL = 24 * time.Hour

// Repository persists gateway-side session records. UpdateStatus only
// transitions sessions out of pending and returns
// domain.ErrSessionAlreadyFinalized for sessions that are already
// completed or expired.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*Session, error)
	UpdateStatus(ctx context.Context, id, status, paymentIntent string) error
}

// ProviderClient is the slice of the payment API client the service
// needs. *stripeapi.Client satisfies it.
type ProviderClient interface {
	CreateCheckoutSession(
		ctx context.Context,
		params *stripeapi.CheckoutSessionParams,
	) (*stripeapi.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*stripeapi.CheckoutSession, error)
	ExpireCheckoutSession(ctx context.Context, id string) (*stripeapi.CheckoutSession, error)
}

var _ ProviderClient = (*stripeapi.Client)(nil)

// LineItem is one purchasable entry in a session request.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Currency    string
	Quantity    int64
	Images      []string
}

// CreateSessionInput carries everything needed to start a checkout
// flow for a user.
type CreateSessionInput struct {
	UserID            uuid.UUID
	CustomerEmail     string
	ClientReferenceID string
	Items             []LineItem
	Locale            string
	SubmitType        string
}

// Service provides high-level operations for managing checkout
// sessions.
type Service struct {
	client  ProviderClient
	repo    Repository
	bus     eventbus.Bus
	cfg     config.Stripe
	baseURL string
	logger  *slog.Logger
}

// New creates a checkout service. baseURL is the public URL of the
// gateway, used to build the success and cancel redirects.
func New(
	client ProviderClient,
	repo Repository,
	bus eventbus.Bus,
	cfg config.Stripe,
	baseURL string,
	logger *slog.Logger,
) *Service {
	return &Service{
		client:  client,
		repo:    repo,
		bus:     bus,
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CreateSession creates a session at the provider, records it locally
// as pending, and publishes CheckoutSessionCreated.
func (s *Service) CreateSession(
	ctx context.Context,
	input CreateSessionInput,
) (*Session, error) {
	log := s.logger.With(
		"handler", "checkout.CreateSession",
		"user_id", input.UserID,
	)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	params := s.buildParams(input)
	co, err := s.client.CreateCheckoutSession(ctx, params)
	if err != nil {
		log.Error("failed to create checkout session", "error", err)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	session := &Session{
		ID:                co.ID,
		UserID:            input.UserID,
		ClientReferenceID: input.ClientReferenceID,
		Amount:            totalAmount(input.Items),
		Currency:          strings.ToLower(input.Items[0].Currency),
		Status:            StatusPending,
		CheckoutURL:       co.URL,
		CreatedAt:         time.Now(),
		ExpiresAt:         expiryFrom(co),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		log.Error("failed to persist checkout session", "error", err)
		return nil, fmt.Errorf("failed to persist checkout session: %w", err)
	}

	created := events.CheckoutSessionCreated{
		EventID:     uuid.New(),
		SessionID:   session.ID,
		UserID:      session.UserID,
		AmountTotal: session.Amount,
		Currency:    session.Currency,
		CheckoutURL: session.CheckoutURL,
		Timestamp:   time.Now(),
	}
	if err := s.bus.Publish(ctx, created); err != nil {
		log.Error("failed to publish CheckoutSessionCreated", "error", err)
	}

	log.Info("checkout session created",
		"session_id", session.ID,
		"url", session.CheckoutURL,
	)
	return session, nil
}

// GetSession returns the local record for id, ensuring it belongs to
// userID.
func (s *Service) GetSession(
	ctx context.Context,
	id string,
	userID uuid.UUID,
) (*Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.ErrUserUnauthorized
	}
	return session, nil
}

// ListPendingSessions returns the user's sessions still awaiting
// payment.
func (s *Service) ListPendingSessions(
	ctx context.Context,
	userID uuid.UUID,
) ([]*Session, error) {
	return s.repo.ListPendingByUser(ctx, userID)
}

// ExpireSession expires an open session at the provider and marks the
// local record accordingly.
func (s *Service) ExpireSession(
	ctx context.Context,
	id string,
	userID uuid.UUID,
) (*Session, error) {
	session, err := s.GetSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.client.ExpireCheckoutSession(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to expire checkout session: %w", err)
	}
	if err := s.MarkExpired(ctx, id); err != nil {
		return nil, err
	}
	session.Status = StatusExpired
	return session, nil
}

// MarkCompleted records a provider-reported completion and publishes
// CheckoutSessionCompleted. Replayed or out-of-order webhooks for a
// session that already left pending are ignored without publishing.
func (s *Service) MarkCompleted(ctx context.Context, id, paymentIntent string) error {
	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted, paymentIntent); err != nil {
		if errors.Is(err, domain.ErrSessionAlreadyFinalized) {
			s.logger.Info("ignoring status update for finalized session",
				"session_id", id, "status", StatusCompleted)
			return nil
		}
		return fmt.Errorf("failed to mark session completed: %w", err)
	}
	return s.bus.Publish(ctx, events.CheckoutSessionCompleted{
		EventID:       uuid.New(),
		SessionID:     id,
		PaymentIntent: paymentIntent,
		Timestamp:     time.Now(),
	})
}

// MarkExpired records a provider-reported expiry and publishes
// CheckoutSessionExpired. Like MarkCompleted it is a no-op for
// sessions that already left pending.
func (s *Service) MarkExpired(ctx context.Context, id string) error {
	if err := s.repo.UpdateStatus(ctx, id, StatusExpired, ""); err != nil {
		if errors.Is(err, domain.ErrSessionAlreadyFinalized) {
			s.logger.Info("ignoring status update for finalized session",
				"session_id", id, "status", StatusExpired)
			return nil
		}
		return fmt.Errorf("failed to mark session expired: %w", err)
	}
	return s.bus.Publish(ctx, events.CheckoutSessionExpired{
		EventID:   uuid.New(),
		SessionID: id,
		Timestamp: time.Now(),
	})
}

func (s *Service) buildParams(input CreateSessionInput) *stripeapi.CheckoutSessionParams {
	mode := stripeapi.CheckoutSessionModePayment
	params := &stripeapi.CheckoutSessionParams{
		CancelURL:          s.baseURL + s.cfg.CancelPath,
		SuccessURL:         s.baseURL + s.cfg.SuccessPath,
		PaymentMethodTypes: []string{"card"},
		Mode:               &mode,
		Metadata: map[string]string{
			"user_id": input.UserID.String(),
		},
	}

	if input.CustomerEmail != "" {
		params.CustomerEmail = stripeapi.String(input.CustomerEmail)
	}
	if input.ClientReferenceID != "" {
		params.ClientReferenceID = stripeapi.String(input.ClientReferenceID)
	}
	if input.Locale != "" {
		locale := stripeapi.CheckoutSessionLocale(input.Locale)
		params.Locale = &locale
	}
	if input.SubmitType != "" {
		submit := stripeapi.CheckoutSessionSubmitType(input.SubmitType)
		params.SubmitType = &submit
	}

	for _, item := range input.Items {
		lineItem := &stripeapi.CheckoutSessionLineItemParams{
			Quantity: item.Quantity,
			PriceData: &stripeapi.PriceDataParams{
				UnitAmount: item.UnitAmount,
				Currency:   strings.ToLower(item.Currency),
				ProductData: &stripeapi.ProductDataParams{
					Name: item.Name,
				},
			},
		}
		if item.Description != "" {
			lineItem.PriceData.ProductData.Description = stripeapi.String(item.Description)
		}
		if len(item.Images) > 0 {
			lineItem.Images = item.Images
		}
		params.LineItems = append(params.LineItems, lineItem)
	}
	return params
}

func validateInput(input CreateSessionInput) error {
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", domain.ErrAmountMustBePositive)
	}
	for _, item := range input.Items {
		if item.UnitAmount <= 0 || item.Quantity <= 0 {
			return domain.ErrAmountMustBePositive
		}
		if !currency.IsSupported(item.Currency) {
			return domain.ErrInvalidCurrencyCode
		}
		// Amount sums across items, which only makes sense in one currency.
		if !strings.EqualFold(item.Currency, input.Items[0].Currency) {
			return domain.ErrMixedCurrencies
		}
	}
	return nil
}

func totalAmount(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitAmount * item.Quantity
	}
	return total
}

func expiryFrom(co *stripeapi.CheckoutSession) time.Time {
	if co.ExpiresAt > 0 {
		return time.Unix(co.ExpiresAt, 0)
	}
	return time.Now().Add(defaultSessionTTL)
}
