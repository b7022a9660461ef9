// Package testutils provides in-memory fakes and request helpers for
// web API tests.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/domain"
	"github.com/paygate-app/paygate/pkg/eventbus"
	"github.com/paygate-app/paygate/pkg/stripeapi"
)

// JwtSecret signs the test tokens.
const JwtSecret = "test-secret"

// SigningSecret signs the test webhook payloads.
const SigningSecret = "whsec_test"

// FakeProvider is a ProviderClient returning canned sessions.
type FakeProvider struct {
	Err error
}

func (f *FakeProvider) CreateCheckoutSession(
	_ context.Context,
	params *stripeapi.CheckoutSessionParams,
) (*stripeapi.CheckoutSession, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &stripeapi.CheckoutSession{
		ID:         "cs_test_fake",
		URL:        "https://checkout.stripe.com/c/pay/cs_test_fake",
		Status:     stripeapi.CheckoutSessionStatusOpen,
		CancelURL:  params.CancelURL,
		SuccessURL: params.SuccessURL,
		ExpiresAt:  time.Now().Add(24 * time.Hour).Unix(),
	}, nil
}

func (f *FakeProvider) GetCheckoutSession(
	_ context.Context,
	id string,
) (*stripeapi.CheckoutSession, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &stripeapi.CheckoutSession{ID: id, Status: stripeapi.CheckoutSessionStatusOpen}, nil
}

func (f *FakeProvider) ExpireCheckoutSession(
	_ context.Context,
	id string,
) (*stripeapi.CheckoutSession, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &stripeapi.CheckoutSession{ID: id, Status: stripeapi.CheckoutSessionStatusExpired}, nil
}

// FakeRepository keeps session records in memory.
type FakeRepository struct {
	mu       sync.Mutex
	sessions map[string]*checkoutsvc.Session
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{sessions: make(map[string]*checkoutsvc.Session)}
}

func (r *FakeRepository) Create(_ context.Context, session *checkoutsvc.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *FakeRepository) GetByID(_ context.Context, id string) (*checkoutsvc.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *FakeRepository) ListPendingByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*checkoutsvc.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*checkoutsvc.Session
	for _, session := range r.sessions {
		if session.UserID == userID && session.Status == checkoutsvc.StatusPending {
			copied := *session
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *FakeRepository) UpdateStatus(_ context.Context, id, status, paymentIntent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if session.Status != checkoutsvc.StatusPending {
		return domain.ErrSessionAlreadyFinalized
	}
	session.Status = status
	if paymentIntent != "" {
		session.PaymentIntent = paymentIntent
	}
	return nil
}

// TestConfig returns an App config suitable for handler tests.
func TestConfig() *config.App {
	return &config.App{
		Env:     "test",
		BaseURL: "https://pay.example.com",
		Auth:    config.Auth{Jwt: config.Jwt{Secret: JwtSecret, Expiry: time.Hour}},
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
		PaymentProviders: config.PaymentProviders{
			Stripe: config.Stripe{
				SigningSecret: SigningSecret,
				SuccessPath:   "/checkout/success",
				CancelPath:    "/checkout/cancel",
			},
		},
	}
}

// NewService builds a checkout service on the fakes.
func NewService(
	provider checkoutsvc.ProviderClient,
	repo checkoutsvc.Repository,
	bus eventbus.Bus,
) *checkoutsvc.Service {
	cfg := TestConfig()
	return checkoutsvc.New(
		provider,
		repo,
		bus,
		cfg.PaymentProviders.Stripe,
		cfg.BaseURL,
		Logger(),
	)
}

// Logger returns a quiet slog logger for tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// SignToken creates a valid Bearer token for userID.
func SignToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(JwtSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

// MakeRequest issues a request against the Fiber app under test.
func MakeRequest(
	t *testing.T,
	app *fiber.App,
	method, target, body, token string,
) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
