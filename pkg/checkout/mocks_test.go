package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/paygate-app/paygate/pkg/stripeapi"
	"github.com/stretchr/testify/mock"
)

type mockProviderClient struct {
	mock.Mock
}

func (m *mockProviderClient) CreateCheckoutSession(
	ctx context.Context,
	params *stripeapi.CheckoutSessionParams,
) (*stripeapi.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripeapi.CheckoutSession), args.Error(1)
}

func (m *mockProviderClient) GetCheckoutSession(
	ctx context.Context,
	id string,
) (*stripeapi.CheckoutSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripeapi.CheckoutSession), args.Error(1)
}

func (m *mockProviderClient) ExpireCheckoutSession(
	ctx context.Context,
	id string,
) (*stripeapi.CheckoutSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripeapi.CheckoutSession), args.Error(1)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, session *Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *mockRepository) ListPendingByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Session), args.Error(1)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id, status, paymentIntent string) error {
	return m.Called(ctx, id, status, paymentIntent).Error(0)
}
