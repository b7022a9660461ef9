// Package events defines the domain events published on the bus as
// checkout sessions move through their lifecycle.
package events

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutSessionCreated is published after a session has been created
// at the payment provider and recorded locally.
type CheckoutSessionCreated struct {
	EventID     uuid.UUID
	SessionID   string
	UserID      uuid.UUID
	AmountTotal int64
	Currency    string
	CheckoutURL string
	Timestamp   time.Time
}

// CheckoutSessionCompleted is published when the provider reports a
// session as paid.
type CheckoutSessionCompleted struct {
	EventID       uuid.UUID
	SessionID     string
	PaymentIntent string
	Timestamp     time.Time
}

// CheckoutSessionExpired is published when the provider reports a
// session as expired before completion.
type CheckoutSessionExpired struct {
	EventID   uuid.UUID
	SessionID string
	Timestamp time.Time
}

func (e CheckoutSessionCreated) EventType() string   { return "CheckoutSessionCreated" }
func (e CheckoutSessionCompleted) EventType() string { return "CheckoutSessionCompleted" }
func (e CheckoutSessionExpired) EventType() string   { return "CheckoutSessionExpired" }
