// Package checkout manages gateway-side checkout sessions: it creates
// them at the payment provider, records them locally, and applies
// lifecycle updates reported back through webhooks.
package checkout

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses as tracked by the gateway. The provider-side
// lifecycle is richer; locally a session is pending until the provider
// reports completion or expiry.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusExpired   = "expired"
)

// Session is the gateway's record of a provider checkout session.
type Session struct {
	ID                string    `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	ClientReferenceID string    `json:"client_reference_id"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CheckoutURL       string    `json:"checkout_url"`
	PaymentIntent     string    `json:"payment_intent"`
	CreatedAt         time.Time `json:"created_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}
