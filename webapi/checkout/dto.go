package checkout

import "time"

// LineItemRequest is one purchasable entry in a session request.
type LineItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	UnitAmount  int64    `json:"unit_amount" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"required,len=3,alpha"`
	Quantity    int64    `json:"quantity" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// CreateSessionRequest is the body of POST /checkout/sessions.
type CreateSessionRequest struct {
	CustomerEmail     string            `json:"customer_email" validate:"omitempty,email"`
	ClientReferenceID string            `json:"client_reference_id"`
	Locale            string            `json:"locale"`
	SubmitType        string            `json:"submit_type" validate:"omitempty,oneof=auto book donate pay"`
	Items             []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SessionDTO represents a checkout session for API responses.
type SessionDTO struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ClientReferenceID string    `json:"client_reference_id,omitempty"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CheckoutURL       string    `json:"checkout_url"`
	CreatedAt         time.Time `json:"created_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}
