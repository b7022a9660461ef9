// Package checkout persists gateway-side checkout session records.
package checkout

import (
	"time"

	"github.com/google/uuid"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
)

// Session is the database record for a checkout session. The primary
// key is the provider's session ID.
type Session struct {
	ID                string    `gorm:"primaryKey;size:255"`
	UserID            uuid.UUID `gorm:"type:uuid;index;not null"`
	ClientReferenceID string    `gorm:"size:255"`
	Amount            int64
	Currency          string `gorm:"type:varchar(3);not null"`
	Status            string `gorm:"size:32;index;not null"`
	CheckoutURL       string
	PaymentIntent     string `gorm:"size:255"`
	CreatedAt         time.Time
	ExpiresAt         time.Time
}

// TableName pins the table name regardless of the struct name.
func (Session) TableName() string { return "checkout_sessions" }

func toModel(s *checkoutsvc.Session) *Session {
	return &Session{
		ID:                s.ID,
		UserID:            s.UserID,
		ClientReferenceID: s.ClientReferenceID,
		Amount:            s.Amount,
		Currency:          s.Currency,
		Status:            s.Status,
		CheckoutURL:       s.CheckoutURL,
		PaymentIntent:     s.PaymentIntent,
		CreatedAt:         s.CreatedAt,
		ExpiresAt:         s.ExpiresAt,
	}
}

func toDomain(m *Session) *checkoutsvc.Session {
	return &checkoutsvc.Session{
		ID:                m.ID,
		UserID:            m.UserID,
		ClientReferenceID: m.ClientReferenceID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		Status:            m.Status,
		CheckoutURL:       m.CheckoutURL,
		PaymentIntent:     m.PaymentIntent,
		CreatedAt:         m.CreatedAt,
		ExpiresAt:         m.ExpiresAt,
	}
}
