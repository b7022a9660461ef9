package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/domain"
	"gorm.io/gorm"
)

// Repository implements checkout.Repository on top of gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, session *checkoutsvc.Session) error {
	if err := r.db.WithContext(ctx).Create(toModel(session)).Error; err != nil {
		return fmt.Errorf("failed to create checkout session record: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*checkoutsvc.Session, error) {
	var model Session
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}
	return toDomain(&model), nil
}

func (r *Repository) ListPendingByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*checkoutsvc.Session, error) {
	var models []Session
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, checkoutsvc.StatusPending).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending checkout sessions: %w", err)
	}

	sessions := make([]*checkoutsvc.Session, 0, len(models))
	for i := range models {
		sessions = append(sessions, toDomain(&models[i]))
	}
	return sessions, nil
}

// UpdateStatus applies a transition out of pending. Sessions already
// completed or expired stay untouched; provider webhooks are retried
// and can arrive duplicated or out of order.
func (r *Repository) UpdateStatus(ctx context.Context, id, status, paymentIntent string) error {
	updates := map[string]any{"status": status}
	if paymentIntent != "" {
		updates["payment_intent"] = paymentIntent
	}

	result := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ? AND status = ?", id, checkoutsvc.StatusPending).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update checkout session status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var model Session
		err := r.db.WithContext(ctx).Select("status").First(&model, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load checkout session: %w", err)
		}
		return domain.ErrSessionAlreadyFinalized
	}
	return nil
}

var _ checkoutsvc.Repository = (*Repository)(nil)
