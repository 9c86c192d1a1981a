package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type SubscriptionRepository interface {
	InsertTx(sub *db_models.Subscription, ctx context.Context) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error)
	// FindCurrentByAccount returns the newest non-expired-status row for the
	// account, or nil. At most one such row exists in normal operation; the
	// ordering is a guard against historical duplicates.
	FindCurrentByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt int64) error
	MarkExpired(ctx context.Context, providerSubID string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) InsertTx(sub *db_models.Subscription, ctx context.Context) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *subscriptionRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) FindCurrentByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("account_id = ? AND status IN ?", accountID,
			[]db_models.SubscriptionStatus{db_models.SubStatusActive, db_models.SubStatusCancelled}).
		Order("started_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt int64) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       db_models.SubStatusCancelled,
			"cancelled_at": cancelledAt,
		}).Error
}

func (s *subscriptionRepository) MarkExpired(ctx context.Context, providerSubID string) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("provider_sub_id = ?", providerSubID).
		Update("status", db_models.SubStatusExpired).Error
}
