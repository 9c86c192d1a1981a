package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type CheckInRepository interface {
	InsertTx(checkIn *db_models.CheckIn, ctx context.Context) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CheckIn, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (c *checkInRepository) InsertTx(checkIn *db_models.CheckIn, ctx context.Context) error {
	return c.db.WithContext(ctx).Create(checkIn).Error
}

func (c *checkInRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	err := c.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("week_number DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (c *checkInRepository) ListRecent(ctx context.Context, limit int) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}
