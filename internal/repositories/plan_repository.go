package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type IPlanRepository interface {
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	FindByCode(ctx context.Context, code string) (*db_models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *planRepository) FindByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).
		Where("code = ? AND is_active = TRUE", code).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
