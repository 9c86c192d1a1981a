package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type IProductRepository interface {
	ListActive(ctx context.Context) ([]db_models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) ListActive(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).
		Where("slug = ? AND is_active = TRUE", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
