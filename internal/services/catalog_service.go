package services

import (
	"context"

	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

// CatalogServiceInterface serves the public plan and merch listings.
type CatalogServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetPlanByCode(ctx context.Context, code string) (*response_models.PlanResponse, error)
	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
}

type CatalogService struct {
	planRepo    repositories.IPlanRepository
	productRepo repositories.IProductRepository
}

func NewCatalogService(planRepo repositories.IPlanRepository, productRepo repositories.IProductRepository) CatalogServiceInterface {
	return &CatalogService{
		planRepo:    planRepo,
		productRepo: productRepo,
	}
}

func (c *CatalogService) ListPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := c.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.PlanResponse{
			ID:              plan.ID,
			Code:            plan.Code,
			Name:            plan.Name,
			Description:     plan.Description,
			BackgroundImage: plan.BackgroundImage,
			Tier:            string(plan.Tier),
			PriceMinor:      plan.PriceMinor,
			Currency:        plan.Currency,
			DurationDays:    plan.DurationDays,
			IsActive:        plan.IsActive,
		})
	}
	return out, nil
}

func (c *CatalogService) GetPlanByCode(ctx context.Context, code string) (*response_models.PlanResponse, error) {
	plan, err := c.planRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return &response_models.PlanResponse{
		ID:              plan.ID,
		Code:            plan.Code,
		Name:            plan.Name,
		Description:     plan.Description,
		BackgroundImage: plan.BackgroundImage,
		Tier:            string(plan.Tier),
		PriceMinor:      plan.PriceMinor,
		Currency:        plan.Currency,
		DurationDays:    plan.DurationDays,
		IsActive:        plan.IsActive,
	}, nil
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := c.productRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, response_models.ProductResponse{
			Slug:        product.Slug,
			Name:        product.Name,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			PriceMinor:  product.PriceMinor,
			Currency:    product.Currency,
			Sizes:       product.Sizes,
		})
	}
	return out, nil
}
