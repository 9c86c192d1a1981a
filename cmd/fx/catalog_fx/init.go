package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, provideProductRepo, provideCatalogService, provideCatalogController)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCatalogService(planRepo repositories.IPlanRepository, productRepo repositories.IProductRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(planRepo, productRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
