package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideDashboardController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, planRepo repositories.IPlanRepository) services.DashboardService {
	return services.NewDashboardService(repo, planRepo)
}

func provideDashboardController(dashboardService services.DashboardService) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
