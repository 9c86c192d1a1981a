package checkin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	provideCheckInRepo, provideCheckInService, provideCheckInController)

func provideCheckInRepo(db *gorm.DB) repositories.CheckInRepository {
	return repositories.NewCheckInRepository(db)
}

func provideCheckInService(checkInRepo repositories.CheckInRepository) services.CheckInServiceInterface {
	return services.NewCheckInService(checkInRepo)
}

func provideCheckInController(checkInService services.CheckInServiceInterface) *controllers.CheckInController {
	return controllers.NewCheckInController(checkInService)
}
