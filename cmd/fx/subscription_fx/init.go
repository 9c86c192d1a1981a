package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	previewService services.PreviewServiceInterface,
	billing services.BillingClient,
	mailService services.IMailService,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, profileRepo, previewService, billing, mailService)
}

func provideSubscriptionController(
	subscriptionService services.SubscriptionServiceInterface,
	accountService services.AccountServiceInterface,
	guardService services.GuardServiceInterface,
) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService, accountService, guardService)
}
