package preview_fx

import (
	"go.uber.org/fx"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
	mem "redeemedstrength/pkg/memcache"
)

var Module = fx.Provide(
	providePreviewService, providePreviewController, provideGuardService)

func providePreviewService(accountRepo repositories.AccountRepository, store mem.PreviewTierStore) services.PreviewServiceInterface {
	return services.NewPreviewService(accountRepo, store)
}

func providePreviewController(previewService services.PreviewServiceInterface) *controllers.PreviewController {
	return controllers.NewPreviewController(previewService)
}

func provideGuardService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	previewService services.PreviewServiceInterface,
) services.GuardServiceInterface {
	return services.NewGuardService(subscriptionRepo, profileRepo, previewService)
}
