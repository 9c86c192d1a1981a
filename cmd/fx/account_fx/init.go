package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
	mem "redeemedstrength/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, subscriptionRepo, mailService, resetTokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
