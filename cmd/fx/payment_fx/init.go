package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo,
	provideBillingClient,
	providePaymentService,
	providePaymentController,
)

func stripeConfig() services.StripeConfig {
	return services.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SuccessURL:    os.Getenv("STRIPE_SUCCESS_URL"),
		CancelURL:     os.Getenv("STRIPE_CANCEL_URL"),
		ProviderName:  "stripe",
	}
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideBillingClient() services.BillingClient {
	return services.NewStripeBillingClient(os.Getenv("STRIPE_SECRET_KEY"))
}

func providePaymentService(
	planRepo repositories.IPlanRepository,
	productRepo repositories.IProductRepository,
	txnRepo repositories.TransactionRepository,
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	subscriptionSvc services.SubscriptionServiceInterface,
	mailService services.IMailService,
) services.PaymentService {
	instance, err := services.NewPaymentService(
		planRepo, productRepo, txnRepo, accountRepo, subscriptionRepo, subscriptionSvc, mailService, stripeConfig())
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
	}

	return instance
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
