package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/cmd/fx/account_fx"
	"redeemedstrength/cmd/fx/assistant_fx"
	"redeemedstrength/cmd/fx/catalog_fx"
	"redeemedstrength/cmd/fx/chat_fx"
	"redeemedstrength/cmd/fx/checkin_fx"
	"redeemedstrength/cmd/fx/dashboard_fx"
	"redeemedstrength/cmd/fx/db_fx"
	"redeemedstrength/cmd/fx/feedback_fx"
	"redeemedstrength/cmd/fx/mail_fx"
	"redeemedstrength/cmd/fx/memcache_fx"
	"redeemedstrength/cmd/fx/payment_fx"
	"redeemedstrength/cmd/fx/preview_fx"
	"redeemedstrength/cmd/fx/profile_fx"
	"redeemedstrength/cmd/fx/subscription_fx"
	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/infra"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		preview_fx.Module,
		subscription_fx.Module,
		payment_fx.Module,
		catalog_fx.Module,
		chat_fx.Module,
		assistant_fx.Module,
		checkin_fx.Module,
		feedback_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

type routerDeps struct {
	fx.In

	AccountController      *controllers.AccountController
	ProfileController      *controllers.ProfileController
	SubscriptionController *controllers.SubscriptionController
	PaymentController      *controllers.PaymentController
	PreviewController      *controllers.PreviewController
	CatalogController      *controllers.CatalogController
	ChatController         *controllers.ChatController
	AssistantController    *controllers.AssistantController
	CheckInController      *controllers.CheckInController
	FeedbackController     *controllers.FeedbackController
	DashboardController    *controllers.DashboardController

	GuardService   services.GuardServiceInterface
	AccountService services.AccountServiceInterface
}

func ProvideRouter(deps routerDeps) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps routerDeps) {

	// Public surface: auth, catalog, testimonials and the Stripe webhook.
	accounts := r.Group("/accounts")
	accounts.POST("/register", deps.AccountController.Register)
	accounts.POST("/login", deps.AccountController.Login)
	accounts.POST("/forgot-password", deps.AccountController.ForgotPassword)
	accounts.POST("/reset-password", deps.AccountController.ResetPassword)

	r.GET("/plans", deps.CatalogController.ListPlans)
	r.GET("/products", deps.CatalogController.ListProducts)
	r.GET("/testimonials", deps.FeedbackController.ListTestimonials)
	r.POST("/webhooks/stripe", deps.PaymentController.HandleWebhook)

	// Authenticated but not access gated: billing and profile stay reachable
	// so a lapsed member can renew or cancel.
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/profiles/me", deps.ProfileController.GetMe)
	authed.PUT("/profiles/me", deps.ProfileController.UpdateMe)
	authed.GET("/subscriptions/current", deps.SubscriptionController.GetCurrent)
	authed.POST("/subscriptions/cancel", deps.SubscriptionController.Cancel)
	authed.POST("/subscriptions/verify", deps.SubscriptionController.Verify)
	authed.POST("/payments/checkout/plan", deps.PaymentController.CreatePlanCheckout)
	authed.POST("/payments/checkout/merch", deps.PaymentController.CreateMerchCheckout)

	// Onboarding flow: fresh signups get the provisioning grace window here
	// instead of an immediate access-expired redirect.
	onboarding := r.Group("/onboarding")
	onboarding.Use(middleware.JWTAuthMiddleware())
	onboarding.Use(middleware.AccessGuard(deps.GuardService, deps.AccountService, middleware.GuardOptions{Onboarding: true}))
	onboarding.POST("/intake", deps.ProfileController.CompleteIntake)
	onboarding.POST("/video-watched", deps.ProfileController.MarkVideoWatched)

	// Members area: requires access plus a completed intake.
	members := r.Group("/members")
	members.Use(middleware.JWTAuthMiddleware())
	members.Use(middleware.AccessGuard(deps.GuardService, deps.AccountService, middleware.GuardOptions{RequireIntake: true}))
	members.GET("/chat/messages", deps.ChatController.ListMessages)
	members.POST("/chat/messages", deps.ChatController.PostMessage)
	members.POST("/assistant/ask", deps.AssistantController.Ask)
	members.GET("/assistant/history", deps.AssistantController.History)
	members.POST("/check-ins", deps.CheckInController.Submit)
	members.GET("/check-ins/mine", deps.CheckInController.ListMine)
	members.POST("/feedback", deps.FeedbackController.Submit)

	// Admin surface, including the view-as-tier preview controls.
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.AccessGuard(deps.GuardService, deps.AccountService, middleware.GuardOptions{RequireAdmin: true}))
	admin.GET("/dashboard", deps.DashboardController.GetReport)
	admin.GET("/check-ins", deps.CheckInController.ListRecent)
	admin.PUT("/chat/messages/:id/pin", deps.ChatController.PinMessage)
	admin.DELETE("/chat/messages/:id", deps.ChatController.DeleteMessage)
	admin.PUT("/feedback/:id/publish", deps.FeedbackController.Publish)
	admin.POST("/assistant/docs", deps.AssistantController.IndexDoc)
	admin.GET("/preview", deps.PreviewController.Open)
	admin.PUT("/preview", deps.PreviewController.SetTier)
	admin.DELETE("/preview", deps.PreviewController.Exit)
}
