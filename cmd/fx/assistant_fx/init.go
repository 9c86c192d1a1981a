package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

var Module = fx.Provide(
	provideAssistantRepo,
	provideCoachingDocRepo,
	provideAssistantService,
	provideAssistantController)

func provideAssistantRepo(db *gorm.DB) repositories.AssistantRepository {
	return repositories.NewAssistantRepository(db)
}

func provideCoachingDocRepo(db *gorm.DB) repositories.ICoachingDocRepository {
	return repositories.NewCoachingDocRepository(db)
}

// provideAssistantService builds the model clients itself: both the primary
// completion client and the embedder come from the same OpenAI client, and
// the fallback is Gemini when a key is configured.
func provideAssistantService(
	assistantRepo repositories.AssistantRepository,
	docRepo repositories.ICoachingDocRepository,
) services.AssistantServiceInterface {
	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Println("OPENAI_API_KEY not set; assistant will be unavailable")
	}

	primary := utils.NewOpenAIClient(openAIKey, os.Getenv("OPENAI_MODEL"))

	var fallback utils.AssistantClientInterface
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		client, err := utils.NewGeminiAssistantClient(geminiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Failed to create Gemini fallback client: %v", err)
		} else {
			fallback = client
		}
	}

	return services.NewAssistantService(assistantRepo, docRepo, primary, primary, fallback)
}

func provideAssistantController(assistantService services.AssistantServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}
