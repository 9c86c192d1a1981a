package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"redeemedstrength/internal/api/controllers"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/internal/services"
)

var Module = fx.Provide(
	provideChatRepo, provideChatService, provideChatController)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository, profileRepo repositories.ProfileRepository) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, profileRepo)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
