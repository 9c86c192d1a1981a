package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// ListMessages godoc
// @Summary List community chat messages
// @Description Returns the recent message window, oldest first. Pass ?since=<unix> to fetch only newer messages.
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param since query int false "Unix timestamp lower bound"
// @Success 200 {object} utils.APIResponse
// @Router /chat/messages [get]
func (ct *ChatController) ListMessages(c *gin.Context) {
	since, _ := strconv.ParseInt(c.Query("since"), 10, 64)

	messages, err := ct.chatService.ListMessages(c.Request.Context(), since)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages retrieved successfully")
}

// PostMessage godoc
// @Summary Post a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.PostMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Router /chat/messages [post]
func (ct *ChatController) PostMessage(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.chatService.PostMessage(c.Request.Context(), accountID, req.Body); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message posted")
}

// PinMessage toggles the pinned flag on a message. Admin only.
func (ct *ChatController) PinMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	pinned := c.Query("pinned") != "false"

	if err := ct.chatService.PinMessage(c.Request.Context(), messageID, pinned); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message pin state updated")
}

// DeleteMessage removes a message. Admin only.
func (ct *ChatController) DeleteMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := ct.chatService.DeleteMessage(c.Request.Context(), messageID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message deleted")
}
