package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask godoc
// @Summary Ask the coaching assistant a question
// @Description Answers with retrieval over the coaching knowledge base; falls back to a secondary model when the primary is unavailable
// @Tags Assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AskAssistantRequest true "Question payload"
// @Success 200 {object} utils.APIResponse
// @Router /assistant/ask [post]
func (a *AssistantController) Ask(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.AskAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := a.assistantService.Ask(c.Request.Context(), accountID, req.Question)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Assistant replied")
}

// History godoc
// @Summary Get the member's assistant conversation history
// @Tags Assistant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /assistant/history [get]
func (a *AssistantController) History(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	history, err := a.assistantService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "History retrieved successfully")
}

// IndexDoc ingests a coaching document into the retrieval index. Admin only.
func (a *AssistantController) IndexDoc(c *gin.Context) {
	var req request_models.IndexDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.assistantService.IndexDoc(c.Request.Context(), req.DocID, req.Title, req.Content, req.Tags); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Document indexed")
}
