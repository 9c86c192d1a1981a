package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// Submit godoc
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) Submit(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.feedbackService.SubmitFeedback(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback submitted")
}

// ListTestimonials godoc
// @Summary List published testimonials
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /testimonials [get]
func (f *FeedbackController) ListTestimonials(c *gin.Context) {
	testimonials, err := f.feedbackService.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, testimonials, "Testimonials retrieved successfully")
}

// Publish toggles the published flag on a feedback entry. Admin only.
func (f *FeedbackController) Publish(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback id")
		return
	}

	published := c.Query("published") != "false"

	if err := f.feedbackService.PublishFeedback(c.Request.Context(), feedbackID, published); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback publish state updated")
}
