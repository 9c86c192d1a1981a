package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
	accountService      services.AccountServiceInterface
	guardService        services.GuardServiceInterface
}

func NewSubscriptionController(
	subscriptionService services.SubscriptionServiceInterface,
	accountService services.AccountServiceInterface,
	guardService services.GuardServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		accountService:      accountService,
		guardService:        guardService,
	}
}

// GetCurrent godoc
// @Summary Get the current member's subscription
// @Description Returns the effective subscription, with the admin preview overlay applied when one is set
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/current [get]
func (s *SubscriptionController) GetCurrent(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	isAdmin, err := s.accountService.IsAdmin(c.Request.Context(), accountID)
	if err != nil {
		isAdmin = false
	}

	view, err := s.subscriptionService.GetCurrent(c.Request.Context(), accountID, isAdmin)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Subscription retrieved successfully")
}

// Cancel godoc
// @Summary Cancel the current member's subscription
// @Description Requests cancel-at-period-end with the payment provider; access lasts until the paid period lapses
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CancelSubscriptionRequest true "Cancellation payload"
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/cancel [post]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	subscriptionID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription id")
		return
	}

	if err := s.subscriptionService.Cancel(c.Request.Context(), accountID, subscriptionID, req.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription cancellation requested")
}

// Verify godoc
// @Summary Verify a fresh signup's subscription
// @Description Polls the subscription store until the freshly provisioned subscription grants access, with bounded backoff
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/verify [post]
func (s *SubscriptionController) Verify(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	verified := s.guardService.VerifySignupAccess(c.Request.Context(), accountID)
	utils.RespondSuccess(c, gin.H{"verified": verified}, "Subscription verification finished")
}
