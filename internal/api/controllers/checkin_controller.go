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

type CheckInController struct {
	checkInService services.CheckInServiceInterface
}

func NewCheckInController(checkInService services.CheckInServiceInterface) *CheckInController {
	return &CheckInController{
		checkInService: checkInService,
	}
}

// Submit godoc
// @Summary Submit a weekly check-in
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CheckInRequest true "Check-in payload"
// @Success 200 {object} utils.APIResponse
// @Router /check-ins [post]
func (ci *CheckInController) Submit(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ci.checkInService.SubmitCheckIn(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Check-in submitted")
}

// ListMine godoc
// @Summary List the current member's check-ins
// @Tags CheckIns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /check-ins/mine [get]
func (ci *CheckInController) ListMine(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	checkIns, err := ci.checkInService.ListMyCheckIns(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Check-ins retrieved successfully")
}

// ListRecent returns the latest check-ins across all members. Admin only.
func (ci *CheckInController) ListRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	checkIns, err := ci.checkInService.RecentCheckIns(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Check-ins retrieved successfully")
}
