package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

// PreviewController exposes the view-as-tier overlay for administrators.
// Every endpoint re-checks the role server side; non-admin calls succeed
// without storing or returning anything.
type PreviewController struct {
	previewService services.PreviewServiceInterface
}

func NewPreviewController(previewService services.PreviewServiceInterface) *PreviewController {
	return &PreviewController{
		previewService: previewService,
	}
}

// Open returns the current preview tier, seeding the default on first
// open for admins.
func (p *PreviewController) Open(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	tier := p.previewService.OpenPreview(c.Request.Context(), accountID)
	utils.RespondSuccess(c, gin.H{"tier": tier}, "Preview state retrieved")
}

// SetTier stores the preview tier for the admin.
func (p *PreviewController) SetTier(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.SetPreviewTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tier := db_models.PlanTier(req.Tier)
	if !tier.Valid() {
		utils.RespondError(c, http.StatusBadRequest, "Unknown plan tier")
		return
	}

	if err := p.previewService.SetPreviewTier(c.Request.Context(), accountID, tier); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"tier": tier}, "Preview tier set")
}

// Exit clears the stored preview so the admin sees their real state again.
func (p *PreviewController) Exit(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	p.previewService.ClearPreviewTier(accountID)
	utils.RespondSuccess(c, nil, "Preview cleared")
}
