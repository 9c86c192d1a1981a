package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePlanCheckout godoc
// @Summary Create a checkout session for a plan
// @Description Creates a Stripe Checkout session for the given plan code and returns the payment URL
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreatePlanCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/checkout/plan [post]
func (p *PaymentController) CreatePlanCheckout(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CreatePlanCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.CreatePlanCheckout(c.Request.Context(), accountID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Checkout session created")
}

// CreateMerchCheckout godoc
// @Summary Create a checkout session for merch
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateMerchCheckoutRequest true "Merch checkout payload"
// @Success 200 {object} utils.APIResponse
// @Router /payments/checkout/merch [post]
func (p *PaymentController) CreateMerchCheckout(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CreateMerchCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.CreateMerchCheckout(c.Request.Context(), accountID, req.Items)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Checkout session created")
}

// HandleWebhook receives Stripe webhook events. Signature verification
// and idempotent settlement live in the service.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
