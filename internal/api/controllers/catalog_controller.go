package controllers

import (
	"github.com/gin-gonic/gin"

	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListPlans godoc
// @Summary List available membership plans
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (cc *CatalogController) ListPlans(c *gin.Context) {
	plans, err := cc.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// ListProducts godoc
// @Summary List merch products
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (cc *CatalogController) ListProducts(c *gin.Context) {
	products, err := cc.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products retrieved successfully")
}
