package request_models

type CreatePlanCheckoutRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
}

type MerchItem struct {
	Slug     string `json:"slug" binding:"required"`
	Size     string `json:"size"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

type CreateMerchCheckoutRequest struct {
	Items []MerchItem `json:"items" binding:"required,min=1,dive"`
}

type CancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	Reason         string `json:"reason"`
}
