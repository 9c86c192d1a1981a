package response_models

import "github.com/google/uuid"

// SubscriptionView is the effective-subscription snapshot the UI acts on.
// Preview is true when an admin preview overlay produced it; such a view is
// never billing-grade data.
type SubscriptionView struct {
	SubscriptionID string `json:"subscription_id,omitempty"`
	PlanTier       string `json:"plan_tier,omitempty"`
	Status         string `json:"status,omitempty"`
	StartedAt      int64  `json:"started_at,omitempty"`
	ExpiresAt      *int64 `json:"expires_at,omitempty"`
	HasAccess      bool   `json:"has_access"`
	DaysRemaining  *int   `json:"days_remaining"`
	Preview        bool   `json:"preview"`
}

type PlanResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	BackgroundImage string    `json:"background_image,omitempty"`
	Tier            string    `json:"tier"`
	PriceMinor      int64     `json:"price_minor"`
	Currency        string    `json:"currency"`
	DurationDays    int32     `json:"duration_days"`
	IsActive        bool      `json:"is_active"`
}

type ProductResponse struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ImageURL    string   `json:"image_url"`
	PriceMinor  int64    `json:"price_minor"`
	Currency    string   `json:"currency"`
	Sizes       []string `json:"sizes"`
}

type CreateCheckoutResponse struct {
	SessionID    string `json:"session_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider_name"`
}
