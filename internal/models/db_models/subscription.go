package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlanTier string

const (
	TierMembership     PlanTier = "membership"
	TierTransformation PlanTier = "transformation"
	TierCoaching       PlanTier = "coaching"
)

func (t PlanTier) Valid() bool {
	switch t {
	case TierMembership, TierTransformation, TierCoaching:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`

	PlanTier PlanTier           `gorm:"type:plan_tier;index"`
	Status   SubscriptionStatus `gorm:"type:subscription_status;index"`

	StartedAt int64 `gorm:"not null"`
	// Populated only for the fixed-duration transformation tier.
	// Membership and coaching run open-ended.
	ExpiresAt   *int64
	CancelledAt *int64

	Provider           string `gorm:"index"` // "stripe"
	ProviderCustomerID string `gorm:"index"`
	ProviderSubID      string `gorm:"index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
