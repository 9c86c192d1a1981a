package db_models

import (
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	Code            string `gorm:"uniqueIndex"` // e.g. "membership", "transformation", "coaching"
	Name            string
	Description     *string
	BackgroundImage string
	Tier            PlanTier `gorm:"type:plan_tier"`
	PriceMinor      int64    // 4999 = $49.99
	Currency        string   `gorm:"size:3"` // "USD"
	// DurationDays > 0 means a fixed-length program (84 for transformation);
	// 0 means open-ended recurring billing.
	DurationDays int32 `gorm:"default:0"`
	IsActive     bool  `gorm:"default:true"`

	StripePriceID string `gorm:"index"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
