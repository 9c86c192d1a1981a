package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Product is a merch catalog item (shirts, hoodies, wristbands).
type Product struct {
	BaseModel
	Slug        string `gorm:"uniqueIndex"`
	Name        string
	Description *string
	ImageURL    string
	PriceMinor  int64
	Currency    string         `gorm:"size:3"`
	Sizes       pq.StringArray `gorm:"type:text[]"`
	IsActive    bool           `gorm:"default:true"`

	StripePriceID string `gorm:"index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
