package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckIn is a weekly progress report from a member.
type CheckIn struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	WeekNumber int
	Notes      string `gorm:"type:text"`
	WeightKg   *float64

	// Free-form measurements, adherence scores, photo refs.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
