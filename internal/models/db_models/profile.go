package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`

	FirstName string
	LastName  string
	Email     string `gorm:"index"`
	AvatarURL *string

	// Onboarding flags. Both are set once and never cleared.
	IntakeCompletedAt      *int64
	FirstLoginVideoWatched bool `gorm:"default:false"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
