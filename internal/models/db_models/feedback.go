package db_models

import "github.com/google/uuid"

// Feedback is a member review of their program, surfaced as testimonials.
type Feedback struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Published bool      `gorm:"default:false"`

	Account Account `gorm:"foreignKey:AccountID"`
}
