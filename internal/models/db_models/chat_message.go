package db_models

import "github.com/google/uuid"

// ChatMessage is a post in the community feed ("The Yard").
type ChatMessage struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Body      string    `gorm:"type:text;not null"`
	Pinned    bool      `gorm:"default:false"`

	Account Account `gorm:"foreignKey:AccountID"`
}
