package db_models

import "github.com/google/uuid"

type AssistantRole string

const (
	AssistantRoleUser      AssistantRole = "user"
	AssistantRoleAssistant AssistantRole = "assistant"
)

// AssistantMessage persists the sales/coaching assistant transcript per account.
type AssistantMessage struct {
	BaseModel
	AccountID uuid.UUID     `gorm:"index"`
	Role      AssistantRole `gorm:"size:16"`
	Content   string        `gorm:"type:text"`

	Account Account `gorm:"foreignKey:AccountID"`
}
