package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type AssistantRepository interface {
	InsertTx(message *db_models.AssistantMessage, ctx context.Context) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.AssistantMessage, error)
}

type assistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) AssistantRepository {
	return &assistantRepository{db: db}
}

func (a *assistantRepository) InsertTx(message *db_models.AssistantMessage, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(message).Error
}

func (a *assistantRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.AssistantMessage, error) {
	var messages []db_models.AssistantMessage
	err := a.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
