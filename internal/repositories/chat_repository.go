package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type ChatRepository interface {
	InsertTx(message *db_models.ChatMessage, ctx context.Context) error
	// ListRecent returns the newest messages, oldest first. Reads are full
	// re-queries so repeated or out-of-order refresh triggers stay idempotent.
	ListRecent(ctx context.Context, limit int) ([]db_models.ChatMessage, error)
	ListSince(ctx context.Context, since int64, limit int) ([]db_models.ChatMessage, error)
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (c *chatRepository) InsertTx(message *db_models.ChatMessage, ctx context.Context) error {
	return c.db.WithContext(ctx).Create(message).Error
}

func (c *chatRepository) ListRecent(ctx context.Context, limit int) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// reverse to oldest-first for rendering
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (c *chatRepository) ListSince(ctx context.Context, since int64, limit int) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := c.db.WithContext(ctx).
		Where("created_at > ?", since).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *chatRepository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	return c.db.WithContext(ctx).
		Model(&db_models.ChatMessage{}).
		Where("id = ?", id).
		Update("pinned", pinned).Error
}

func (c *chatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Delete(&db_models.ChatMessage{}, "id = ?", id).Error
}
