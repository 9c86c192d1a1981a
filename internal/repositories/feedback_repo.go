package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type FeedbackRepository interface {
	InsertTx(feedback *db_models.Feedback, ctx context.Context) error
	ListPublished(ctx context.Context, limit int) ([]db_models.Feedback, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (f *feedbackRepository) InsertTx(feedback *db_models.Feedback, ctx context.Context) error {
	return f.db.WithContext(ctx).Create(feedback).Error
}

func (f *feedbackRepository) ListPublished(ctx context.Context, limit int) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := f.db.WithContext(ctx).
		Where("published = TRUE").
		Order("created_at DESC").
		Limit(limit).
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (f *feedbackRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	return f.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("id = ?", id).
		Update("published", published).Error
}
