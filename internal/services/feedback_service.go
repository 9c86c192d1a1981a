package services

import (
	"context"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, accountID uuid.UUID, request request_models.FeedbackRequest) error
	ListTestimonials(ctx context.Context) ([]response_models.FeedbackResponse, error)
	PublishFeedback(ctx context.Context, feedbackID uuid.UUID, published bool) error
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (f *FeedbackService) SubmitFeedback(ctx context.Context, accountID uuid.UUID, request request_models.FeedbackRequest) error {
	if request.Rating < 1 || request.Rating > 5 || request.Comment == "" {
		return utils.ErrInvalidInput
	}
	feedback := &db_models.Feedback{
		AccountID: accountID,
		Comment:   request.Comment,
		Rating:    request.Rating,
	}
	if err := f.feedbackRepo.InsertTx(feedback, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FeedbackService) ListTestimonials(ctx context.Context) ([]response_models.FeedbackResponse, error) {
	feedbacks, err := f.feedbackRepo.ListPublished(ctx, 50)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		out = append(out, response_models.FeedbackResponse{
			ID:       fb.ID.String(),
			Comment:  fb.Comment,
			Rating:   fb.Rating,
			PostedAt: fb.CreatedAt,
		})
	}
	return out, nil
}

func (f *FeedbackService) PublishFeedback(ctx context.Context, feedbackID uuid.UUID, published bool) error {
	if err := f.feedbackRepo.SetPublished(ctx, feedbackID, published); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
