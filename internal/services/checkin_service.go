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

type CheckInServiceInterface interface {
	SubmitCheckIn(ctx context.Context, accountID uuid.UUID, request request_models.CheckInRequest) error
	ListMyCheckIns(ctx context.Context, accountID uuid.UUID) ([]response_models.CheckInResponse, error)
	RecentCheckIns(ctx context.Context, limit int) ([]response_models.CheckInResponse, error)
}

type CheckInService struct {
	checkInRepo repositories.CheckInRepository
}

func NewCheckInService(checkInRepo repositories.CheckInRepository) CheckInServiceInterface {
	return &CheckInService{checkInRepo: checkInRepo}
}

func (c *CheckInService) SubmitCheckIn(ctx context.Context, accountID uuid.UUID, request request_models.CheckInRequest) error {
	if request.WeekNumber < 1 {
		return utils.ErrInvalidInput
	}
	checkIn := &db_models.CheckIn{
		AccountID:  accountID,
		WeekNumber: request.WeekNumber,
		Notes:      request.Notes,
		WeightKg:   request.WeightKg,
	}
	if err := c.checkInRepo.InsertTx(checkIn, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CheckInService) ListMyCheckIns(ctx context.Context, accountID uuid.UUID) ([]response_models.CheckInResponse, error) {
	checkIns, err := c.checkInRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCheckInResponses(checkIns), nil
}

func (c *CheckInService) RecentCheckIns(ctx context.Context, limit int) ([]response_models.CheckInResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	checkIns, err := c.checkInRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCheckInResponses(checkIns), nil
}

func toCheckInResponses(checkIns []db_models.CheckIn) []response_models.CheckInResponse {
	out := make([]response_models.CheckInResponse, 0, len(checkIns))
	for _, ci := range checkIns {
		out = append(out, response_models.CheckInResponse{
			ID:         ci.ID.String(),
			AccountID:  ci.AccountID.String(),
			WeekNumber: ci.WeekNumber,
			Notes:      ci.Notes,
			WeightKg:   ci.WeightKg,
			PostedAt:   ci.CreatedAt,
		})
	}
	return out
}
