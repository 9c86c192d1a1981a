package services

import (
	"context"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) error
	CompleteIntake(ctx context.Context, accountID uuid.UUID) error
	MarkVideoWatched(ctx context.Context, accountID uuid.UUID) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (p *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.RecordNotFound
	}

	return &response_models.ProfileResponse{
		AccountID:              profile.AccountID.String(),
		FirstName:              profile.FirstName,
		LastName:               profile.LastName,
		Email:                  profile.Email,
		AvatarURL:              profile.AvatarURL,
		IntakeCompletedAt:      profile.IntakeCompletedAt,
		FirstLoginVideoWatched: profile.FirstLoginVideoWatched,
	}, nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) error {
	if request.FirstName != "" || request.LastName != "" {
		if err := p.profileRepo.UpdateNames(ctx, accountID, request.FirstName, request.LastName); err != nil {
			return utils.ErrDatabaseError
		}
	}
	if request.AvatarURL != "" {
		if err := p.profileRepo.UpdateAvatar(ctx, accountID, request.AvatarURL); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (p *ProfileService) CompleteIntake(ctx context.Context, accountID uuid.UUID) error {
	if err := p.profileRepo.MarkIntakeCompleted(ctx, accountID, utils.NowUnixSeconds()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProfileService) MarkVideoWatched(ctx context.Context, accountID uuid.UUID) error {
	if err := p.profileRepo.MarkVideoWatched(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
