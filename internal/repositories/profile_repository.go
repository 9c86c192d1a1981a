package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type ProfileRepository interface {
	InsertTx(profile *db_models.Profile, ctx context.Context) error
	FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	UpdateNames(ctx context.Context, accountID uuid.UUID, firstName, lastName string) error
	UpdateAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) error
	MarkIntakeCompleted(ctx context.Context, accountID uuid.UUID, at int64) error
	MarkVideoWatched(ctx context.Context, accountID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) InsertTx(profile *db_models.Profile, ctx context.Context) error {
	return p.db.WithContext(ctx).Create(profile).Error
}

func (p *profileRepository) FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) UpdateNames(ctx context.Context, accountID uuid.UUID, firstName, lastName string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{"first_name": firstName, "last_name": lastName}).Error
}

func (p *profileRepository) UpdateAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", accountID).
		Update("avatar_url", avatarURL).Error
}

// MarkIntakeCompleted is a set-once write: a completed intake is never reopened.
func (p *profileRepository) MarkIntakeCompleted(ctx context.Context, accountID uuid.UUID, at int64) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ? AND intake_completed_at IS NULL", accountID).
		Update("intake_completed_at", at).Error
}

func (p *profileRepository) MarkVideoWatched(ctx context.Context, accountID uuid.UUID) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", accountID).
		Update("first_login_video_watched", true).Error
}
