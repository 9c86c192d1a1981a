package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/pkg/memcache"
)

func adminAccountRepo(adminID uuid.UUID) *fakeAccountRepo {
	return &fakeAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			if id == adminID.String() {
				return &db_models.Account{Role: db_models.RoleAdmin}, nil
			}
			return &db_models.Account{Role: db_models.RoleMember}, nil
		},
	}
}

func TestPreviewService_SetAndGetForAdmin(t *testing.T) {
	adminID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	require.NoError(t, svc.SetPreviewTier(context.Background(), adminID, db_models.TierTransformation))

	tier := svc.GetPreviewTier(context.Background(), adminID)
	require.NotNil(t, tier)
	assert.Equal(t, db_models.TierTransformation, *tier)
}

func TestPreviewService_NonAdminSetIsSilentNoOp(t *testing.T) {
	adminID := uuid.New()
	memberID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	require.NoError(t, svc.SetPreviewTier(context.Background(), memberID, db_models.TierCoaching))

	assert.Nil(t, svc.GetPreviewTier(context.Background(), memberID))
}

func TestPreviewService_InvalidTierIgnored(t *testing.T) {
	adminID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	require.NoError(t, svc.SetPreviewTier(context.Background(), adminID, db_models.PlanTier("vip")))

	assert.Nil(t, svc.GetPreviewTier(context.Background(), adminID))
}

func TestPreviewService_RoleCheckErrorFailsClosed(t *testing.T) {
	adminID := uuid.New()
	store := memcache.NewPreviewTiers()
	svc := NewPreviewService(adminAccountRepo(adminID), store)

	require.NoError(t, svc.SetPreviewTier(context.Background(), adminID, db_models.TierCoaching))

	// Role lookup starts failing: stored tier must be dropped, not served.
	failing := NewPreviewService(&fakeAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return nil, errors.New("db down")
		},
	}, store)

	assert.Nil(t, failing.GetPreviewTier(context.Background(), adminID))

	// Cleared for good: a recovered lookup no longer sees it either.
	assert.Nil(t, svc.GetPreviewTier(context.Background(), adminID))
}

func TestPreviewService_OpenSeedsDefaultTier(t *testing.T) {
	adminID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	tier := svc.OpenPreview(context.Background(), adminID)
	require.NotNil(t, tier)
	assert.Equal(t, DefaultPreviewTier, *tier)

	// Subsequent opens keep an explicit choice instead of reseeding.
	require.NoError(t, svc.SetPreviewTier(context.Background(), adminID, db_models.TierMembership))
	tier = svc.OpenPreview(context.Background(), adminID)
	require.NotNil(t, tier)
	assert.Equal(t, db_models.TierMembership, *tier)
}

func TestPreviewService_OpenForNonAdminReturnsNil(t *testing.T) {
	adminID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	assert.Nil(t, svc.OpenPreview(context.Background(), uuid.New()))
}

func TestPreviewService_ClearRemovesStoredTier(t *testing.T) {
	adminID := uuid.New()
	svc := NewPreviewService(adminAccountRepo(adminID), memcache.NewPreviewTiers())

	require.NoError(t, svc.SetPreviewTier(context.Background(), adminID, db_models.TierCoaching))
	svc.ClearPreviewTier(adminID)

	assert.Nil(t, svc.GetPreviewTier(context.Background(), adminID))
}
