package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redeemedstrength/internal/models/db_models"
)

func TestResolveAccess_NilSubscription(t *testing.T) {
	decision := ResolveAccess(nil, time.Now())

	assert.False(t, decision.HasAccess)
	assert.Nil(t, decision.DaysRemaining)
}

func TestResolveAccess_MembershipJudgedOnStatusOnly(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -10).Unix()

	// An expires_at in the past must not matter for status-based tiers.
	sub := &db_models.Subscription{
		PlanTier:  db_models.TierMembership,
		Status:    db_models.SubStatusActive,
		ExpiresAt: &past,
	}
	decision := ResolveAccess(sub, now)
	assert.True(t, decision.HasAccess)
	assert.Nil(t, decision.DaysRemaining)

	sub.Status = db_models.SubStatusCancelled
	assert.False(t, ResolveAccess(sub, now).HasAccess)

	sub.Status = db_models.SubStatusExpired
	assert.False(t, ResolveAccess(sub, now).HasAccess)
}

func TestResolveAccess_CoachingJudgedOnStatusOnly(t *testing.T) {
	now := time.Now()
	sub := &db_models.Subscription{
		PlanTier: db_models.TierCoaching,
		Status:   db_models.SubStatusActive,
	}

	assert.True(t, ResolveAccess(sub, now).HasAccess)

	sub.Status = db_models.SubStatusCancelled
	assert.False(t, ResolveAccess(sub, now).HasAccess)
}

func TestResolveAccess_TransformationJudgedOnExpiryOnly(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 30).Unix()

	// A cancelled transformation keeps access until expiry.
	sub := &db_models.Subscription{
		PlanTier:  db_models.TierTransformation,
		Status:    db_models.SubStatusCancelled,
		ExpiresAt: &future,
	}
	decision := ResolveAccess(sub, now)
	assert.True(t, decision.HasAccess)
	require.NotNil(t, decision.DaysRemaining)
	assert.Equal(t, 30, *decision.DaysRemaining)
}

func TestResolveAccess_TransformationExpiryBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	// Exactly now is no longer access: the comparison is strictly after.
	at := now.Unix()
	sub := &db_models.Subscription{
		PlanTier:  db_models.TierTransformation,
		Status:    db_models.SubStatusActive,
		ExpiresAt: &at,
	}
	decision := ResolveAccess(sub, now)
	assert.False(t, decision.HasAccess)
	require.NotNil(t, decision.DaysRemaining)
	assert.Equal(t, 0, *decision.DaysRemaining)

	// One second later still counts as a day remaining.
	later := now.Add(time.Second).Unix()
	sub.ExpiresAt = &later
	decision = ResolveAccess(sub, now)
	assert.True(t, decision.HasAccess)
	require.NotNil(t, decision.DaysRemaining)
	assert.Equal(t, 1, *decision.DaysRemaining)
}

func TestResolveAccess_TransformationMissingExpiryIsMalformed(t *testing.T) {
	sub := &db_models.Subscription{
		PlanTier: db_models.TierTransformation,
		Status:   db_models.SubStatusActive,
	}

	decision := ResolveAccess(sub, time.Now())
	assert.False(t, decision.HasAccess)
	assert.Nil(t, decision.DaysRemaining)
}

func TestResolveAccess_TransformationExpiredDaysFlooredAtZero(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -5).Unix()
	sub := &db_models.Subscription{
		PlanTier:  db_models.TierTransformation,
		Status:    db_models.SubStatusActive,
		ExpiresAt: &past,
	}

	decision := ResolveAccess(sub, now)
	assert.False(t, decision.HasAccess)
	require.NotNil(t, decision.DaysRemaining)
	assert.Equal(t, 0, *decision.DaysRemaining)
}

func TestDaysUntil_CeilsPartialDays(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	assert.Equal(t, 1, daysUntil(now, now.Add(1*time.Hour)))
	assert.Equal(t, 1, daysUntil(now, now.Add(24*time.Hour)))
	assert.Equal(t, 2, daysUntil(now, now.Add(25*time.Hour)))
	assert.Equal(t, 0, daysUntil(now, now))
	assert.Equal(t, 0, daysUntil(now, now.Add(-time.Hour)))
}

func TestResolveEffective_PreviewWinsForAdmins(t *testing.T) {
	now := time.Now()
	real := &db_models.Subscription{
		PlanTier: db_models.TierMembership,
		Status:   db_models.SubStatusExpired,
	}
	tier := db_models.TierCoaching

	effective := ResolveEffective(real, &tier, true, now)

	assert.True(t, effective.IsPreview())
	require.NotNil(t, effective.Sub)
	assert.Equal(t, db_models.TierCoaching, effective.Sub.PlanTier)
	assert.Equal(t, db_models.SubStatusActive, effective.Sub.Status)
}

func TestResolveEffective_NonAdminNeverGetsPreview(t *testing.T) {
	now := time.Now()
	real := &db_models.Subscription{
		PlanTier: db_models.TierMembership,
		Status:   db_models.SubStatusActive,
	}
	tier := db_models.TierCoaching

	effective := ResolveEffective(real, &tier, false, now)

	assert.False(t, effective.IsPreview())
	assert.Same(t, real, effective.Sub)
}

func TestResolveEffective_NoPreviewFallsThroughToReal(t *testing.T) {
	effective := ResolveEffective(nil, nil, true, time.Now())

	assert.False(t, effective.IsPreview())
	assert.Nil(t, effective.Sub)
}

func TestResolveEffective_InvalidPreviewTierIgnored(t *testing.T) {
	bogus := db_models.PlanTier("platinum")

	effective := ResolveEffective(nil, &bogus, true, time.Now())

	assert.False(t, effective.IsPreview())
}

func TestSyntheticSubscription_TransformationGetsPreviewHorizon(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	sub := syntheticSubscription(db_models.TierTransformation, now)

	require.NotNil(t, sub.ExpiresAt)
	assert.Equal(t, now.AddDate(0, 0, PreviewHorizonDays).Unix(), *sub.ExpiresAt)

	decision := ResolveAccess(sub, now)
	assert.True(t, decision.HasAccess)
	require.NotNil(t, decision.DaysRemaining)
	assert.Equal(t, PreviewHorizonDays, *decision.DaysRemaining)
}

func TestSyntheticSubscription_StatusTiersHaveNoExpiry(t *testing.T) {
	sub := syntheticSubscription(db_models.TierCoaching, time.Now())

	assert.Nil(t, sub.ExpiresAt)
	assert.True(t, ResolveAccess(sub, time.Now()).HasAccess)
}
