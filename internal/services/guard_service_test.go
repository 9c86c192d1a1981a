package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/pkg/utils"
)

func TestEvaluateGuard_LoadingShortCircuits(t *testing.T) {
	decision := EvaluateGuard(GuardInput{Loading: true, Authenticated: true, HasAccess: true})

	assert.Equal(t, GuardLoading, decision.Action)
}

func TestEvaluateGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	decision := EvaluateGuard(GuardInput{Path: "/members/chat"})

	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/login?next=%2Fmembers%2Fchat", decision.RedirectTo)
}

func TestEvaluateGuard_IdentityMismatchTreatedAsLoggedOut(t *testing.T) {
	// Another account signed in from a different tab: current session is stale.
	decision := EvaluateGuard(GuardInput{
		Authenticated:    true,
		IdentityID:       "a",
		ActiveIdentityID: "b",
		HasAccess:        true,
	})

	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/login", decision.RedirectTo)
}

func TestEvaluateGuard_MatchingActiveIdentityPasses(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated:    true,
		IdentityID:       "a",
		ActiveIdentityID: "a",
		HasAccess:        true,
	})

	assert.Equal(t, GuardAllow, decision.Action)
}

func TestEvaluateGuard_NonAdminOnAdminRoute(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated: true,
		RequireAdmin:  true,
		HasAccess:     true,
	})

	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.RedirectTo)
}

func TestEvaluateGuard_AdminBypassesAccessAndIntake(t *testing.T) {
	// No subscription, no intake, no video: admin routes still open.
	decision := EvaluateGuard(GuardInput{
		Authenticated: true,
		IsAdmin:       true,
		RequireAdmin:  true,
	})

	assert.Equal(t, GuardAllow, decision.Action)
}

func TestEvaluateGuard_NoAccessRedirectsToAccessExpired(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated: true,
		RequireIntake: true,
	})

	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/access-expired", decision.RedirectTo)
}

func TestEvaluateGuard_FreshSignupOnOnboardingGetsVerifying(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated:   true,
		OnboardingRoute: true,
		FreshSignup:     true,
	})

	assert.Equal(t, GuardVerifying, decision.Action)
}

func TestEvaluateGuard_FreshSignupOffOnboardingStillRedirects(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated: true,
		FreshSignup:   true,
	})

	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/access-expired", decision.RedirectTo)
}

func TestEvaluateGuard_IntakeBeforeVideo(t *testing.T) {
	in := GuardInput{
		Authenticated: true,
		HasAccess:     true,
		RequireIntake: true,
		ProfileLoaded: true,
	}

	decision := EvaluateGuard(in)
	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/intake", decision.RedirectTo)

	in.IntakeCompleted = true
	decision = EvaluateGuard(in)
	assert.Equal(t, GuardRedirect, decision.Action)
	assert.Equal(t, "/onboarding-video", decision.RedirectTo)

	in.VideoWatched = true
	assert.Equal(t, GuardAllow, EvaluateGuard(in).Action)
}

func TestEvaluateGuard_VideoCheckWaitsForProfile(t *testing.T) {
	// Intake known complete but the profile row itself never loaded: do not
	// bounce to the video on missing data.
	decision := EvaluateGuard(GuardInput{
		Authenticated:   true,
		HasAccess:       true,
		RequireIntake:   true,
		IntakeCompleted: true,
		ProfileLoaded:   false,
	})

	assert.Equal(t, GuardAllow, decision.Action)
}

func TestEvaluateGuard_NoIntakeRequirementSkipsIntakeChecks(t *testing.T) {
	decision := EvaluateGuard(GuardInput{
		Authenticated: true,
		HasAccess:     true,
		ProfileLoaded: true,
	})

	assert.Equal(t, GuardAllow, decision.Action)
}

func TestBuildInput_FoldsSubscriptionProfileAndPreview(t *testing.T) {
	accountID := uuid.New()
	intakeAt := time.Now().Unix()

	subRepo := &fakeSubscriptionRepo{
		findCurrentFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			return &db_models.Subscription{
				PlanTier: db_models.TierMembership,
				Status:   db_models.SubStatusActive,
			}, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		findByAccountFn: func(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
			return &db_models.Profile{
				AccountID:              id,
				IntakeCompletedAt:      &intakeAt,
				FirstLoginVideoWatched: true,
			}, nil
		},
	}

	guard := NewGuardService(subRepo, profileRepo, &fakePreviewService{})
	in := guard.BuildInput(context.Background(), accountID, false)

	assert.True(t, in.Authenticated)
	assert.Equal(t, accountID.String(), in.IdentityID)
	assert.True(t, in.HasAccess)
	assert.True(t, in.ProfileLoaded)
	assert.True(t, in.IntakeCompleted)
	assert.True(t, in.VideoWatched)
}

func TestBuildInput_ReadFailuresDegradeToNoData(t *testing.T) {
	boom := errors.New("db down")
	subRepo := &fakeSubscriptionRepo{
		findCurrentFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			return nil, boom
		},
	}
	profileRepo := &fakeProfileRepo{
		findByAccountFn: func(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
			return nil, boom
		},
	}

	guard := NewGuardService(subRepo, profileRepo, &fakePreviewService{})
	in := guard.BuildInput(context.Background(), uuid.New(), false)

	assert.False(t, in.HasAccess)
	assert.False(t, in.ProfileLoaded)
	assert.False(t, in.IntakeCompleted)
}

func TestBuildInput_AdminPreviewGrantsAccess(t *testing.T) {
	tier := db_models.TierCoaching
	guard := NewGuardService(&fakeSubscriptionRepo{}, &fakeProfileRepo{}, &fakePreviewService{tier: &tier})

	in := guard.BuildInput(context.Background(), uuid.New(), true)
	assert.True(t, in.HasAccess)

	// Same preview state does nothing for a non-admin.
	in = guard.BuildInput(context.Background(), uuid.New(), false)
	assert.False(t, in.HasAccess)
}

func TestVerifySignupAccess_SeesLateProvisioning(t *testing.T) {
	var calls int
	subRepo := &fakeSubscriptionRepo{
		findCurrentFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			calls++
			if calls < 3 {
				return nil, nil
			}
			return &db_models.Subscription{
				PlanTier: db_models.TierMembership,
				Status:   db_models.SubStatusActive,
			}, nil
		},
	}

	guard := &guardService{
		subscriptionRepo: subRepo,
		profileRepo:      &fakeProfileRepo{},
		previewService:   &fakePreviewService{},
		verifyPolicy:     utils.RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond},
	}

	assert.True(t, guard.VerifySignupAccess(context.Background(), uuid.New()))
	assert.Equal(t, 3, calls)
}

func TestVerifySignupAccess_GivesUpAfterPolicy(t *testing.T) {
	var calls int
	subRepo := &fakeSubscriptionRepo{
		findCurrentFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			calls++
			return nil, nil
		},
	}

	guard := &guardService{
		subscriptionRepo: subRepo,
		profileRepo:      &fakeProfileRepo{},
		previewService:   &fakePreviewService{},
		verifyPolicy:     utils.RetryPolicy{MaxAttempts: 4, BaseDelay: time.Millisecond},
	}

	assert.False(t, guard.VerifySignupAccess(context.Background(), uuid.New()))
	assert.Equal(t, 4, calls)
}
