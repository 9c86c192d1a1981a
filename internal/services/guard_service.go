package services

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

type GuardAction string

const (
	GuardAllow     GuardAction = "allow"
	GuardRedirect  GuardAction = "redirect"
	GuardVerifying GuardAction = "verifying"
	GuardLoading   GuardAction = "loading"
)

type GuardDecision struct {
	Action     GuardAction `json:"action"`
	RedirectTo string      `json:"redirect_to,omitempty"`
}

// GuardInput is everything the guard state machine looks at for one request.
type GuardInput struct {
	Loading bool

	Authenticated    bool
	IdentityID       string
	ActiveIdentityID string // client-reported; empty means not supplied

	IsAdmin bool

	RequireAdmin    bool
	RequireIntake   bool
	OnboardingRoute bool
	FreshSignup     bool

	HasAccess bool

	ProfileLoaded   bool
	IntakeCompleted bool
	VideoWatched    bool

	Path string
}

// EvaluateGuard runs the route-guard rules in strict order; the first match
// wins. Admin routes bypass every subscription and intake check.
func EvaluateGuard(in GuardInput) GuardDecision {
	if in.Loading {
		return GuardDecision{Action: GuardLoading}
	}

	// A stale identity (another account signed in elsewhere) is handled the
	// same as no identity: back to login.
	identityChanged := in.ActiveIdentityID != "" && in.ActiveIdentityID != in.IdentityID
	if !in.Authenticated || identityChanged {
		return GuardDecision{Action: GuardRedirect, RedirectTo: loginRedirect(in.Path)}
	}

	if in.RequireAdmin && !in.IsAdmin {
		return GuardDecision{Action: GuardRedirect, RedirectTo: "/dashboard"}
	}
	if in.RequireAdmin {
		return GuardDecision{Action: GuardAllow}
	}

	if !in.HasAccess {
		if in.OnboardingRoute && in.FreshSignup {
			return GuardDecision{Action: GuardVerifying}
		}
		return GuardDecision{Action: GuardRedirect, RedirectTo: "/access-expired"}
	}

	if in.RequireIntake && !in.IntakeCompleted {
		return GuardDecision{Action: GuardRedirect, RedirectTo: "/intake"}
	}
	if in.RequireIntake && in.ProfileLoaded && !in.VideoWatched {
		return GuardDecision{Action: GuardRedirect, RedirectTo: "/onboarding-video"}
	}

	return GuardDecision{Action: GuardAllow}
}

func loginRedirect(path string) string {
	if path == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(path)
}

// GuardServiceInterface builds GuardInputs from stores and bridges the
// payment-confirmation lag with a bounded verification retry.
type GuardServiceInterface interface {
	Evaluate(ctx context.Context, in GuardInput) GuardDecision
	// VerifySignupAccess polls the subscription store until access becomes
	// visible or the policy is exhausted. Returns whether access is granted.
	VerifySignupAccess(ctx context.Context, accountID uuid.UUID) bool
	BuildInput(ctx context.Context, accountID uuid.UUID, isAdmin bool) GuardInput
}

type guardService struct {
	subscriptionRepo repositories.SubscriptionRepository
	profileRepo      repositories.ProfileRepository
	previewService   PreviewServiceInterface
	verifyPolicy     utils.RetryPolicy
}

func NewGuardService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	previewService PreviewServiceInterface,
) GuardServiceInterface {
	return &guardService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		previewService:   previewService,
		verifyPolicy: utils.RetryPolicy{
			MaxAttempts: 6,
			BaseDelay:   500 * time.Millisecond,
			MaxDelay:    8 * time.Second,
			Jitter:      0.2,
		},
	}
}

func (g *guardService) Evaluate(ctx context.Context, in GuardInput) GuardDecision {
	return EvaluateGuard(in)
}

// BuildInput issues the profile and subscription reads and folds in the admin
// preview overlay. Read failures degrade to "no data", which the state
// machine maps to the stricter outcome.
func (g *guardService) BuildInput(ctx context.Context, accountID uuid.UUID, isAdmin bool) GuardInput {
	in := GuardInput{
		Authenticated: true,
		IdentityID:    accountID.String(),
		IsAdmin:       isAdmin,
	}

	now := time.Now()

	sub, err := g.subscriptionRepo.FindCurrentByAccount(ctx, accountID)
	if err != nil {
		log.Printf("guard: subscription fetch failed for %s: %v", accountID, err)
		sub = nil
	}
	previewTier := g.previewService.GetPreviewTier(ctx, accountID)
	effective := ResolveEffective(sub, previewTier, isAdmin, now)
	in.HasAccess = ResolveAccess(effective.Sub, now).HasAccess

	profile, err := g.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		log.Printf("guard: profile fetch failed for %s: %v", accountID, err)
		profile = nil
	}
	if profile != nil {
		in.ProfileLoaded = true
		in.IntakeCompleted = profile.IntakeCompletedAt != nil
		in.VideoWatched = profile.FirstLoginVideoWatched
	}

	return in
}

func (g *guardService) VerifySignupAccess(ctx context.Context, accountID uuid.UUID) bool {
	granted, err := utils.RetryUntil(ctx, g.verifyPolicy, func(ctx context.Context) (bool, error) {
		sub, err := g.subscriptionRepo.FindCurrentByAccount(ctx, accountID)
		if err != nil {
			return false, err
		}
		return ResolveAccess(sub, time.Now()).HasAccess, nil
	})
	if err != nil {
		log.Printf("guard: signup verification gave up for %s: %v", accountID, err)
	}
	return granted
}
