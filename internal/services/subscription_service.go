package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

// ProvisionWindowDays is the paid access window for the fixed-length
// transformation program.
const ProvisionWindowDays = 84

type SubscriptionServiceInterface interface {
	// GetCurrent returns the effective subscription view for the account,
	// with the admin preview overlay applied when present.
	GetCurrent(ctx context.Context, accountID uuid.UUID, isAdmin bool) (*response_models.SubscriptionView, error)
	// Provision idempotently creates the subscription row after a confirmed
	// payment. A second call for the same account returns the existing row.
	Provision(ctx context.Context, accountID uuid.UUID, email string, tier db_models.PlanTier, providerCustomerID, providerSubID string) (*db_models.Subscription, error)
	// Cancel requests cancel-at-period-end at the payment provider and flips
	// the local status immediately. Paid-for access lapses on its own.
	Cancel(ctx context.Context, accountID, subscriptionID uuid.UUID, reason string) error
}

// BillingClient is the narrow payment-provider surface the subscription
// lifecycle needs.
type BillingClient interface {
	CancelAtPeriodEnd(ctx context.Context, providerSubID string, reason string) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	profileRepo      repositories.ProfileRepository
	previewService   PreviewServiceInterface
	billing          BillingClient
	mailService      IMailService
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	previewService PreviewServiceInterface,
	billing BillingClient,
	mailService IMailService,
) SubscriptionServiceInterface {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		previewService:   previewService,
		billing:          billing,
		mailService:      mailService,
	}
}

func (s *subscriptionService) GetCurrent(ctx context.Context, accountID uuid.UUID, isAdmin bool) (*response_models.SubscriptionView, error) {
	real, err := s.subscriptionRepo.FindCurrentByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	previewTier := s.previewService.GetPreviewTier(ctx, accountID)
	effective := ResolveEffective(real, previewTier, isAdmin, now)
	decision := ResolveAccess(effective.Sub, now)

	view := &response_models.SubscriptionView{
		HasAccess:     decision.HasAccess,
		DaysRemaining: decision.DaysRemaining,
		Preview:       effective.IsPreview(),
	}
	if effective.Sub != nil {
		view.PlanTier = string(effective.Sub.PlanTier)
		view.Status = string(effective.Sub.Status)
		view.StartedAt = effective.Sub.StartedAt
		view.ExpiresAt = effective.Sub.ExpiresAt
		if !effective.IsPreview() {
			view.SubscriptionID = effective.Sub.ID.String()
		}
	}
	return view, nil
}

func (s *subscriptionService) Provision(ctx context.Context, accountID uuid.UUID, email string, tier db_models.PlanTier, providerCustomerID, providerSubID string) (*db_models.Subscription, error) {
	if !tier.Valid() {
		return nil, utils.ErrInvalidTier
	}

	existing, err := s.subscriptionRepo.FindCurrentByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	sub := &db_models.Subscription{
		AccountID:          accountID,
		PlanTier:           tier,
		Status:             db_models.SubStatusActive,
		StartedAt:          now.Unix(),
		Provider:           "stripe",
		ProviderCustomerID: providerCustomerID,
		ProviderSubID:      providerSubID,
	}
	if tier == db_models.TierTransformation {
		expires := now.AddDate(0, 0, ProvisionWindowDays).Unix()
		sub.ExpiresAt = &expires
	}

	if err := s.subscriptionRepo.InsertTx(sub, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Profile is created lazily on first provisioning when signup didn't.
	s.ensureProfile(ctx, accountID, email)

	return sub, nil
}

func (s *subscriptionService) ensureProfile(ctx context.Context, accountID uuid.UUID, email string) {
	profile, err := s.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil || profile != nil {
		return
	}
	err = s.profileRepo.InsertTx(&db_models.Profile{AccountID: accountID, Email: email}, ctx)
	if err != nil {
		log.Printf("provision: profile create failed for %s: %v", accountID, err)
	}
}

func (s *subscriptionService) Cancel(ctx context.Context, accountID, subscriptionID uuid.UUID, reason string) error {
	sub, err := s.subscriptionRepo.FindById(ctx, subscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil || sub.AccountID != accountID {
		return utils.ErrSubscriptionNotFound
	}
	if sub.Status != db_models.SubStatusActive {
		return nil
	}

	if sub.ProviderSubID != "" {
		if err := s.billing.CancelAtPeriodEnd(ctx, sub.ProviderSubID, reason); err != nil {
			return err
		}
	}

	// Local flip means "cancellation requested", not "access revoked":
	// time-boxed access lapses at expires_at on its own.
	if err := s.subscriptionRepo.MarkCancelled(ctx, sub.ID, utils.NowUnixSeconds()); err != nil {
		return utils.ErrDatabaseError
	}

	if profile, err := s.profileRepo.FindByAccountId(ctx, accountID); err == nil && profile != nil {
		if mailErr := s.mailService.SendCancellationNotice(profile.Email, string(sub.PlanTier)); mailErr != nil {
			log.Printf("cancel: notice mail failed for %s: %v", accountID, mailErr)
		}
	}

	return nil
}
