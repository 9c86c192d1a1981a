package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/memcache"
)

// Preview state survives reloads within a working session but is never
// persisted: a restart simply drops it.
const previewTTL = 12 * time.Hour

// DefaultPreviewTier is what an admin sees the first time they open the
// preview switcher with no stored choice.
const DefaultPreviewTier = db_models.TierCoaching

type PreviewServiceInterface interface {
	// SetPreviewTier stores a preview tier for the account. Silently a no-op
	// when the account is not an administrator or the role check fails.
	SetPreviewTier(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier) error
	// GetPreviewTier returns the stored tier, or nil. An admin check that
	// fails or comes back false clears any stored tier (fail closed).
	GetPreviewTier(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier
	// OpenPreview is GetPreviewTier plus first-open seeding with the default
	// tier for admins.
	OpenPreview(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier
	ClearPreviewTier(accountID uuid.UUID)
}

type previewService struct {
	accountRepo repositories.AccountRepository
	store       memcache.PreviewTierStore
}

func NewPreviewService(accountRepo repositories.AccountRepository, store memcache.PreviewTierStore) PreviewServiceInterface {
	return &previewService{
		accountRepo: accountRepo,
		store:       store,
	}
}

// isAdmin fails closed: any error reads as "not an admin".
func (p *previewService) isAdmin(ctx context.Context, accountID uuid.UUID) bool {
	account, err := p.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		log.Printf("preview: admin check failed for %s: %v", accountID, err)
		return false
	}
	return account != nil && account.IsAdmin()
}

func (p *previewService) SetPreviewTier(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier) error {
	if !tier.Valid() {
		return nil
	}
	if !p.isAdmin(ctx, accountID) {
		return nil
	}
	p.store.Set(accountID.String(), string(tier), previewTTL)
	return nil
}

func (p *previewService) GetPreviewTier(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier {
	if !p.isAdmin(ctx, accountID) {
		p.store.Clear(accountID.String())
		return nil
	}
	stored, ok := p.store.Get(accountID.String())
	if !ok {
		return nil
	}
	tier := db_models.PlanTier(stored)
	if !tier.Valid() {
		p.store.Clear(accountID.String())
		return nil
	}
	return &tier
}

func (p *previewService) OpenPreview(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier {
	if tier := p.GetPreviewTier(ctx, accountID); tier != nil {
		return tier
	}
	if !p.isAdmin(ctx, accountID) {
		return nil
	}
	tier := DefaultPreviewTier
	p.store.Set(accountID.String(), string(tier), previewTTL)
	return &tier
}

func (p *previewService) ClearPreviewTier(accountID uuid.UUID) {
	p.store.Clear(accountID.String())
}
