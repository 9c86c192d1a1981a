package services

import (
	"context"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
)

// Function-field fakes so each test wires only the calls it cares about.

type fakeSubscriptionRepo struct {
	insertFn        func(sub *db_models.Subscription, ctx context.Context) error
	findByIdFn      func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error)
	findCurrentFn   func(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	markCancelledFn func(ctx context.Context, id uuid.UUID, cancelledAt int64) error
	markExpiredFn   func(ctx context.Context, providerSubID string) error
}

func (f *fakeSubscriptionRepo) InsertTx(sub *db_models.Subscription, ctx context.Context) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(sub, ctx)
}

func (f *fakeSubscriptionRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	if f.findByIdFn == nil {
		return nil, nil
	}
	return f.findByIdFn(ctx, id)
}

func (f *fakeSubscriptionRepo) FindCurrentByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	if f.findCurrentFn == nil {
		return nil, nil
	}
	return f.findCurrentFn(ctx, accountID)
}

func (f *fakeSubscriptionRepo) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt int64) error {
	if f.markCancelledFn == nil {
		return nil
	}
	return f.markCancelledFn(ctx, id, cancelledAt)
}

func (f *fakeSubscriptionRepo) MarkExpired(ctx context.Context, providerSubID string) error {
	if f.markExpiredFn == nil {
		return nil
	}
	return f.markExpiredFn(ctx, providerSubID)
}

type fakeProfileRepo struct {
	insertFn          func(profile *db_models.Profile, ctx context.Context) error
	findByAccountFn   func(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	updateNamesFn     func(ctx context.Context, accountID uuid.UUID, firstName, lastName string) error
	updateAvatarFn    func(ctx context.Context, accountID uuid.UUID, avatarURL string) error
	markIntakeFn      func(ctx context.Context, accountID uuid.UUID, at int64) error
	markVideoFn       func(ctx context.Context, accountID uuid.UUID) error
}

func (f *fakeProfileRepo) InsertTx(profile *db_models.Profile, ctx context.Context) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(profile, ctx)
}

func (f *fakeProfileRepo) FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	if f.findByAccountFn == nil {
		return nil, nil
	}
	return f.findByAccountFn(ctx, accountID)
}

func (f *fakeProfileRepo) UpdateNames(ctx context.Context, accountID uuid.UUID, firstName, lastName string) error {
	if f.updateNamesFn == nil {
		return nil
	}
	return f.updateNamesFn(ctx, accountID, firstName, lastName)
}

func (f *fakeProfileRepo) UpdateAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) error {
	if f.updateAvatarFn == nil {
		return nil
	}
	return f.updateAvatarFn(ctx, accountID, avatarURL)
}

func (f *fakeProfileRepo) MarkIntakeCompleted(ctx context.Context, accountID uuid.UUID, at int64) error {
	if f.markIntakeFn == nil {
		return nil
	}
	return f.markIntakeFn(ctx, accountID, at)
}

func (f *fakeProfileRepo) MarkVideoWatched(ctx context.Context, accountID uuid.UUID) error {
	if f.markVideoFn == nil {
		return nil
	}
	return f.markVideoFn(ctx, accountID)
}

type fakeAccountRepo struct {
	insertFn         func(account *db_models.Account, ctx context.Context) error
	findByIdFn       func(ctx context.Context, id string) (*db_models.Account, error)
	findByEmailFn    func(ctx context.Context, email string) (*db_models.Account, error)
	updatePasswordFn func(ctx context.Context, email, passwordHash string) error
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(account, ctx)
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.findByIdFn == nil {
		return nil, nil
	}
	return f.findByIdFn(ctx, id)
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findByEmailFn == nil {
		return nil, nil
	}
	return f.findByEmailFn(ctx, email)
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	if f.updatePasswordFn == nil {
		return nil
	}
	return f.updatePasswordFn(ctx, email, passwordHash)
}

type fakeBillingClient struct {
	cancelFn func(ctx context.Context, providerSubID, reason string) error
	calls    []string
}

func (f *fakeBillingClient) CancelAtPeriodEnd(ctx context.Context, providerSubID, reason string) error {
	f.calls = append(f.calls, providerSubID)
	if f.cancelFn == nil {
		return nil
	}
	return f.cancelFn(ctx, providerSubID, reason)
}

type fakeMailService struct {
	welcomes      []string
	cancellations []string
	resets        []string
}

func (f *fakeMailService) SendWelcome(to, planTier string) error {
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMailService) SendCancellationNotice(to, planTier string) error {
	f.cancellations = append(f.cancellations, to)
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(email, token string) error {
	f.resets = append(f.resets, email)
	return nil
}

// fakePreviewService returns a fixed tier without touching any store.
type fakePreviewService struct {
	tier *db_models.PlanTier
}

func (f *fakePreviewService) SetPreviewTier(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier) error {
	f.tier = &tier
	return nil
}

func (f *fakePreviewService) GetPreviewTier(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier {
	return f.tier
}

func (f *fakePreviewService) OpenPreview(ctx context.Context, accountID uuid.UUID) *db_models.PlanTier {
	return f.tier
}

func (f *fakePreviewService) ClearPreviewTier(accountID uuid.UUID) {
	f.tier = nil
}
