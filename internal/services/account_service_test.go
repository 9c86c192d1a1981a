package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/pkg/memcache"
	"redeemedstrength/pkg/utils"
)

func testAccount(t *testing.T, email, password, role string) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestLogin_Success(t *testing.T) {
	account := testAccount(t, "lifter@example.com", "hunter2secret", db_models.RoleMember)

	accountRepo := &fakeAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return account, nil
		},
	}
	subRepo := &fakeSubscriptionRepo{
		findCurrentFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			return &db_models.Subscription{
				PlanTier: db_models.TierMembership,
				Status:   db_models.SubStatusActive,
			}, nil
		},
	}
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, subRepo, &fakeMailService{}, memcache.NewResetTokens())

	result, err := svc.Login(request_models.LoginRequest{Email: "lifter@example.com", Password: "hunter2secret"}, context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, db_models.RoleMember, result.Role)
	assert.True(t, result.HasAccess)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	account := testAccount(t, "lifter@example.com", "hunter2secret", db_models.RoleMember)
	accountRepo := &fakeAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return account, nil
		},
	}
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	_, err := svc.Login(request_models.LoginRequest{Email: "lifter@example.com", Password: "wrong"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAccountService(&fakeAccountRepo{}, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	_, err := svc.Login(request_models.LoginRequest{Email: "nobody@example.com", Password: "whatever"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestLogin_NoSubscriptionMeansNoAccess(t *testing.T) {
	account := testAccount(t, "lifter@example.com", "hunter2secret", db_models.RoleMember)
	accountRepo := &fakeAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return account, nil
		},
	}
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	result, err := svc.Login(request_models.LoginRequest{Email: "lifter@example.com", Password: "hunter2secret"}, context.Background())
	require.NoError(t, err)
	assert.False(t, result.HasAccess)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	accountRepo := &fakeAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{Email: email}, nil
		},
	}
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	err := svc.CreateAccount(request_models.SignUpRequest{
		FirstName: "Dom", LastName: "D", Email: "dom@example.com", Password: "hunter2secret",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccount_CreatesAccountAndProfile(t *testing.T) {
	var createdAccount *db_models.Account
	var createdProfile *db_models.Profile

	accountRepo := &fakeAccountRepo{
		insertFn: func(account *db_models.Account, ctx context.Context) error {
			account.ID = uuid.New()
			createdAccount = account
			return nil
		},
	}
	profileRepo := &fakeProfileRepo{
		insertFn: func(profile *db_models.Profile, ctx context.Context) error {
			createdProfile = profile
			return nil
		},
	}
	svc := NewAccountService(accountRepo, profileRepo, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	err := svc.CreateAccount(request_models.SignUpRequest{
		FirstName: "Dom", LastName: "D", Email: "dom@example.com", Password: "hunter2secret",
	})
	require.NoError(t, err)

	require.NotNil(t, createdAccount)
	assert.Equal(t, db_models.RoleMember, createdAccount.Role)
	assert.NotEqual(t, "hunter2secret", createdAccount.PasswordHash)

	require.NotNil(t, createdProfile)
	assert.Equal(t, createdAccount.ID, createdProfile.AccountID)
	assert.Equal(t, "Dom", createdProfile.FirstName)
}

func TestForgotPassword_UnknownEmailRevealsNothing(t *testing.T) {
	mail := &fakeMailService{}
	svc := NewAccountService(&fakeAccountRepo{}, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, mail, memcache.NewResetTokens())

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, mail.resets)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	account := testAccount(t, "lifter@example.com", "oldpassword1", db_models.RoleMember)
	var updatedHash string

	accountRepo := &fakeAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return account, nil
		},
		updatePasswordFn: func(ctx context.Context, email, passwordHash string) error {
			updatedHash = passwordHash
			return nil
		},
	}
	mail := &fakeMailService{}
	tokens := memcache.NewResetTokens()
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, mail, tokens)

	require.NoError(t, svc.ForgotPassword(context.Background(), "lifter@example.com"))
	require.Len(t, mail.resets, 1)

	// The service only hands the token to the mailer; for the round trip we
	// plant a known one the same way ForgotPassword does.
	tokens.Set("known-token", account.Email, 30*time.Minute)

	require.NoError(t, svc.ResetPassword(context.Background(), "known-token", "newpassword1"))
	assert.NoError(t, utils.ComparePasswords(updatedHash, "newpassword1"))

	// Single use.
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "known-token", "again"), utils.ErrInvalidResetToken)
}

func TestIsAdmin(t *testing.T) {
	admin := testAccount(t, "coach@example.com", "hunter2secret", db_models.RoleAdmin)
	accountRepo := &fakeAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			if id == admin.ID.String() {
				return admin, nil
			}
			return nil, nil
		},
	}
	svc := NewAccountService(accountRepo, &fakeProfileRepo{}, &fakeSubscriptionRepo{}, &fakeMailService{}, memcache.NewResetTokens())

	isAdmin, err := svc.IsAdmin(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	_, err = svc.IsAdmin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
