package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/memcache"
	"redeemedstrength/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error)
	CreateAccount(request request_models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	// IsAdmin is the administrator-role lookup. Callers must treat an error
	// as "not an admin".
	IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type AccountService struct {
	accountRepo      repositories.AccountRepository
	profileRepo      repositories.ProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
	mailService      IMailService
	resetTokens      memcache.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	mailService IMailService,
	resetTokens memcache.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:      accountRepo,
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		mailService:      mailService,
		resetTokens:      resetTokens,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	hasAccess := false
	if sub, err := a.subscriptionRepo.FindCurrentByAccount(ctx, account.ID); err == nil {
		hasAccess = ResolveAccess(sub, time.Now()).HasAccess
	}

	return &response_models.LoginResponse{
		Token:     token,
		Role:      account.Role,
		HasAccess: hasAccess,
	}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest) error {
	ctx := context.Background()

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleMember,
	}
	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		AccountID: newAccount.ID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	}
	if err := a.profileRepo.InsertTx(profile, ctx); err != nil {
		log.Printf("signup: profile create failed for %s: %v", newAccount.ID, err)
	}

	return nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 30*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("forgot-password: mail failed for %s: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := a.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if account == nil {
		return false, utils.ErrAccountNotFound
	}
	return account.IsAdmin(), nil
}
