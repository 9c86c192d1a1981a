package utils

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidTier          = errors.New("invalid plan tier")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrDatabaseError        = errors.New("database error")
	RecordNotFound          = errors.New("record not found")
)
