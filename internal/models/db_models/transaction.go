package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

type Transaction struct {
	BaseModel
	AccountID      uuid.UUID  `gorm:"index"`
	SubscriptionID *uuid.UUID `gorm:"index"` // nullable for one-off merch purchases
	AmountMinor    int64
	Currency       string            `gorm:"size:3"`
	Status         TransactionStatus `gorm:"type:transaction_status;index"`

	Provider         string `gorm:"index"`
	ProviderTxnID    string `gorm:"uniqueIndex"` // idempotency across webhook redelivery
	PaymentMethodRef string // last4 / token ref, never raw card data

	// Unix seconds.
	AuthorizedAt *int64
	PaidAt       *int64
	RefundedAt   *int64

	// Line items, webhook payload snapshots, failure reasons.
	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account      Account       `gorm:"foreignKey:AccountID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
