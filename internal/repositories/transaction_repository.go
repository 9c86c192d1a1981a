package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type TransactionRepository interface {
	InsertTx(txn *db_models.Transaction, ctx context.Context) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
	MarkPaid(ctx context.Context, id string, paidAt int64) error
	MarkFailed(ctx context.Context, id string) error
	UpdateMetadata(ctx context.Context, id string, metadata []byte) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) InsertTx(txn *db_models.Transaction, ctx context.Context) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) MarkPaid(ctx context.Context, id string, paidAt int64) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  db_models.TxnStatusPaid,
			"paid_at": paidAt,
		}).Error
}

func (t *transactionRepository) MarkFailed(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("status", db_models.TxnStatusFailed).Error
}

func (t *transactionRepository) UpdateMetadata(ctx context.Context, id string, metadata []byte) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("metadata", metadata).Error
}
