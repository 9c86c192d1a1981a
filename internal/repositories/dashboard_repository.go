package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "redeemedstrength/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalCheckIns(ctx context.Context) (int64, error)
	CountSubscriptionsByStatus(ctx context.Context, status dbm.SubscriptionStatus) (int64, error)
	CountSubscriptionsByTier(ctx context.Context) ([]TierMixRow, error)
	CountCancelledInPeriod(ctx context.Context, start, end time.Time) (int64, error)
	CountSubscribersAt(ctx context.Context, t time.Time) (int64, error)

	// Time series
	RevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error)
	NewMembersSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error)
	NewSubsSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error)

	// Feeds
	RecentPaidTransactions(ctx context.Context, limit int) ([]RecentPaymentRow, error)
	RecentSignups(ctx context.Context, limit int) ([]RecentSignupRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type TierMixRow struct {
	Tier  string `gorm:"column:tier"`
	Count int64  `gorm:"column:count"`
}

type RecentPaymentRow struct {
	ID            string `gorm:"column:id"`
	PaidAt        *int64 `gorm:"column:paid_at"`
	AmountMinor   int64  `gorm:"column:amount_minor"`
	Currency      string `gorm:"column:currency"`
	Status        string `gorm:"column:status"`
	ProviderTxnID string `gorm:"column:provider_txn_id"`
	AccountEmail  string `gorm:"column:email"`
}

type RecentSignupRow struct {
	AccountID string `gorm:"column:account_id"`
	Email     string `gorm:"column:email"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	CreatedAt int64  `gorm:"column:created_at"`
}

// ---------- Counts ----------

func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalCheckIns(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.CheckIn{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSubscriptionsByStatus(ctx context.Context, status dbm.SubscriptionStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSubscriptionsByTier(ctx context.Context) ([]TierMixRow, error) {
	var rows []TierMixRow
	err := r.db.WithContext(ctx).Raw(`
        SELECT plan_tier AS tier, COUNT(*) AS count
        FROM subscriptions
        WHERE status = 'active' AND deleted_at IS NULL
        GROUP BY plan_tier
    `).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) CountCancelledInPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("status = ? AND cancelled_at BETWEEN ? AND ?", dbm.SubStatusCancelled, start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSubscribersAt(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("started_at <= ? AND (cancelled_at IS NULL OR cancelled_at > ?)", t.Unix(), t.Unix()).
		Count(&n).Error
	return n, err
}

// ---------- Series ----------

// bucketed sums over a unix-seconds column
func (r *dashboardRepository) series(ctx context.Context, table, tsColumn, sumExpr string, start, end time.Time, interval string) ([]BucketSum, error) {
	var rows []BucketSum
	query := `
        SELECT date_trunc(?, to_timestamp(` + tsColumn + `)) AS bucket, ` + sumExpr + ` AS sum
        FROM ` + table + `
        WHERE ` + tsColumn + ` BETWEEN ? AND ? AND deleted_at IS NULL
        GROUP BY bucket
        ORDER BY bucket ASC
    `
	err := r.db.WithContext(ctx).Raw(query, interval, start.Unix(), end.Unix()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) RevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).Raw(`
        SELECT date_trunc(?, to_timestamp(paid_at)) AS bucket, COALESCE(SUM(amount_minor), 0) AS sum
        FROM transactions
        WHERE status = 'paid' AND paid_at BETWEEN ? AND ? AND deleted_at IS NULL
        GROUP BY bucket
        ORDER BY bucket ASC
    `, interval, start.Unix(), end.Unix()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) NewMembersSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error) {
	return r.series(ctx, "accounts", "created_at", "COUNT(*)", start, end, interval)
}

func (r *dashboardRepository) NewSubsSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error) {
	return r.series(ctx, "subscriptions", "started_at", "COUNT(*)", start, end, interval)
}

// ---------- Feeds ----------

func (r *dashboardRepository) RecentPaidTransactions(ctx context.Context, limit int) ([]RecentPaymentRow, error) {
	var rows []RecentPaymentRow
	err := r.db.WithContext(ctx).Raw(`
        SELECT t.id, t.paid_at, t.amount_minor, t.currency, t.status, t.provider_txn_id, a.email
        FROM transactions t
        JOIN accounts a ON a.id = t.account_id
        WHERE t.status = 'paid' AND t.deleted_at IS NULL
        ORDER BY t.paid_at DESC
        LIMIT ?
    `, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) RecentSignups(ctx context.Context, limit int) ([]RecentSignupRow, error) {
	var rows []RecentSignupRow
	err := r.db.WithContext(ctx).Raw(`
        SELECT a.id AS account_id, a.email, COALESCE(p.first_name, '') AS first_name,
               COALESCE(p.last_name, '') AS last_name, a.created_at
        FROM accounts a
        LEFT JOIN profiles p ON p.account_id = a.id
        WHERE a.deleted_at IS NULL
        ORDER BY a.created_at DESC
        LIMIT ?
    `, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
