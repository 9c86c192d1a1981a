package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
}

type KPIBlock struct {
	TotalAccounts          int64 `json:"total_accounts"`
	NewAccounts            int64 `json:"new_accounts"`
	TotalCheckIns          int64 `json:"total_check_ins"`
	ActiveSubscriptions    int64 `json:"active_subscriptions"`
	CancelledSubscriptions int64 `json:"cancelled_subscriptions"`
	ExpiredSubscriptions   int64 `json:"expired_subscriptions"`

	// Financial KPIs
	MRRMinor  int64   `json:"mrr_minor"`
	ARRMinor  int64   `json:"arr_minor"`
	ARPUMinor float64 `json:"arpu_minor"`
	ChurnPct  float64 `json:"churn_pct"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type RevenueSeries struct {
	Points     []SeriesPoint `json:"points"`
	TotalMinor int64         `json:"total_minor"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
}

type TierMixItem struct {
	Tier       string  `json:"tier"`
	Count      int64   `json:"count"`
	Percent    float64 `json:"percent"`
	PriceMinor int64   `json:"price_minor"`
}

type RecentPayment struct {
	ID            string `json:"id"`
	PaidAt        *int64 `json:"paid_at"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	ProviderTxnID string `json:"provider_txn_id"`
	AccountEmail  string `json:"account_email"`
}

type RecentSignup struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt int64  `json:"created_at"`
}

type DashboardReport struct {
	Range          TimeRange       `json:"range"`
	KPIs           KPIBlock        `json:"kpis"`
	Revenue        RevenueSeries   `json:"revenue"`
	NewMembers     CountSeries     `json:"new_members"`
	NewSubs        CountSeries     `json:"new_subs"`
	TierMix        []TierMixItem   `json:"tier_mix"`
	RecentPayments []RecentPayment `json:"recent_payments"`
	RecentSignups  []RecentSignup  `json:"recent_signups"`
}
