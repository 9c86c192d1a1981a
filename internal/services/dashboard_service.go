package services

import (
	"context"
	"time"

	dbm "redeemedstrength/internal/models/db_models"
	resp "redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo     repositories.DashboardRepository
	planRepo repositories.IPlanRepository
}

func NewDashboardService(repo repositories.DashboardRepository, planRepo repositories.IPlanRepository) DashboardService {
	return &dashboardService{repo: repo, planRepo: planRepo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, err
	}
	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	totalCheckIns, err := s.repo.CountTotalCheckIns(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := s.repo.CountSubscriptionsByStatus(ctx, dbm.SubStatusActive)
	if err != nil {
		return nil, err
	}
	cancelledSubs, err := s.repo.CountSubscriptionsByStatus(ctx, dbm.SubStatusCancelled)
	if err != nil {
		return nil, err
	}
	expiredSubs, err := s.repo.CountSubscriptionsByStatus(ctx, dbm.SubStatusExpired)
	if err != nil {
		return nil, err
	}

	// ---------- Series ----------
	revenueRows, err := s.repo.RevenueSeries(ctx, rng.Start, rng.End, rng.Interval)
	if err != nil {
		return nil, err
	}
	var revenuePoints []resp.SeriesPoint
	var totalRevenue int64
	for _, r := range revenueRows {
		revenuePoints = append(revenuePoints, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
		totalRevenue += r.Sum
	}

	newMembersRows, err := s.repo.NewMembersSeries(ctx, rng.Start, rng.End, rng.Interval)
	if err != nil {
		return nil, err
	}
	var newMembersPoints []resp.SeriesPoint
	for _, r := range newMembersRows {
		newMembersPoints = append(newMembersPoints, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	newSubsRows, err := s.repo.NewSubsSeries(ctx, rng.Start, rng.End, rng.Interval)
	if err != nil {
		return nil, err
	}
	var newSubsPoints []resp.SeriesPoint
	for _, r := range newSubsRows {
		newSubsPoints = append(newSubsPoints, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	// ---------- Tier mix + MRR ----------
	tierRows, err := s.repo.CountSubscriptionsByTier(ctx)
	if err != nil {
		return nil, err
	}
	var tierMixItems []resp.TierMixItem
	var totalActive float64
	for _, r := range tierRows {
		totalActive += float64(r.Count)
	}
	var mrr int64
	for _, r := range tierRows {
		item := resp.TierMixItem{Tier: r.Tier, Count: r.Count}
		if totalActive > 0 {
			item.Percent = float64(r.Count) / totalActive * 100.0
		}
		// Plan codes mirror tier names, so pricing comes from the catalog.
		// The fixed-length transformation tier is one-off revenue, not MRR.
		if plan, perr := s.planRepo.FindByCode(ctx, r.Tier); perr == nil && plan != nil {
			item.PriceMinor = plan.PriceMinor
			if plan.DurationDays == 0 {
				mrr += plan.PriceMinor * r.Count
			}
		}
		tierMixItems = append(tierMixItems, item)
	}
	var arpu float64
	if activeSubs > 0 {
		arpu = float64(mrr) / float64(activeSubs)
	}

	// ---------- Churn ----------
	cancelledInPeriod, err := s.repo.CountCancelledInPeriod(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	subscribersAtStart, err := s.repo.CountSubscribersAt(ctx, rng.Start)
	if err != nil {
		return nil, err
	}
	var churnPct float64
	if subscribersAtStart > 0 {
		churnPct = (float64(cancelledInPeriod) / float64(subscribersAtStart)) * 100.0
	}

	// ---------- Feeds ----------
	recentPayments, err := s.repo.RecentPaidTransactions(ctx, 10)
	if err != nil {
		return nil, err
	}
	recentSignups, err := s.repo.RecentSignups(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalAccounts:          totalAccounts,
			NewAccounts:            newAccounts,
			TotalCheckIns:          totalCheckIns,
			ActiveSubscriptions:    activeSubs,
			CancelledSubscriptions: cancelledSubs,
			ExpiredSubscriptions:   expiredSubs,
			MRRMinor:               mrr,
			ARRMinor:               mrr * 12,
			ARPUMinor:              arpu,
			ChurnPct:               churnPct,
		},
		Revenue:    resp.RevenueSeries{Points: revenuePoints, TotalMinor: totalRevenue},
		NewMembers: resp.CountSeries{Points: newMembersPoints},
		NewSubs:    resp.CountSeries{Points: newSubsPoints},
		TierMix:    tierMixItems,
		RecentPayments: func() []resp.RecentPayment {
			out := make([]resp.RecentPayment, 0, len(recentPayments))
			for _, r := range recentPayments {
				out = append(out, resp.RecentPayment{
					ID:            r.ID,
					PaidAt:        r.PaidAt,
					AmountMinor:   r.AmountMinor,
					Currency:      r.Currency,
					Status:        r.Status,
					ProviderTxnID: r.ProviderTxnID,
					AccountEmail:  r.AccountEmail,
				})
			}
			return out
		}(),
		RecentSignups: func() []resp.RecentSignup {
			out := make([]resp.RecentSignup, 0, len(recentSignups))
			for _, r := range recentSignups {
				out = append(out, resp.RecentSignup{
					AccountID: r.AccountID,
					Email:     r.Email,
					FirstName: r.FirstName,
					LastName:  r.LastName,
					CreatedAt: r.CreatedAt,
				})
			}
			return out
		}(),
	}, nil
}
