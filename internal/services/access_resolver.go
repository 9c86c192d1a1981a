package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"redeemedstrength/internal/models/db_models"
)

// Preview subscriptions get a 60-day horizon so the transformation countdown
// renders with something plausible. The real provisioning window is 84 days;
// the two are unrelated on purpose.
const PreviewHorizonDays = 60

type AccessDecision struct {
	HasAccess     bool `json:"has_access"`
	DaysRemaining *int `json:"days_remaining"`
}

// ResolveAccess computes access facts from a subscription row and the clock.
//
// Transformation plans are judged purely on expires_at: the stored status is
// informational for this tier, and a missing expires_at on a transformation
// row is treated as malformed, never as open-ended access. Membership and
// coaching are judged purely on status.
func ResolveAccess(sub *db_models.Subscription, now time.Time) AccessDecision {
	if sub == nil {
		return AccessDecision{}
	}

	switch sub.PlanTier {
	case db_models.TierTransformation:
		if sub.ExpiresAt == nil {
			return AccessDecision{}
		}
		expires := time.Unix(*sub.ExpiresAt, 0)
		decision := AccessDecision{HasAccess: expires.After(now)}
		days := daysUntil(now, expires)
		decision.DaysRemaining = &days
		return decision
	case db_models.TierMembership, db_models.TierCoaching:
		return AccessDecision{HasAccess: sub.Status == db_models.SubStatusActive}
	default:
		return AccessDecision{}
	}
}

// daysUntil is ceil((expires-now)/24h) floored at zero.
func daysUntil(now, expires time.Time) int {
	diff := expires.Sub(now)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

type SubscriptionSource string

const (
	SourceReal    SubscriptionSource = "real"
	SourcePreview SubscriptionSource = "preview"
)

// EffectiveSubscription tags the subscription the rest of the system should
// act on. A Preview value is synthetic and must never reach billing code.
type EffectiveSubscription struct {
	Source SubscriptionSource
	Sub    *db_models.Subscription
}

func (e EffectiveSubscription) IsPreview() bool { return e.Source == SourcePreview }

// ResolveEffective applies the admin-preview precedence: the synthetic
// subscription when an admin has a preview tier set, the real one otherwise.
// Non-admins always get the real subscription regardless of preview state.
func ResolveEffective(real *db_models.Subscription, previewTier *db_models.PlanTier, isAdmin bool, now time.Time) EffectiveSubscription {
	if isAdmin && previewTier != nil && previewTier.Valid() {
		return EffectiveSubscription{
			Source: SourcePreview,
			Sub:    syntheticSubscription(*previewTier, now),
		}
	}
	return EffectiveSubscription{Source: SourceReal, Sub: real}
}

func syntheticSubscription(tier db_models.PlanTier, now time.Time) *db_models.Subscription {
	sub := &db_models.Subscription{
		BaseModel: db_models.BaseModel{ID: uuid.Nil},
		PlanTier:  tier,
		Status:    db_models.SubStatusActive,
		StartedAt: now.Unix(),
		Metadata:  datatypes.JSON([]byte(`{"preview":true}`)),
	}
	if tier == db_models.TierTransformation {
		expires := now.AddDate(0, 0, PreviewHorizonDays).Unix()
		sub.ExpiresAt = &expires
	}
	return sub
}
