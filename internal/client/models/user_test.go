package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_CloneIsDeep(t *testing.T) {
	u := &User{
		ID:    "1",
		Email: "a@b.c",
		Name:  "a",
		Role:  RoleUser,
		Subscription: &Subscription{
			Status:    SubscriptionTrial,
			Plan:      PlanFree,
			ExpiresAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	c := u.Clone()
	require.Equal(t, u, c)

	c.Name = "changed"
	c.Subscription.Plan = PlanPro
	assert.Equal(t, "a", u.Name)
	assert.Equal(t, PlanFree, u.Subscription.Plan)
}

func TestUser_CloneNil(t *testing.T) {
	var u *User
	assert.Nil(t, u.Clone())
}

func TestTrialSubscription(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := TrialSubscription(now, 14)

	assert.Equal(t, SubscriptionTrial, s.Status)
	assert.Equal(t, PlanFree, s.Plan)
	assert.Equal(t, time.Date(2026, 10, 29, 12, 0, 0, 0, time.UTC), s.ExpiresAt)
}

func TestSessionState_IsAuthenticated(t *testing.T) {
	assert.False(t, SessionState{Phase: PhaseAuthenticated}.IsAuthenticated())
	assert.False(t, SessionState{Phase: PhaseLoading, User: &User{}}.IsAuthenticated())
	assert.True(t, SessionState{Phase: PhaseAuthenticated, User: &User{}}.IsAuthenticated())
}

func TestPricingTiers_CopyAndLookup(t *testing.T) {
	tiers := PricingTiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, PlanFree, tiers[0].Plan)

	tiers[0].Features[0] = "mutated"
	assert.NotEqual(t, "mutated", PricingTiers()[0].Features[0])

	pro, ok := TierForPlan(PlanPro)
	require.True(t, ok)
	assert.Equal(t, 29, pro.Price)
	assert.True(t, pro.Highlight)

	_, ok = TierForPlan(Plan("platinum"))
	assert.False(t, ok)
}
