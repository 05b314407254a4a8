// Package models defines client-side data models used by the CobraGPT CLI.
package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionTrial    SubscriptionStatus = "trial"
)

type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Subscription describes the plan attached to a user.
type Subscription struct {
	Status    SubscriptionStatus `json:"status" validate:"required,oneof=active inactive trial"`
	Plan      Plan               `json:"plan" validate:"required,oneof=free pro enterprise"`
	ExpiresAt time.Time          `json:"expiresAt" validate:"required"`
}

// User is the identity of the signed-in person. At most one User is kept in
// local storage at a time.
type User struct {
	ID           string        `json:"id" validate:"required"`
	Email        string        `json:"email" validate:"required"`
	Name         string        `json:"name" validate:"required"`
	Avatar       string        `json:"avatar,omitempty"`
	Role         Role          `json:"role" validate:"required,oneof=user admin"`
	Subscription *Subscription `json:"subscription,omitempty" validate:"omitempty"`
}

// Clone returns a deep copy of u so callers cannot mutate shared state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Subscription != nil {
		s := *u.Subscription
		c.Subscription = &s
	}
	return &c
}

// TrialSubscription returns a trial of the free plan lasting days from now.
func TrialSubscription(now time.Time, days int) *Subscription {
	return &Subscription{
		Status:    SubscriptionTrial,
		Plan:      PlanFree,
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour).UTC(),
	}
}
