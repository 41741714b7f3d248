package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionFrequency is how often a subscription bills.
type SubscriptionFrequency string

const (
	FrequencyWeekly    SubscriptionFrequency = "WEEKLY"
	FrequencyMonthly   SubscriptionFrequency = "MONTHLY"
	FrequencyQuarterly SubscriptionFrequency = "QUARTERLY"
	FrequencyYearly    SubscriptionFrequency = "YEARLY"
)

// ParseSubscriptionFrequency maps a wire value to a frequency. Unknown values
// map to FrequencyMonthly.
func ParseSubscriptionFrequency(raw string) SubscriptionFrequency {
	return parseEnum(raw, FrequencyMonthly,
		FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly)
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPaused    SubscriptionStatus = "PAUSED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// ParseSubscriptionStatus maps a wire value to a status. Unknown values map
// to SubscriptionActive.
func ParseSubscriptionStatus(raw string) SubscriptionStatus {
	return parseEnum(raw, SubscriptionActive,
		SubscriptionActive, SubscriptionPaused, SubscriptionCancelled)
}

// Subscription is a recurring charge billed by the server.
type Subscription struct {
	ID              string
	Name            string
	Amount          decimal.Decimal
	Frequency       SubscriptionFrequency
	NextBillingDate time.Time
	AccountID       *string
	CategoryID      *string
	Status          SubscriptionStatus
	Notes           *string
}

// SubscriptionSummary aggregates the user's subscriptions.
type SubscriptionSummary struct {
	TotalSubscriptions     int
	ActiveSubscriptions    int
	PausedSubscriptions    int
	CancelledSubscriptions int
	TotalMonthlyAmount     decimal.Decimal
	NextBillingDate        *time.Time
}

// TotalMonthly is the monthly amount across active subscriptions.
func (s SubscriptionSummary) TotalMonthly() decimal.Decimal { return s.TotalMonthlyAmount }

// TotalYearly is twelve times the monthly amount.
func (s SubscriptionSummary) TotalYearly() decimal.Decimal {
	return s.TotalMonthlyAmount.Mul(decimal.NewFromInt(12))
}

// Count is the number of active subscriptions.
func (s SubscriptionSummary) Count() int { return s.ActiveSubscriptions }
