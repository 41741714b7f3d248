package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

type SubscriptionDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency"`
	NextBillingDate time.Time       `json:"next_billing_date"`
	AccountID       *string         `json:"account_id"`
	CategoryID      *string         `json:"category_id"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes"`
}

func (d SubscriptionDTO) ToDomain() models.Subscription {
	return models.Subscription{
		ID:              d.ID,
		Name:            d.Name,
		Amount:          d.Amount,
		Frequency:       models.ParseSubscriptionFrequency(d.Frequency),
		NextBillingDate: d.NextBillingDate,
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		Status:          models.ParseSubscriptionStatus(d.Status),
		Notes:           d.Notes,
	}
}

type SubscriptionsResponse struct {
	Subscriptions []SubscriptionDTO `json:"subscriptions"`
}

func (r SubscriptionsResponse) ToDomain() []models.Subscription {
	subs := make([]models.Subscription, 0, len(r.Subscriptions))
	for _, s := range r.Subscriptions {
		subs = append(subs, s.ToDomain())
	}
	return subs
}

type SubscriptionSummaryDTO struct {
	TotalSubscriptions     *int             `json:"total_subscriptions"`
	ActiveSubscriptions    *int             `json:"active_subscriptions"`
	PausedSubscriptions    *int             `json:"paused_subscriptions"`
	CancelledSubscriptions *int             `json:"cancelled_subscriptions"`
	TotalMonthlyAmount     *decimal.Decimal `json:"total_monthly_amount"`
	NextBillingDate        *time.Time       `json:"next_billing_date"`
}

func (d SubscriptionSummaryDTO) ToDomain() models.SubscriptionSummary {
	return models.SubscriptionSummary{
		TotalSubscriptions:     intOrZero(d.TotalSubscriptions),
		ActiveSubscriptions:    intOrZero(d.ActiveSubscriptions),
		PausedSubscriptions:    intOrZero(d.PausedSubscriptions),
		CancelledSubscriptions: intOrZero(d.CancelledSubscriptions),
		TotalMonthlyAmount:     decOrZero(d.TotalMonthlyAmount),
		NextBillingDate:        d.NextBillingDate,
	}
}

type CreateSubscriptionRequest struct {
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency"`
	NextBillingDate time.Time       `json:"next_billing_date"`
	AccountID       *string         `json:"account_id,omitempty"`
	CategoryID      *string         `json:"category_id,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

type UpdateSubscriptionRequest struct {
	Name            *string          `json:"name,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Frequency       *string          `json:"frequency,omitempty"`
	NextBillingDate *time.Time       `json:"next_billing_date,omitempty"`
	AccountID       *string          `json:"account_id,omitempty"`
	CategoryID      *string          `json:"category_id,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}
