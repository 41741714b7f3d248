package derived

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var (
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
	monthsPerQtr  = decimal.NewFromInt(3)
)

// MonthlyAmount normalizes a billing amount to a monthly figure.
func MonthlyAmount(amount decimal.Decimal, f models.SubscriptionFrequency) decimal.Decimal {
	switch f {
	case models.FrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(monthsPerYear)
	case models.FrequencyQuarterly:
		return amount.Div(monthsPerQtr)
	case models.FrequencyYearly:
		return amount.Div(monthsPerYear)
	default:
		return amount
	}
}

// SummarizeSubscriptions builds a summary locally. Only active subscriptions
// count towards the monthly total and the next billing date.
func SummarizeSubscriptions(subs []models.Subscription) models.SubscriptionSummary {
	summary := models.SubscriptionSummary{TotalSubscriptions: len(subs)}
	var next *time.Time
	for i := range subs {
		s := &subs[i]
		switch s.Status {
		case models.SubscriptionPaused:
			summary.PausedSubscriptions++
			continue
		case models.SubscriptionCancelled:
			summary.CancelledSubscriptions++
			continue
		}
		summary.ActiveSubscriptions++
		summary.TotalMonthlyAmount = summary.TotalMonthlyAmount.Add(MonthlyAmount(s.Amount, s.Frequency))
		if next == nil || s.NextBillingDate.Before(*next) {
			d := s.NextBillingDate
			next = &d
		}
	}
	summary.NextBillingDate = next
	return summary
}

// SummarizeDebts builds a debt summary locally.
func SummarizeDebts(debts []models.Debt) models.DebtSummary {
	summary := models.DebtSummary{TotalDebts: len(debts)}
	for _, d := range debts {
		summary.TotalAmount = summary.TotalAmount.Add(d.Amount)
		if d.IsPaid {
			summary.PaidDebts++
			summary.PaidAmount = summary.PaidAmount.Add(d.Amount)
		} else {
			summary.UnpaidDebts++
			summary.UnpaidAmount = summary.UnpaidAmount.Add(d.Amount)
		}
	}
	return summary
}
