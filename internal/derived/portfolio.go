// Package derived computes values the client derives from loaded entities
// rather than receiving from the server: portfolio totals, in-memory
// transaction search and filters, category tree checks and local summaries.
// Every function is pure and recomputes on each call.
package derived

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// PortfolioSummary aggregates holding valuations.
type PortfolioSummary struct {
	TotalValue           decimal.Decimal
	TotalCost            decimal.Decimal
	TotalProfitLoss      decimal.Decimal
	ProfitLossPercentage decimal.Decimal
	HoldingCount         int
}

// PortfolioTotals sums current value, purchase value and profit/loss across
// holdings. The percentage is 0 when the total purchase value is not positive.
func PortfolioTotals(holdings []models.CryptoHolding) PortfolioSummary {
	summary := PortfolioSummary{HoldingCount: len(holdings)}
	for i := range holdings {
		h := &holdings[i]
		summary.TotalValue = summary.TotalValue.Add(h.CurrentValue())
		summary.TotalCost = summary.TotalCost.Add(h.PurchaseValue())
		summary.TotalProfitLoss = summary.TotalProfitLoss.Add(h.ProfitLoss())
	}
	if summary.TotalCost.IsPositive() {
		summary.ProfitLossPercentage = summary.TotalProfitLoss.Div(summary.TotalCost).Mul(hundred)
	}
	return summary
}
