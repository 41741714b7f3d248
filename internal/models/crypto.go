package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CryptoHolding is a position in one cryptocurrency. Valuation methods are
// recomputed on every call from the prices currently held.
type CryptoHolding struct {
	ID            string
	Symbol        string
	Name          string
	Amount        decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  *decimal.Decimal
	PurchaseDate  time.Time
	PurchaseFee   *decimal.Decimal
	Notes         *string
}

// CurrentValue is amount × current price, falling back to the purchase
// price when no current price is known.
func (h CryptoHolding) CurrentValue() decimal.Decimal {
	price := h.PurchasePrice
	if h.CurrentPrice != nil {
		price = *h.CurrentPrice
	}
	return h.Amount.Mul(price)
}

// PurchaseValue is amount × purchase price plus the purchase fee.
func (h CryptoHolding) PurchaseValue() decimal.Decimal {
	v := h.Amount.Mul(h.PurchasePrice)
	if h.PurchaseFee != nil {
		v = v.Add(*h.PurchaseFee)
	}
	return v
}

// ProfitLoss is CurrentValue − PurchaseValue.
func (h CryptoHolding) ProfitLoss() decimal.Decimal {
	return h.CurrentValue().Sub(h.PurchaseValue())
}

// ProfitLossPercentage is ProfitLoss / PurchaseValue × 100, or zero when the
// purchase value is not positive.
func (h CryptoHolding) ProfitLossPercentage() decimal.Decimal {
	pv := h.PurchaseValue()
	if !pv.IsPositive() {
		return decimal.Zero
	}
	return h.ProfitLoss().Div(pv).Mul(hundred)
}
