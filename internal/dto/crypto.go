package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

type CryptoHoldingDTO struct {
	ID            string           `json:"id"`
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	Amount        decimal.Decimal  `json:"amount"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	CurrentPrice  *decimal.Decimal `json:"current_price"`
	PurchaseDate  time.Time        `json:"purchase_date"`
	PurchaseFee   *decimal.Decimal `json:"purchase_fee"`
	Notes         *string          `json:"notes"`
}

func (d CryptoHoldingDTO) ToDomain() models.CryptoHolding {
	return models.CryptoHolding{
		ID:            d.ID,
		Symbol:        d.Symbol,
		Name:          d.Name,
		Amount:        d.Amount,
		PurchasePrice: d.PurchasePrice,
		CurrentPrice:  d.CurrentPrice,
		PurchaseDate:  d.PurchaseDate,
		PurchaseFee:   d.PurchaseFee,
		Notes:         d.Notes,
	}
}

// CryptoPortfolioResponse carries server totals as well; the client ignores
// them and derives totals from the holdings.
type CryptoPortfolioResponse struct {
	Holdings             []CryptoHoldingDTO `json:"holdings"`
	TotalValue           *decimal.Decimal   `json:"total_value"`
	TotalCost            *decimal.Decimal   `json:"total_cost"`
	TotalProfitLoss      *decimal.Decimal   `json:"total_profit_loss"`
	ProfitLossPercentage *decimal.Decimal   `json:"profit_loss_percentage"`
}

func (r CryptoPortfolioResponse) ToDomain() []models.CryptoHolding {
	holdings := make([]models.CryptoHolding, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		holdings = append(holdings, h.ToDomain())
	}
	return holdings
}

type CreateCryptoRequest struct {
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	Amount        decimal.Decimal  `json:"amount"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	PurchaseDate  time.Time        `json:"purchase_date"`
	PurchaseFee   *decimal.Decimal `json:"purchase_fee,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

type SellCryptoRequest struct {
	SalePrice     decimal.Decimal  `json:"sale_price"`
	SaleDate      time.Time        `json:"sale_date"`
	SaleFee       *decimal.Decimal `json:"sale_fee,omitempty"`
	SaleAccountID *string          `json:"sale_account_id,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
}
