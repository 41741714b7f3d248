package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

type DebtDTO struct {
	ID          string          `json:"id"`
	PersonName  string          `json:"person_name"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	DueDate     *time.Time      `json:"due_date"`
	IsPaid      bool            `json:"is_paid"`
	PaidDate    *time.Time      `json:"paid_date"`
	Notes       *string         `json:"notes"`
}

func (d DebtDTO) ToDomain() models.Debt {
	return models.Debt{
		ID:          d.ID,
		PersonName:  d.PersonName,
		Amount:      d.Amount,
		Description: d.Description,
		DueDate:     d.DueDate,
		IsPaid:      d.IsPaid,
		PaidDate:    d.PaidDate,
		Notes:       d.Notes,
	}
}

type DebtsResponse struct {
	Debts []DebtDTO `json:"debts"`
}

func (r DebtsResponse) ToDomain() []models.Debt {
	debts := make([]models.Debt, 0, len(r.Debts))
	for _, d := range r.Debts {
		debts = append(debts, d.ToDomain())
	}
	return debts
}

type DebtSummaryDTO struct {
	TotalDebts   *int             `json:"total_debts"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	PaidDebts    *int             `json:"paid_debts"`
	PaidAmount   *decimal.Decimal `json:"paid_amount"`
	UnpaidDebts  *int             `json:"unpaid_debts"`
	UnpaidAmount *decimal.Decimal `json:"unpaid_amount"`
}

func (d DebtSummaryDTO) ToDomain() models.DebtSummary {
	return models.DebtSummary{
		TotalDebts:   intOrZero(d.TotalDebts),
		TotalAmount:  decOrZero(d.TotalAmount),
		PaidDebts:    intOrZero(d.PaidDebts),
		PaidAmount:   decOrZero(d.PaidAmount),
		UnpaidDebts:  intOrZero(d.UnpaidDebts),
		UnpaidAmount: decOrZero(d.UnpaidAmount),
	}
}

type CreateDebtRequest struct {
	PersonName  string          `json:"person_name"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

type UpdateDebtRequest struct {
	PersonName  *string          `json:"person_name,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// MarkDebtAsPaidRequest posts the payment against both an account and a
// category. PaidDate is left to the server when nil.
type MarkDebtAsPaidRequest struct {
	AccountID  string  `json:"account_id"`
	CategoryID string  `json:"category_id"`
	PaidDate   *string `json:"paid_date,omitempty"`
}
