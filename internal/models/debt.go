package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is money owed by a person. PaidDate is expected to be set exactly
// when IsPaid is true; the client does not enforce it.
type Debt struct {
	ID          string
	PersonName  string
	Amount      decimal.Decimal
	Description *string
	DueDate     *time.Time
	IsPaid      bool
	PaidDate    *time.Time
	Notes       *string
}

// DebtSummary aggregates the user's debts.
type DebtSummary struct {
	TotalDebts   int
	TotalAmount  decimal.Decimal
	PaidDebts    int
	PaidAmount   decimal.Decimal
	UnpaidDebts  int
	UnpaidAmount decimal.Decimal
}

// TotalOwed is the outstanding (unpaid) amount.
func (s DebtSummary) TotalOwed() decimal.Decimal { return s.UnpaidAmount }

// TotalPaid is the amount already settled.
func (s DebtSummary) TotalPaid() decimal.Decimal { return s.PaidAmount }

// Count is the total number of debts.
func (s DebtSummary) Count() int { return s.TotalDebts }
