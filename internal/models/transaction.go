package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// ParseTransactionType maps a wire value to a TransactionType. Unknown values
// map to TransactionTypeExpense.
func ParseTransactionType(raw string) TransactionType {
	return parseEnum(raw, TransactionTypeExpense,
		TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer)
}

// Transaction represents a posted transaction. Account and Category are
// partial summaries embedded by the API for display (id, name and type only).
type Transaction struct {
	ID          string
	AccountID   string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	Reason      *string
	CategoryID  *string
	Date        time.Time
	CreatedAt   time.Time
	Account     *Account
	Category    *Category
}
