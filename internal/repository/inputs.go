package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// AccountInput describes a new account.
type AccountInput struct {
	Name        string
	Type        models.AccountType
	Balance     decimal.Decimal
	Currency    string
	Description *string
}

// AccountUpdate is a partial update; nil fields are left unchanged.
type AccountUpdate struct {
	Name        *string
	Type        *models.AccountType
	Balance     *decimal.Decimal
	Currency    *string
	Description *string
	IsActive    *bool
}

type CategoryInput struct {
	Name        string
	Type        models.CategoryType
	Description *string
	Color       *string
	Icon        *string
	ParentID    *string
}

type CategoryUpdate struct {
	Name        *string
	Type        *models.CategoryType
	Description *string
	Color       *string
	Icon        *string
	ParentID    *string
}

// TransactionFilter narrows a transaction listing. Nil fields are not sent.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	Type       *models.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
}

type TransactionInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Type        models.TransactionType
	Description string
	Reason      *string
	CategoryID  *string
	Date        time.Time
}

type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
}

type SubscriptionFilter struct {
	Status    *models.SubscriptionStatus
	AccountID *string
}

type SubscriptionInput struct {
	Name            string
	Amount          decimal.Decimal
	Frequency       models.SubscriptionFrequency
	NextBillingDate time.Time
	AccountID       *string
	CategoryID      *string
	Notes           *string
}

type SubscriptionUpdate struct {
	Name            *string
	Amount          *decimal.Decimal
	Frequency       *models.SubscriptionFrequency
	NextBillingDate *time.Time
	AccountID       *string
	CategoryID      *string
	Status          *models.SubscriptionStatus
	Notes           *string
}

type DebtInput struct {
	PersonName  string
	Amount      decimal.Decimal
	Description *string
	DueDate     *time.Time
	Notes       *string
}

type DebtUpdate struct {
	PersonName  *string
	Amount      *decimal.Decimal
	Description *string
	DueDate     *time.Time
	Notes       *string
}

type CryptoInput struct {
	Symbol        string
	Name          string
	Amount        decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	PurchaseFee   *decimal.Decimal
	Notes         *string
}

// SaleTerms are the terms a holding is sold on.
type SaleTerms struct {
	SalePrice     decimal.Decimal
	SaleDate      time.Time
	SaleFee       *decimal.Decimal
	SaleAccountID *string
	CategoryID    *string
}

// enumPtr converts an optional enum to its optional wire string.
func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
