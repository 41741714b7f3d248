package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeOther      AccountType = "OTHER"
)

// ParseAccountType maps a wire value to an AccountType. Unknown values map
// to AccountTypeOther.
func ParseAccountType(raw string) AccountType {
	return parseEnum(raw, AccountTypeOther,
		AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard,
		AccountTypeInvestment, AccountTypeCash, AccountTypeOther)
}

// Title returns a display label for the account type.
func (t AccountType) Title() string {
	switch t {
	case AccountTypeChecking:
		return "Checking"
	case AccountTypeSavings:
		return "Savings"
	case AccountTypeCreditCard:
		return "Credit Card"
	case AccountTypeInvestment:
		return "Investment"
	case AccountTypeCash:
		return "Cash"
	default:
		return "Other"
	}
}

// Account represents a financial account owned by the user
type Account struct {
	ID          string
	Name        string
	Type        AccountType
	Balance     decimal.Decimal
	Currency    string
	Description *string
	IsActive    bool
}
