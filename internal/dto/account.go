package dto

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

type AccountDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Description *string         `json:"description"`
	IsActive    *bool           `json:"is_active"`
}

// ToDomain maps the record; is_active defaults to true.
func (d AccountDTO) ToDomain() models.Account {
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return models.Account{
		ID:          d.ID,
		Name:        d.Name,
		Type:        models.ParseAccountType(d.Type),
		Balance:     d.Balance,
		Currency:    d.Currency,
		Description: d.Description,
		IsActive:    active,
	}
}

type AccountsResponse struct {
	Accounts     []AccountDTO    `json:"accounts"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

func (r AccountsResponse) ToDomain() ([]models.Account, decimal.Decimal) {
	accounts := make([]models.Account, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		accounts = append(accounts, a.ToDomain())
	}
	return accounts, r.TotalBalance
}

type CreateAccountRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Description *string         `json:"description,omitempty"`
}

type UpdateAccountRequest struct {
	Name        *string          `json:"name,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Description *string          `json:"description,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}
