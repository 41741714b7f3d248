package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// embeddedAccountCurrency is the currency assumed for the partial account
// summaries embedded in transactions, which carry no currency of their own.
const embeddedAccountCurrency = "MXN"

type TransactionDTO struct {
	ID          string                  `json:"id"`
	AccountID   string                  `json:"account_id"`
	Amount      decimal.Decimal         `json:"amount"`
	Type        string                  `json:"type"`
	Description string                  `json:"description"`
	Reason      *string                 `json:"reason"`
	CategoryID  *string                 `json:"category_id"`
	Date        time.Time               `json:"date"`
	CreatedAt   time.Time               `json:"created_at"`
	Account     *TransactionAccountDTO  `json:"account"`
	Category    *TransactionCategoryDTO `json:"category"`
}

func (d TransactionDTO) ToDomain() models.Transaction {
	tx := models.Transaction{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Amount:      d.Amount,
		Type:        models.ParseTransactionType(d.Type),
		Description: d.Description,
		Reason:      d.Reason,
		CategoryID:  d.CategoryID,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
	if d.Account != nil {
		a := d.Account.ToDomain()
		tx.Account = &a
	}
	if d.Category != nil {
		c := d.Category.ToDomain()
		tx.Category = &c
	}
	return tx
}

type TransactionAccountDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (d TransactionAccountDTO) ToDomain() models.Account {
	return models.Account{
		ID:       d.ID,
		Name:     d.Name,
		Type:     models.ParseAccountType(d.Type),
		Balance:  decimal.Zero,
		Currency: embeddedAccountCurrency,
		IsActive: true,
	}
}

type TransactionCategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (d TransactionCategoryDTO) ToDomain() models.Category {
	return models.Category{
		ID:   d.ID,
		Name: d.Name,
		Type: models.ParseCategoryType(d.Type),
	}
}

type TransactionsResponse struct {
	Transactions []TransactionDTO `json:"transactions"`
}

func (r TransactionsResponse) ToDomain() []models.Transaction {
	txs := make([]models.Transaction, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		txs = append(txs, t.ToDomain())
	}
	return txs
}

type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Reason      *string         `json:"reason,omitempty"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Date        time.Time       `json:"date"`
}

type CreateTransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}
