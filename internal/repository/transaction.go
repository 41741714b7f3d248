package repository

import (
	"context"
	"net/url"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type transactionRepository struct {
	api Requester
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(api Requester) TransactionRepository {
	return &transactionRepository{api: api}
}

// Query encodes the filter with the parameter names the API expects.
func (f TransactionFilter) Query() url.Values {
	q := url.Values{}
	if f.AccountID != nil {
		q.Set("accountId", *f.AccountID)
	}
	if f.CategoryID != nil {
		q.Set("categoryId", *f.CategoryID)
	}
	if f.Type != nil {
		q.Set("type", string(*f.Type))
	}
	if f.StartDate != nil {
		q.Set("startDate", f.StartDate.UTC().Format(time.RFC3339))
	}
	if f.EndDate != nil {
		q.Set("endDate", f.EndDate.UTC().Format(time.RFC3339))
	}
	return q
}

func (r *transactionRepository) GetAll(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	var resp dto.TransactionsResponse
	if err := r.api.Get(ctx, "transactions", filter.Query(), &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

func (r *transactionRepository) Create(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	req := dto.CreateTransactionRequest{
		AccountID:   in.AccountID,
		Amount:      in.Amount,
		Type:        string(in.Type),
		Description: in.Description,
		Reason:      in.Reason,
		CategoryID:  in.CategoryID,
		Date:        in.Date,
	}
	var resp dto.TransactionDTO
	if err := r.api.Post(ctx, "transactions", req, &resp); err != nil {
		return nil, err
	}
	tx := resp.ToDomain()
	return &tx, nil
}

func (r *transactionRepository) CreateTransfer(ctx context.Context, in TransferInput) error {
	req := dto.CreateTransferRequest{
		FromAccountID: in.FromAccountID,
		ToAccountID:   in.ToAccountID,
		Amount:        in.Amount,
		Description:   in.Description,
		Date:          in.Date,
	}
	return r.api.Post(ctx, "transfers", req, nil)
}
