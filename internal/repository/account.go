package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/validator"
)

type accountRepository struct {
	api Requester
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(api Requester) AccountRepository {
	return &accountRepository{api: api}
}

func (r *accountRepository) GetAll(ctx context.Context) ([]models.Account, decimal.Decimal, error) {
	var resp dto.AccountsResponse
	if err := r.api.Get(ctx, "accounts", nil, &resp); err != nil {
		return nil, decimal.Zero, err
	}
	accounts, total := resp.ToDomain()
	return accounts, total, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var resp dto.AccountDTO
	if err := r.api.Get(ctx, itemPath("accounts", id), nil, &resp); err != nil {
		return nil, err
	}
	account := resp.ToDomain()
	return &account, nil
}

func (r *accountRepository) Create(ctx context.Context, in AccountInput) (*models.Account, error) {
	if err := validator.Currency(in.Currency); err != nil {
		return nil, err
	}
	req := dto.CreateAccountRequest{
		Name:        in.Name,
		Type:        string(in.Type),
		Balance:     in.Balance,
		Currency:    in.Currency,
		Description: in.Description,
	}
	var resp dto.AccountDTO
	if err := r.api.Post(ctx, "accounts", req, &resp); err != nil {
		return nil, err
	}
	account := resp.ToDomain()
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, id string, in AccountUpdate) (*models.Account, error) {
	if in.Currency != nil {
		if err := validator.Currency(*in.Currency); err != nil {
			return nil, err
		}
	}
	req := dto.UpdateAccountRequest{
		Name:        in.Name,
		Type:        enumPtr(in.Type),
		Balance:     in.Balance,
		Currency:    in.Currency,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	var resp dto.AccountDTO
	if err := r.api.Put(ctx, itemPath("accounts", id), req, &resp); err != nil {
		return nil, err
	}
	account := resp.ToDomain()
	return &account, nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, itemPath("accounts", id))
}
