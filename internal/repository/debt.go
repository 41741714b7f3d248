package repository

import (
	"context"
	"net/url"
	"strconv"

	"fintrack/internal/derived"
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type debtRepository struct {
	api Requester
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(api Requester) DebtRepository {
	return &debtRepository{api: api}
}

func (r *debtRepository) GetAll(ctx context.Context, isPaid *bool) ([]models.Debt, error) {
	var query url.Values
	if isPaid != nil {
		query = url.Values{"isPaid": {strconv.FormatBool(*isPaid)}}
	}
	var resp dto.DebtsResponse
	if err := r.api.Get(ctx, "debts", query, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

func (r *debtRepository) GetByID(ctx context.Context, id string) (*models.Debt, error) {
	var resp dto.DebtDTO
	if err := r.api.Get(ctx, itemPath("debts", id), nil, &resp); err != nil {
		return nil, err
	}
	debt := resp.ToDomain()
	return &debt, nil
}

func (r *debtRepository) Create(ctx context.Context, in DebtInput) (*models.Debt, error) {
	req := dto.CreateDebtRequest{
		PersonName:  in.PersonName,
		Amount:      in.Amount,
		Description: in.Description,
		DueDate:     in.DueDate,
		Notes:       in.Notes,
	}
	var resp dto.DebtDTO
	if err := r.api.Post(ctx, "debts", req, &resp); err != nil {
		return nil, err
	}
	debt := resp.ToDomain()
	return &debt, nil
}

func (r *debtRepository) Update(ctx context.Context, id string, in DebtUpdate) (*models.Debt, error) {
	req := dto.UpdateDebtRequest{
		PersonName:  in.PersonName,
		Amount:      in.Amount,
		Description: in.Description,
		DueDate:     in.DueDate,
		Notes:       in.Notes,
	}
	var resp dto.DebtDTO
	if err := r.api.Put(ctx, itemPath("debts", id), req, &resp); err != nil {
		return nil, err
	}
	debt := resp.ToDomain()
	return &debt, nil
}

func (r *debtRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, itemPath("debts", id))
}

func (r *debtRepository) MarkAsPaid(ctx context.Context, id, accountID, categoryID string) (*models.Debt, error) {
	req := dto.MarkDebtAsPaidRequest{AccountID: accountID, CategoryID: categoryID}
	var resp dto.DebtDTO
	if err := r.api.Post(ctx, itemPath("debts", id, "pay"), req, &resp); err != nil {
		return nil, err
	}
	debt := resp.ToDomain()
	return &debt, nil
}

// GetSummary falls back to summarizing the full list locally when the
// server has no summary endpoint.
func (r *debtRepository) GetSummary(ctx context.Context) (*models.DebtSummary, error) {
	var resp dto.DebtSummaryDTO
	err := r.api.Get(ctx, "debts/summary", nil, &resp)
	if isNotFound(err) {
		debts, err := r.GetAll(ctx, nil)
		if err != nil {
			return nil, err
		}
		summary := derived.SummarizeDebts(debts)
		return &summary, nil
	}
	if err != nil {
		return nil, err
	}
	summary := resp.ToDomain()
	return &summary, nil
}
