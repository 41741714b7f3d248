package repository

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"fintrack/internal/derived"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type subscriptionRepository struct {
	api Requester
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(api Requester) SubscriptionRepository {
	return &subscriptionRepository{api: api}
}

func (r *subscriptionRepository) GetAll(ctx context.Context, filter SubscriptionFilter) ([]models.Subscription, error) {
	q := url.Values{}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}
	if filter.AccountID != nil {
		q.Set("accountId", *filter.AccountID)
	}
	var resp dto.SubscriptionsResponse
	if err := r.api.Get(ctx, "subscriptions", q, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	var resp dto.SubscriptionDTO
	if err := r.api.Get(ctx, itemPath("subscriptions", id), nil, &resp); err != nil {
		return nil, err
	}
	sub := resp.ToDomain()
	return &sub, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, in SubscriptionInput) (*models.Subscription, error) {
	req := dto.CreateSubscriptionRequest{
		Name:            in.Name,
		Amount:          in.Amount,
		Frequency:       string(in.Frequency),
		NextBillingDate: in.NextBillingDate,
		AccountID:       in.AccountID,
		CategoryID:      in.CategoryID,
		Notes:           in.Notes,
	}
	var resp dto.SubscriptionDTO
	if err := r.api.Post(ctx, "subscriptions", req, &resp); err != nil {
		return nil, err
	}
	sub := resp.ToDomain()
	return &sub, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, id string, in SubscriptionUpdate) (*models.Subscription, error) {
	req := dto.UpdateSubscriptionRequest{
		Name:            in.Name,
		Amount:          in.Amount,
		Frequency:       enumPtr(in.Frequency),
		NextBillingDate: in.NextBillingDate,
		AccountID:       in.AccountID,
		CategoryID:      in.CategoryID,
		Status:          enumPtr(in.Status),
		Notes:           in.Notes,
	}
	var resp dto.SubscriptionDTO
	if err := r.api.Put(ctx, itemPath("subscriptions", id), req, &resp); err != nil {
		return nil, err
	}
	sub := resp.ToDomain()
	return &sub, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, itemPath("subscriptions", id))
}

func (r *subscriptionRepository) Process(ctx context.Context, id string) error {
	return r.api.Post(ctx, itemPath("subscriptions", id, "process"), nil, nil)
}

func (r *subscriptionRepository) ProcessDue(ctx context.Context) error {
	return r.api.Post(ctx, "subscriptions/process-due", nil, nil)
}

// GetSummary falls back to summarizing the full list locally when the
// server has no summary endpoint.
func (r *subscriptionRepository) GetSummary(ctx context.Context) (*models.SubscriptionSummary, error) {
	var resp dto.SubscriptionSummaryDTO
	err := r.api.Get(ctx, "subscriptions/summary", nil, &resp)
	if isNotFound(err) {
		subs, err := r.GetAll(ctx, SubscriptionFilter{})
		if err != nil {
			return nil, err
		}
		summary := derived.SummarizeSubscriptions(subs)
		return &summary, nil
	}
	if err != nil {
		return nil, err
	}
	summary := resp.ToDomain()
	return &summary, nil
}

func isNotFound(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.ErrHTTP.Code && appErr.StatusCode == http.StatusNotFound
}
