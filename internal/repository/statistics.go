package repository

import (
	"context"
	"net/url"

	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type statisticsRepository struct {
	api Requester
}

// NewStatisticsRepository creates a new StatisticsRepository.
func NewStatisticsRepository(api Requester) StatisticsRepository {
	return &statisticsRepository{api: api}
}

func (r *statisticsRepository) GetStatistics(ctx context.Context, period models.Period) (*models.FinancialStatistics, error) {
	var resp dto.StatisticsDTO
	if err := r.api.Get(ctx, "statistics", url.Values{"period": {string(period)}}, &resp); err != nil {
		return nil, err
	}
	stats := resp.ToDomain()
	return &stats, nil
}
