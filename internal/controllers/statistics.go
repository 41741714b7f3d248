package controllers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/transport"
)

// StatisticsController loads statistics for a selectable period.
type StatisticsController struct {
	stateBox[*models.FinancialStatistics]
	repo repository.StatisticsRepository
	log  *zap.SugaredLogger

	periodMu sync.Mutex
	period   models.Period
}

// NewStatisticsController creates a controller for the current month.
func NewStatisticsController(repo repository.StatisticsRepository) *StatisticsController {
	return &StatisticsController{
		repo:   repo,
		log:    logger.Named("controllers"),
		period: models.PeriodMonth,
	}
}

func (c *StatisticsController) Period() models.Period {
	c.periodMu.Lock()
	defer c.periodMu.Unlock()
	return c.period
}

// Load fetches statistics for the selected period. A cancelled load is
// dropped and the previous state restored.
func (c *StatisticsController) Load(ctx context.Context) {
	period := c.Period()
	prev := c.begin()
	stats, err := c.repo.GetStatistics(ctx, period)
	switch {
	case transport.IsCancelled(err):
		c.restore(prev)
	case err != nil:
		c.log.Errorw("failed to load statistics", "period", period, "error", err)
		c.fail(err)
	default:
		c.succeed(stats)
	}
}

// ChangePeriod selects a new period and reloads.
func (c *StatisticsController) ChangePeriod(ctx context.Context, p models.Period) {
	c.periodMu.Lock()
	c.period = p
	c.periodMu.Unlock()
	c.Load(ctx)
}
