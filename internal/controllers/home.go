package controllers

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/transport"
)

// RecentTransactionLimit is how many transactions the home screen shows.
const RecentTransactionLimit = 5

// HomeData is the home screen payload: all-time statistics and the newest
// transactions.
type HomeData struct {
	Statistics *models.FinancialStatistics
	Recent     []models.Transaction
}

type HomeController struct {
	stateBox[HomeData]
	stats repository.StatisticsRepository
	txs   repository.TransactionRepository
	log   *zap.SugaredLogger
}

// NewHomeController creates a new HomeController.
func NewHomeController(stats repository.StatisticsRepository, txs repository.TransactionRepository) *HomeController {
	return &HomeController{stats: stats, txs: txs, log: logger.Named("controllers")}
}

// Load fetches statistics and transactions concurrently and joins them.
func (c *HomeController) Load(ctx context.Context) {
	prev := c.begin()
	var data HomeData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := c.stats.GetStatistics(gctx, models.PeriodAll)
		data.Statistics = stats
		return err
	})
	g.Go(func() error {
		txs, err := c.txs.GetAll(gctx, repository.TransactionFilter{})
		if len(txs) > RecentTransactionLimit {
			txs = txs[:RecentTransactionLimit]
		}
		data.Recent = txs
		return err
	})

	err := g.Wait()
	switch {
	case transport.IsCancelled(err):
		c.restore(prev)
	case err != nil:
		c.log.Errorw("failed to load home", "error", err)
		c.fail(err)
	default:
		c.succeed(data)
	}
}
