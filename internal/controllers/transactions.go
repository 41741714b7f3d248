package controllers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fintrack/internal/derived"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

type TransactionsController struct {
	stateBox[[]models.Transaction]
	repo repository.TransactionRepository
	log  *zap.SugaredLogger

	filterMu sync.Mutex
	filter   repository.TransactionFilter
}

// NewTransactionsController creates a new TransactionsController.
func NewTransactionsController(repo repository.TransactionRepository) *TransactionsController {
	return &TransactionsController{repo: repo, log: logger.Named("controllers")}
}

// SetFilter replaces the server-side filter used by Load.
func (c *TransactionsController) SetFilter(f repository.TransactionFilter) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.filter = f
}

// ApplyTypeFilter narrows the list to one type and reloads. A nil type
// clears the filter.
func (c *TransactionsController) ApplyTypeFilter(ctx context.Context, t *models.TransactionType) {
	c.filterMu.Lock()
	c.filter.Type = t
	c.filterMu.Unlock()
	c.Load(ctx)
}

func (c *TransactionsController) Load(ctx context.Context) {
	c.filterMu.Lock()
	filter := c.filter
	c.filterMu.Unlock()

	c.begin()
	txs, err := c.repo.GetAll(ctx, filter)
	if err != nil {
		c.log.Errorw("failed to load transactions", "error", err)
		c.fail(err)
		return
	}
	c.succeed(txs)
}

// Search filters the loaded transactions by description, category name or
// account name.
func (c *TransactionsController) Search(query string) []models.Transaction {
	return derived.SearchTransactions(c.State().Data, query)
}

func (c *TransactionsController) Create(ctx context.Context, in repository.TransactionInput) error {
	return mutate(ctx, c, c.log, "create transaction", func() error {
		_, err := c.repo.Create(ctx, in)
		return err
	})
}

func (c *TransactionsController) CreateTransfer(ctx context.Context, in repository.TransferInput) error {
	return mutate(ctx, c, c.log, "create transfer", func() error {
		return c.repo.CreateTransfer(ctx, in)
	})
}
