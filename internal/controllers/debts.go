package controllers

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// DebtsData is the debts screen payload.
type DebtsData struct {
	Debts   []models.Debt
	Summary *models.DebtSummary
}

// DebtsController lists unpaid debts unless ShowPaid is on.
type DebtsController struct {
	stateBox[DebtsData]
	repo repository.DebtRepository
	log  *zap.SugaredLogger

	filterMu sync.Mutex
	showPaid bool
}

// NewDebtsController creates a new DebtsController.
func NewDebtsController(repo repository.DebtRepository) *DebtsController {
	return &DebtsController{repo: repo, log: logger.Named("controllers")}
}

func (c *DebtsController) SetShowPaid(show bool) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.showPaid = show
}

// Load fetches the list and the summary concurrently.
func (c *DebtsController) Load(ctx context.Context) {
	c.filterMu.Lock()
	var isPaid *bool
	if !c.showPaid {
		unpaid := false
		isPaid = &unpaid
	}
	c.filterMu.Unlock()

	c.begin()
	var data DebtsData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		debts, err := c.repo.GetAll(gctx, isPaid)
		data.Debts = debts
		return err
	})
	g.Go(func() error {
		summary, err := c.repo.GetSummary(gctx)
		data.Summary = summary
		return err
	})
	if err := g.Wait(); err != nil {
		c.log.Errorw("failed to load debts", "error", err)
		c.fail(err)
		return
	}
	c.succeed(data)
}

func (c *DebtsController) Create(ctx context.Context, in repository.DebtInput) error {
	return mutate(ctx, c, c.log, "create debt", func() error {
		_, err := c.repo.Create(ctx, in)
		return err
	})
}

func (c *DebtsController) Update(ctx context.Context, id string, in repository.DebtUpdate) error {
	return mutate(ctx, c, c.log, "update debt", func() error {
		_, err := c.repo.Update(ctx, id, in)
		return err
	})
}

func (c *DebtsController) Delete(ctx context.Context, id string) error {
	return mutate(ctx, c, c.log, "delete debt", func() error {
		return c.repo.Delete(ctx, id)
	})
}

func (c *DebtsController) MarkAsPaid(ctx context.Context, id, accountID, categoryID string) error {
	return mutate(ctx, c, c.log, "mark debt as paid", func() error {
		_, err := c.repo.MarkAsPaid(ctx, id, accountID, categoryID)
		return err
	})
}
