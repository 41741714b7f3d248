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

// SubscriptionsData is the subscriptions screen payload.
type SubscriptionsData struct {
	Subscriptions []models.Subscription
	Summary       *models.SubscriptionSummary
}

type SubscriptionsController struct {
	stateBox[SubscriptionsData]
	repo repository.SubscriptionRepository
	log  *zap.SugaredLogger

	filterMu sync.Mutex
	status   *models.SubscriptionStatus
}

// NewSubscriptionsController creates a new SubscriptionsController.
func NewSubscriptionsController(repo repository.SubscriptionRepository) *SubscriptionsController {
	return &SubscriptionsController{repo: repo, log: logger.Named("controllers")}
}

// SetStatusFilter limits Load to one status; nil loads all.
func (c *SubscriptionsController) SetStatusFilter(status *models.SubscriptionStatus) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.status = status
}

// Load fetches the list and the summary concurrently.
func (c *SubscriptionsController) Load(ctx context.Context) {
	c.filterMu.Lock()
	filter := repository.SubscriptionFilter{Status: c.status}
	c.filterMu.Unlock()

	c.begin()
	var data SubscriptionsData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subs, err := c.repo.GetAll(gctx, filter)
		data.Subscriptions = subs
		return err
	})
	g.Go(func() error {
		summary, err := c.repo.GetSummary(gctx)
		data.Summary = summary
		return err
	})
	if err := g.Wait(); err != nil {
		c.log.Errorw("failed to load subscriptions", "error", err)
		c.fail(err)
		return
	}
	c.succeed(data)
}

func (c *SubscriptionsController) Create(ctx context.Context, in repository.SubscriptionInput) error {
	return mutate(ctx, c, c.log, "create subscription", func() error {
		_, err := c.repo.Create(ctx, in)
		return err
	})
}

func (c *SubscriptionsController) Update(ctx context.Context, id string, in repository.SubscriptionUpdate) error {
	return mutate(ctx, c, c.log, "update subscription", func() error {
		_, err := c.repo.Update(ctx, id, in)
		return err
	})
}

func (c *SubscriptionsController) Delete(ctx context.Context, id string) error {
	return mutate(ctx, c, c.log, "delete subscription", func() error {
		return c.repo.Delete(ctx, id)
	})
}

func (c *SubscriptionsController) Process(ctx context.Context, id string) error {
	return mutate(ctx, c, c.log, "process subscription", func() error {
		return c.repo.Process(ctx, id)
	})
}

func (c *SubscriptionsController) ProcessDue(ctx context.Context) error {
	return mutate(ctx, c, c.log, "process due subscriptions", func() error {
		return c.repo.ProcessDue(ctx)
	})
}
