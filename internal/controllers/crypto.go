package controllers

import (
	"context"

	"go.uber.org/zap"

	"fintrack/internal/derived"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

type CryptoController struct {
	stateBox[[]models.CryptoHolding]
	repo repository.CryptoRepository
	log  *zap.SugaredLogger
}

// NewCryptoController creates a new CryptoController.
func NewCryptoController(repo repository.CryptoRepository) *CryptoController {
	return &CryptoController{repo: repo, log: logger.Named("controllers")}
}

func (c *CryptoController) Load(ctx context.Context) {
	c.begin()
	holdings, err := c.repo.GetPortfolio(ctx)
	if err != nil {
		c.log.Errorw("failed to load crypto portfolio", "error", err)
		c.fail(err)
		return
	}
	c.succeed(holdings)
}

// Totals sums the loaded holdings.
func (c *CryptoController) Totals() derived.PortfolioSummary {
	return derived.PortfolioTotals(c.State().Data)
}

func (c *CryptoController) Create(ctx context.Context, in repository.CryptoInput) error {
	return mutate(ctx, c, c.log, "create crypto holding", func() error {
		_, err := c.repo.Create(ctx, in)
		return err
	})
}

func (c *CryptoController) Sell(ctx context.Context, id string, terms repository.SaleTerms) error {
	return mutate(ctx, c, c.log, "sell crypto", func() error {
		return c.repo.Sell(ctx, id, terms)
	})
}

// RefreshPrices asks the server to reprice the portfolio. Failures are only
// logged; the current holdings stay on screen.
func (c *CryptoController) RefreshPrices(ctx context.Context) {
	holdings, err := c.repo.UpdatePrices(ctx)
	if err != nil {
		c.log.Errorw("failed to update crypto prices", "error", err)
		return
	}
	c.succeed(holdings)
}
