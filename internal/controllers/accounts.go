package controllers

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// AccountsData is the accounts screen payload.
type AccountsData struct {
	Accounts     []models.Account
	TotalBalance decimal.Decimal
}

type AccountsController struct {
	stateBox[AccountsData]
	repo repository.AccountRepository
	log  *zap.SugaredLogger
}

// NewAccountsController creates a new AccountsController.
func NewAccountsController(repo repository.AccountRepository) *AccountsController {
	return &AccountsController{repo: repo, log: logger.Named("controllers")}
}

func (c *AccountsController) Load(ctx context.Context) {
	c.begin()
	accounts, total, err := c.repo.GetAll(ctx)
	if err != nil {
		c.log.Errorw("failed to load accounts", "error", err)
		c.fail(err)
		return
	}
	c.succeed(AccountsData{Accounts: accounts, TotalBalance: total})
}

func (c *AccountsController) Create(ctx context.Context, in repository.AccountInput) error {
	return mutate(ctx, c, c.log, "create account", func() error {
		_, err := c.repo.Create(ctx, in)
		return err
	})
}

func (c *AccountsController) Update(ctx context.Context, id string, in repository.AccountUpdate) error {
	return mutate(ctx, c, c.log, "update account", func() error {
		_, err := c.repo.Update(ctx, id, in)
		return err
	})
}

func (c *AccountsController) Delete(ctx context.Context, id string) error {
	return mutate(ctx, c, c.log, "delete account", func() error {
		return c.repo.Delete(ctx, id)
	})
}
