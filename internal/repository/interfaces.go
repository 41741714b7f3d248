// Package repository wraps the remote API's resource endpoints. Each
// repository translates domain parameters into request DTOs and maps
// responses back into domain entities. Transport errors pass through
// unchanged unless a method documents otherwise.
package repository

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Requester is the transport contract repositories depend on.
// *transport.Client implements it.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
	Download(ctx context.Context, path string) ([]byte, error)
}

// AccountRepository defines the account endpoints.
type AccountRepository interface {
	// GetAll returns the accounts and the server-computed total balance.
	GetAll(ctx context.Context) ([]models.Account, decimal.Decimal, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, in AccountInput) (*models.Account, error)
	Update(ctx context.Context, id string, in AccountUpdate) (*models.Account, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the category endpoints.
type CategoryRepository interface {
	// GetAll lists categories, optionally restricted to one type.
	GetAll(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, in CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id string, in CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines the transaction and transfer endpoints.
type TransactionRepository interface {
	GetAll(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)
	Create(ctx context.Context, in TransactionInput) (*models.Transaction, error)
	CreateTransfer(ctx context.Context, in TransferInput) error
}

// SubscriptionRepository defines the subscription endpoints.
type SubscriptionRepository interface {
	GetAll(ctx context.Context, filter SubscriptionFilter) ([]models.Subscription, error)
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	Create(ctx context.Context, in SubscriptionInput) (*models.Subscription, error)
	Update(ctx context.Context, id string, in SubscriptionUpdate) (*models.Subscription, error)
	Delete(ctx context.Context, id string) error
	// Process runs one billing cycle for the subscription.
	Process(ctx context.Context, id string) error
	// ProcessDue asks the server to bill every subscription that is due.
	ProcessDue(ctx context.Context) error
	GetSummary(ctx context.Context) (*models.SubscriptionSummary, error)
}

// DebtRepository defines the debt endpoints.
type DebtRepository interface {
	// GetAll lists debts; a nil isPaid lists both paid and unpaid.
	GetAll(ctx context.Context, isPaid *bool) ([]models.Debt, error)
	GetByID(ctx context.Context, id string) (*models.Debt, error)
	Create(ctx context.Context, in DebtInput) (*models.Debt, error)
	Update(ctx context.Context, id string, in DebtUpdate) (*models.Debt, error)
	Delete(ctx context.Context, id string) error
	// MarkAsPaid posts the payment against both the account and the category.
	MarkAsPaid(ctx context.Context, id, accountID, categoryID string) (*models.Debt, error)
	GetSummary(ctx context.Context) (*models.DebtSummary, error)
}

// CryptoRepository defines the crypto portfolio endpoints.
type CryptoRepository interface {
	GetPortfolio(ctx context.Context) ([]models.CryptoHolding, error)
	Create(ctx context.Context, in CryptoInput) (*models.CryptoHolding, error)
	// Sell liquidates the whole holding on the given terms.
	Sell(ctx context.Context, id string, terms SaleTerms) error
	// UpdatePrices refreshes prices server-side and returns the re-fetched
	// portfolio.
	UpdatePrices(ctx context.Context) ([]models.CryptoHolding, error)
}

// StatisticsRepository defines the statistics endpoint.
type StatisticsRepository interface {
	GetStatistics(ctx context.Context, period models.Period) (*models.FinancialStatistics, error)
}

// AuthRepository defines the authentication endpoints.
type AuthRepository interface {
	SignIn(ctx context.Context, email, password string) (*models.AuthSession, error)
	SignUp(ctx context.Context, email, password, name string) (*models.AuthSession, error)
	// SignOut is best effort remotely; the stored token is always cleared.
	SignOut(ctx context.Context)
	// GetSession returns nil without a network call when no token is stored.
	GetSession(ctx context.Context) (*models.AuthSession, error)
}

// ExportRepository downloads the user's data.
type ExportRepository interface {
	// Export writes the export into dir and returns the file path.
	Export(ctx context.Context, dir string) (string, error)
}

// itemPath builds "collection/<id>[/action]" with the ID escaped as a
// single path segment.
func itemPath(collection, id string, action ...string) string {
	p := collection + "/" + url.PathEscape(id)
	for _, a := range action {
		p += "/" + a
	}
	return p
}
