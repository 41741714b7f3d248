package controllers

import (
	"context"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// --- mock account repository ---

type mockAccountRepo struct {
	getAllCalls int
	getAllFn    func() ([]models.Account, decimal.Decimal, error)
	createFn    func(in repository.AccountInput) (*models.Account, error)
}

func (m *mockAccountRepo) GetAll(context.Context) ([]models.Account, decimal.Decimal, error) {
	m.getAllCalls++
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return nil, decimal.Zero, nil
}

func (m *mockAccountRepo) GetByID(context.Context, string) (*models.Account, error) {
	return &models.Account{}, nil
}

func (m *mockAccountRepo) Create(_ context.Context, in repository.AccountInput) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.Account{}, nil
}

func (m *mockAccountRepo) Update(context.Context, string, repository.AccountUpdate) (*models.Account, error) {
	return &models.Account{}, nil
}

func (m *mockAccountRepo) Delete(context.Context, string) error { return nil }

var _ repository.AccountRepository = (*mockAccountRepo)(nil)

// --- mock category repository ---

type mockCategoryRepo struct {
	getAllCalls int
	categories  []models.Category
	deleteErr   error
}

func (m *mockCategoryRepo) GetAll(context.Context, *models.CategoryType) ([]models.Category, error) {
	m.getAllCalls++
	return m.categories, nil
}

func (m *mockCategoryRepo) GetByID(context.Context, string) (*models.Category, error) {
	return &models.Category{}, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, in repository.CategoryInput) (*models.Category, error) {
	return &models.Category{ID: "new", Name: in.Name, Type: in.Type}, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id string, in repository.CategoryUpdate) (*models.Category, error) {
	cat := models.Category{ID: id, Type: models.CategoryTypeExpense}
	if in.Name != nil {
		cat.Name = *in.Name
	}
	return &cat, nil
}

func (m *mockCategoryRepo) Delete(context.Context, string) error { return m.deleteErr }

var _ repository.CategoryRepository = (*mockCategoryRepo)(nil)

// --- mock transaction repository ---

type mockTransactionRepo struct {
	lastFilter repository.TransactionFilter
	txs        []models.Transaction
	err        error
}

func (m *mockTransactionRepo) GetAll(_ context.Context, f repository.TransactionFilter) ([]models.Transaction, error) {
	m.lastFilter = f
	return m.txs, m.err
}

func (m *mockTransactionRepo) Create(context.Context, repository.TransactionInput) (*models.Transaction, error) {
	return &models.Transaction{}, nil
}

func (m *mockTransactionRepo) CreateTransfer(context.Context, repository.TransferInput) error {
	return nil
}

var _ repository.TransactionRepository = (*mockTransactionRepo)(nil)

// --- mock statistics repository ---

type mockStatisticsRepo struct {
	periods []models.Period
	fn      func(ctx context.Context) (*models.FinancialStatistics, error)
}

func (m *mockStatisticsRepo) GetStatistics(ctx context.Context, p models.Period) (*models.FinancialStatistics, error) {
	m.periods = append(m.periods, p)
	if m.fn != nil {
		return m.fn(ctx)
	}
	return &models.FinancialStatistics{Period: string(p)}, nil
}

var _ repository.StatisticsRepository = (*mockStatisticsRepo)(nil)

// --- mock debt repository ---

type mockDebtRepo struct {
	lastIsPaid *bool
	debts      []models.Debt
	summaryErr error
}

func (m *mockDebtRepo) GetAll(_ context.Context, isPaid *bool) ([]models.Debt, error) {
	m.lastIsPaid = isPaid
	return m.debts, nil
}

func (m *mockDebtRepo) GetByID(context.Context, string) (*models.Debt, error) {
	return &models.Debt{}, nil
}

func (m *mockDebtRepo) Create(context.Context, repository.DebtInput) (*models.Debt, error) {
	return &models.Debt{}, nil
}

func (m *mockDebtRepo) Update(context.Context, string, repository.DebtUpdate) (*models.Debt, error) {
	return &models.Debt{}, nil
}

func (m *mockDebtRepo) Delete(context.Context, string) error { return nil }

func (m *mockDebtRepo) MarkAsPaid(context.Context, string, string, string) (*models.Debt, error) {
	return &models.Debt{}, nil
}

func (m *mockDebtRepo) GetSummary(context.Context) (*models.DebtSummary, error) {
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}
	return &models.DebtSummary{TotalDebts: len(m.debts)}, nil
}

var _ repository.DebtRepository = (*mockDebtRepo)(nil)

// --- mock subscription repository ---

type mockSubscriptionRepo struct {
	lastFilter repository.SubscriptionFilter
	subs       []models.Subscription
}

func (m *mockSubscriptionRepo) GetAll(_ context.Context, f repository.SubscriptionFilter) ([]models.Subscription, error) {
	m.lastFilter = f
	return m.subs, nil
}

func (m *mockSubscriptionRepo) GetByID(context.Context, string) (*models.Subscription, error) {
	return &models.Subscription{}, nil
}

func (m *mockSubscriptionRepo) Create(context.Context, repository.SubscriptionInput) (*models.Subscription, error) {
	return &models.Subscription{}, nil
}

func (m *mockSubscriptionRepo) Update(context.Context, string, repository.SubscriptionUpdate) (*models.Subscription, error) {
	return &models.Subscription{}, nil
}

func (m *mockSubscriptionRepo) Delete(context.Context, string) error  { return nil }
func (m *mockSubscriptionRepo) Process(context.Context, string) error { return nil }
func (m *mockSubscriptionRepo) ProcessDue(context.Context) error      { return nil }

func (m *mockSubscriptionRepo) GetSummary(context.Context) (*models.SubscriptionSummary, error) {
	return &models.SubscriptionSummary{TotalSubscriptions: len(m.subs)}, nil
}

var _ repository.SubscriptionRepository = (*mockSubscriptionRepo)(nil)

// --- mock crypto repository ---

type mockCryptoRepo struct {
	holdings  []models.CryptoHolding
	updateErr error
}

func (m *mockCryptoRepo) GetPortfolio(context.Context) ([]models.CryptoHolding, error) {
	return m.holdings, nil
}

func (m *mockCryptoRepo) Create(context.Context, repository.CryptoInput) (*models.CryptoHolding, error) {
	return &models.CryptoHolding{}, nil
}

func (m *mockCryptoRepo) Sell(context.Context, string, repository.SaleTerms) error { return nil }

func (m *mockCryptoRepo) UpdatePrices(context.Context) ([]models.CryptoHolding, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.holdings, nil
}

var _ repository.CryptoRepository = (*mockCryptoRepo)(nil)

// --- mock auth repository ---

type mockAuthRepo struct {
	calls      int
	sessionErr error
	signInErr  error
}

func (m *mockAuthRepo) SignIn(_ context.Context, email, _ string) (*models.AuthSession, error) {
	m.calls++
	if m.signInErr != nil {
		return nil, m.signInErr
	}
	return &models.AuthSession{User: models.User{ID: "u1", Email: email}}, nil
}

func (m *mockAuthRepo) SignUp(_ context.Context, email, _, name string) (*models.AuthSession, error) {
	m.calls++
	return &models.AuthSession{User: models.User{ID: "u1", Email: email, Name: name}}, nil
}

func (m *mockAuthRepo) SignOut(context.Context) { m.calls++ }

func (m *mockAuthRepo) GetSession(context.Context) (*models.AuthSession, error) {
	m.calls++
	return nil, m.sessionErr
}

var _ repository.AuthRepository = (*mockAuthRepo)(nil)
