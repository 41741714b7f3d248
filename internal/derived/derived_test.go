package derived

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func TestPortfolioTotals(t *testing.T) {
	t.Run("sums holdings", func(t *testing.T) {
		holdings := []models.CryptoHolding{
			{Amount: dec("2"), PurchasePrice: dec("100"), PurchaseFee: ptr(dec("10")), CurrentPrice: ptr(dec("150"))},
			{Amount: dec("1"), PurchasePrice: dec("90"), CurrentPrice: ptr(dec("60"))},
		}
		got := PortfolioTotals(holdings)
		if !got.TotalValue.Equal(dec("360")) {
			t.Errorf("expected total value 360, got %s", got.TotalValue)
		}
		if !got.TotalCost.Equal(dec("300")) {
			t.Errorf("expected total cost 300, got %s", got.TotalCost)
		}
		if !got.TotalProfitLoss.Equal(dec("60")) {
			t.Errorf("expected profit 60, got %s", got.TotalProfitLoss)
		}
		if !got.ProfitLossPercentage.Equal(dec("20")) {
			t.Errorf("expected 20%%, got %s", got.ProfitLossPercentage)
		}
		if got.HoldingCount != 2 {
			t.Errorf("expected 2 holdings, got %d", got.HoldingCount)
		}
	})

	t.Run("empty portfolio", func(t *testing.T) {
		got := PortfolioTotals(nil)
		if !got.ProfitLossPercentage.IsZero() || !got.TotalValue.IsZero() {
			t.Errorf("expected zero totals, got %+v", got)
		}
	})
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Description: "Weekly groceries", Type: models.TransactionTypeExpense,
			Category: &models.Category{Name: "Food"}, Account: &models.Account{Name: "Checking"}},
		{ID: "t2", Description: "Salary", Type: models.TransactionTypeIncome,
			Account: &models.Account{Name: "Payroll Savings"}},
		{ID: "t3", Description: "Move to savings", Type: models.TransactionTypeTransfer},
	}
}

func TestSearchTransactions(t *testing.T) {
	txs := sampleTransactions()

	tests := []struct {
		query string
		want  []string
	}{
		{"GROCER", []string{"t1"}},
		{"food", []string{"t1"}},
		{"savings", []string{"t2", "t3"}},
		{"checking", []string{"t1"}},
		{"rent", nil},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := SearchTransactions(txs, tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}

	t.Run("empty query", func(t *testing.T) {
		if got := SearchTransactions(txs, "  "); len(got) != len(txs) {
			t.Errorf("expected all %d transactions, got %d", len(txs), len(got))
		}
	})
}

func TestFilters(t *testing.T) {
	income := FilterTransactionsByType(sampleTransactions(), models.TransactionTypeIncome)
	if len(income) != 1 || income[0].ID != "t2" {
		t.Errorf("expected only t2, got %+v", income)
	}

	categories := []models.Category{
		{ID: "c1", Type: models.CategoryTypeExpense},
		{ID: "c2", Type: models.CategoryTypeIncome},
		{ID: "c3", Type: models.CategoryTypeExpense},
	}
	if got := CategoriesByType(categories, models.CategoryTypeExpense); len(got) != 2 {
		t.Errorf("expected 2 expense categories, got %d", len(got))
	}
}

func TestValidateCategoryTree(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		categories := []models.Category{
			{ID: "root"},
			{ID: "child", ParentID: ptr("root")},
			{ID: "grandchild", ParentID: ptr("child")},
		}
		if issues := ValidateCategoryTree(categories); len(issues) != 0 {
			t.Errorf("expected no issues, got %v", issues)
		}
	})

	t.Run("missing parent and cycle", func(t *testing.T) {
		categories := []models.Category{
			{ID: "orphan", ParentID: ptr("gone")},
			{ID: "a", ParentID: ptr("b")},
			{ID: "b", ParentID: ptr("a")},
			{ID: "leaf", ParentID: ptr("a")},
			{ID: "self", ParentID: ptr("self")},
		}
		issues := ValidateCategoryTree(categories)
		got := make(map[string]string, len(issues))
		for _, issue := range issues {
			got[issue.CategoryID] = issue.Problem
		}
		want := map[string]string{
			"orphan": ProblemMissingParent,
			"a":      ProblemCycle,
			"b":      ProblemCycle,
			"self":   ProblemCycle,
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d issues, got %v", len(want), issues)
		}
		for id, problem := range want {
			if got[id] != problem {
				t.Errorf("%s: expected %q, got %q", id, problem, got[id])
			}
		}
	})
}

func TestSummarizeSubscriptions(t *testing.T) {
	jan := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	subs := []models.Subscription{
		{Amount: dec("12"), Frequency: models.FrequencyWeekly, Status: models.SubscriptionActive, NextBillingDate: feb},
		{Amount: dec("15"), Frequency: models.FrequencyMonthly, Status: models.SubscriptionActive, NextBillingDate: jan},
		{Amount: dec("30"), Frequency: models.FrequencyQuarterly, Status: models.SubscriptionActive, NextBillingDate: feb},
		{Amount: dec("120"), Frequency: models.FrequencyYearly, Status: models.SubscriptionActive, NextBillingDate: feb},
		{Amount: dec("99"), Frequency: models.FrequencyMonthly, Status: models.SubscriptionPaused, NextBillingDate: jan.AddDate(0, 0, -10)},
		{Amount: dec("50"), Frequency: models.FrequencyMonthly, Status: models.SubscriptionCancelled, NextBillingDate: jan},
	}

	got := SummarizeSubscriptions(subs)
	if got.TotalSubscriptions != 6 || got.ActiveSubscriptions != 4 || got.PausedSubscriptions != 1 || got.CancelledSubscriptions != 1 {
		t.Errorf("unexpected counts %+v", got)
	}
	if !got.TotalMonthly().Equal(dec("87")) {
		t.Errorf("expected monthly 87, got %s", got.TotalMonthly())
	}
	if got.NextBillingDate == nil || !got.NextBillingDate.Equal(jan) {
		t.Errorf("expected next billing %v, got %v", jan, got.NextBillingDate)
	}

	if empty := SummarizeSubscriptions(nil); empty.NextBillingDate != nil || !empty.TotalMonthly().IsZero() {
		t.Errorf("expected empty summary, got %+v", empty)
	}
}

func TestSummarizeDebts(t *testing.T) {
	debts := []models.Debt{
		{Amount: dec("100"), IsPaid: true},
		{Amount: dec("40.50")},
		{Amount: dec("9.50")},
	}
	got := SummarizeDebts(debts)
	if got.TotalDebts != 3 || got.PaidDebts != 1 || got.UnpaidDebts != 2 {
		t.Errorf("unexpected counts %+v", got)
	}
	if !got.TotalOwed().Equal(dec("50")) {
		t.Errorf("expected owed 50, got %s", got.TotalOwed())
	}
	if !got.TotalAmount.Equal(dec("150")) {
		t.Errorf("expected total 150, got %s", got.TotalAmount)
	}
}
