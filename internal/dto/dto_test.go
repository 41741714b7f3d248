package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("failed to decode %s: %v", raw, err)
	}
	return v
}

func TestStatisticsDefaults(t *testing.T) {
	t.Run("null breakdown maps to empty list", func(t *testing.T) {
		d := decode[StatisticsDTO](t, `{"period":"year","category_breakdown":null}`)
		stats := d.ToDomain()

		if stats.CategoryBreakdown == nil || len(stats.CategoryBreakdown) != 0 {
			t.Errorf("expected empty category breakdown, got %#v", stats.CategoryBreakdown)
		}
		if stats.Period != "year" {
			t.Errorf("expected period year, got %s", stats.Period)
		}
	})

	t.Run("empty object", func(t *testing.T) {
		stats := decode[StatisticsDTO](t, `{}`).ToDomain()

		if stats.Period != "month" {
			t.Errorf("expected default period month, got %s", stats.Period)
		}
		if stats.DateRange != nil {
			t.Errorf("expected no date range, got %v", stats.DateRange)
		}
		if !stats.Income().IsZero() || !stats.Expenses().IsZero() || !stats.Balance().IsZero() || !stats.NetWorth().IsZero() {
			t.Error("expected zero summary")
		}
		if stats.Summary.TransactionCount != 0 {
			t.Errorf("expected 0 transactions, got %d", stats.Summary.TransactionCount)
		}
		lists := map[string]int{
			"income_category_breakdown": len(stats.IncomeCategoryBreakdown),
			"monthly_trends":            len(stats.MonthlyTrends),
			"account_balances":          len(stats.AccountBalances),
			"daily_trend":               len(stats.DailyTrend),
			"top_spending":              len(stats.TopSpending),
		}
		for name, n := range lists {
			if n != 0 {
				t.Errorf("expected empty %s, got %d items", name, n)
			}
		}
		if stats.TopSpending == nil || stats.MonthlyTrends == nil {
			t.Error("expected non-nil empty lists")
		}
	})

	t.Run("partial items", func(t *testing.T) {
		stats := decode[StatisticsDTO](t, `{
			"summary": {"total_income": 1200.5, "net_income": 200},
			"category_breakdown": [{"amount": 40}],
			"monthly_trends": [{"income": 10}],
			"account_balances": [{}],
			"top_spending": [{"amount": 99.99, "category": "Food"}]
		}`).ToDomain()

		if !stats.Income().Equal(decimal.RequireFromString("1200.5")) {
			t.Errorf("expected income 1200.5, got %s", stats.Income())
		}
		if !stats.Expenses().IsZero() {
			t.Errorf("expected zero expenses, got %s", stats.Expenses())
		}
		if got := stats.CategoryBreakdown[0].Name; got != "Unknown" {
			t.Errorf("expected breakdown name Unknown, got %q", got)
		}
		if stats.CategoryBreakdown[0].Count != 0 {
			t.Errorf("expected count 0, got %d", stats.CategoryBreakdown[0].Count)
		}
		if stats.MonthlyTrends[0].Month != "" {
			t.Errorf("expected empty month, got %q", stats.MonthlyTrends[0].Month)
		}
		if stats.AccountBalances[0].Type != "" || !stats.AccountBalances[0].Balance.IsZero() {
			t.Errorf("expected zero account balance, got %+v", stats.AccountBalances[0])
		}
		top := stats.TopSpending[0]
		if top.Description != "" || top.Category == nil || *top.Category != "Food" || top.Date != nil {
			t.Errorf("unexpected top spending item %+v", top)
		}
	})
}

func TestUnknownEnumsFallBack(t *testing.T) {
	account := decode[AccountDTO](t, `{"id":"a1","name":"Broker","type":"BROKERAGE","balance":10,"currency":"USD"}`).ToDomain()
	if account.Type != models.AccountTypeOther {
		t.Errorf("expected OTHER, got %s", account.Type)
	}
	if !account.IsActive {
		t.Error("expected is_active to default to true")
	}

	category := decode[CategoryDTO](t, `{"id":"c1","name":"Gift","type":"GIFT"}`).ToDomain()
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected EXPENSE, got %s", category.Type)
	}

	sub := decode[SubscriptionDTO](t, `{"id":"s1","name":"Gym","amount":30,"frequency":"DAILY","status":"EXPIRED","next_billing_date":"2025-02-01T00:00:00Z"}`).ToDomain()
	if sub.Frequency != models.FrequencyMonthly {
		t.Errorf("expected MONTHLY, got %s", sub.Frequency)
	}
	if sub.Status != models.SubscriptionActive {
		t.Errorf("expected ACTIVE, got %s", sub.Status)
	}
}

func TestTransactionEmbeddedSummaries(t *testing.T) {
	tx := decode[TransactionDTO](t, `{
		"id": "t1",
		"account_id": "a1",
		"amount": 12.34,
		"type": "refund",
		"description": "Coffee",
		"date": "2025-01-10T08:00:00Z",
		"created_at": "2025-01-10T08:00:01Z",
		"account": {"id": "a1", "name": "Wallet", "type": "CASH"},
		"category": {"id": "c1", "name": "Food", "type": "EXPENSE"}
	}`).ToDomain()

	if tx.Type != models.TransactionTypeExpense {
		t.Errorf("expected EXPENSE fallback, got %s", tx.Type)
	}
	if tx.Account == nil {
		t.Fatal("expected embedded account")
	}
	if tx.Account.Currency != "MXN" || !tx.Account.Balance.IsZero() || !tx.Account.IsActive {
		t.Errorf("unexpected embedded account defaults %+v", tx.Account)
	}
	if tx.Category == nil || tx.Category.Name != "Food" || tx.Category.Color != nil {
		t.Errorf("unexpected embedded category %+v", tx.Category)
	}
	if !tx.Date.Equal(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", tx.Date)
	}
}

func TestSummariesDefault(t *testing.T) {
	subs := decode[SubscriptionSummaryDTO](t, `{"active_subscriptions": 2}`).ToDomain()
	if subs.Count() != 2 || !subs.TotalMonthly().IsZero() || subs.NextBillingDate != nil {
		t.Errorf("unexpected subscription summary %+v", subs)
	}

	debts := decode[DebtSummaryDTO](t, `{"unpaid_amount": 50.25}`).ToDomain()
	if !debts.TotalOwed().Equal(decimal.RequireFromString("50.25")) || debts.Count() != 0 {
		t.Errorf("unexpected debt summary %+v", debts)
	}
}

func TestAuthResponseUsesTokenAsSessionID(t *testing.T) {
	resp := decode[AuthResponse](t, `{
		"redirect": false,
		"token": "tok-123",
		"user": {"id": "u1", "email": "ana@example.com", "name": "Ana", "email_verified": true,
		         "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"}
	}`)
	expires := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	session := resp.ToDomain(expires)

	if session.Session.ID != "tok-123" {
		t.Errorf("expected session id tok-123, got %s", session.Session.ID)
	}
	if !session.Session.ExpiresAt.Equal(expires) {
		t.Errorf("expected expiry %v, got %v", expires, session.Session.ExpiresAt)
	}
	if session.User.Email != "ana@example.com" {
		t.Errorf("expected user email, got %s", session.User.Email)
	}
}

func TestRequestsEncodeDecimalsAsNumbers(t *testing.T) {
	body, err := json.Marshal(CreateAccountRequest{
		Name:     "Savings",
		Type:     string(models.AccountTypeSavings),
		Balance:  decimal.RequireFromString("1500.75"),
		Currency: "MXN",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `"balance":1500.75`) {
		t.Errorf("expected numeric balance, got %s", body)
	}
	if strings.Contains(string(body), "description") {
		t.Errorf("expected nil description to be omitted, got %s", body)
	}
}
