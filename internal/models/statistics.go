package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a server-defined statistics aggregation window.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// FinancialStatistics is a read-only, server-computed snapshot for a period.
type FinancialStatistics struct {
	Period                  string
	DateRange               *DateRange
	Summary                 StatsSummary
	CategoryBreakdown       []CategoryBreakdownItem
	IncomeCategoryBreakdown []CategoryBreakdownItem
	MonthlyTrends           []MonthlyTrend
	AccountBalances         []AccountBalance
	DailyTrend              []DailyTrendItem
	TopSpending             []TopSpendingItem
}

// Income is the period's total income.
func (s FinancialStatistics) Income() decimal.Decimal { return s.Summary.TotalIncome }

// Expenses is the period's total expenses.
func (s FinancialStatistics) Expenses() decimal.Decimal { return s.Summary.TotalExpenses }

// Balance is the period's net income.
func (s FinancialStatistics) Balance() decimal.Decimal { return s.Summary.NetIncome }

// NetWorth is the user's net worth at the end of the period.
func (s FinancialStatistics) NetWorth() decimal.Decimal { return s.Summary.NetWorth }

type DateRange struct {
	Start time.Time
	End   time.Time
}

type StatsSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	SavingsRate      decimal.Decimal
	NetWorth         decimal.Decimal
	TransactionCount int
	AvgExpenseAmount decimal.Decimal
	AvgIncomeAmount  decimal.Decimal
}

type CategoryBreakdownItem struct {
	Name   string
	Amount decimal.Decimal
	Count  int
	Color  *string
}

type MonthlyTrend struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

type AccountBalance struct {
	Name    string
	Balance decimal.Decimal
	Type    string
}

type DailyTrendItem struct {
	Date   string
	Amount decimal.Decimal
}

type TopSpendingItem struct {
	Description string
	Amount      decimal.Decimal
	Category    *string
	Date        *time.Time
}
