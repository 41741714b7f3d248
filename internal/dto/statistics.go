package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

const (
	defaultStatisticsPeriod = "month"
	unknownBreakdownName    = "Unknown"
)

// StatisticsDTO mirrors the statistics response. Every field is optional: a
// partial response still maps to a complete FinancialStatistics.
type StatisticsDTO struct {
	Period                  *string                `json:"period"`
	DateRange               *DateRangeDTO          `json:"date_range"`
	Summary                 *StatsSummaryDTO       `json:"summary"`
	CategoryBreakdown       []CategoryBreakdownDTO `json:"category_breakdown"`
	IncomeCategoryBreakdown []CategoryBreakdownDTO `json:"income_category_breakdown"`
	MonthlyTrends           []MonthlyTrendDTO      `json:"monthly_trends"`
	AccountBalances         []AccountBalanceDTO    `json:"account_balances"`
	DailyTrend              []DailyTrendDTO        `json:"daily_trend"`
	TopSpending             []TopSpendingDTO       `json:"top_spending"`
}

func (d StatisticsDTO) ToDomain() models.FinancialStatistics {
	stats := models.FinancialStatistics{
		Period:                  strOr(d.Period, defaultStatisticsPeriod),
		CategoryBreakdown:       mapBreakdown(d.CategoryBreakdown),
		IncomeCategoryBreakdown: mapBreakdown(d.IncomeCategoryBreakdown),
		MonthlyTrends:           make([]models.MonthlyTrend, 0, len(d.MonthlyTrends)),
		AccountBalances:         make([]models.AccountBalance, 0, len(d.AccountBalances)),
		DailyTrend:              make([]models.DailyTrendItem, 0, len(d.DailyTrend)),
		TopSpending:             make([]models.TopSpendingItem, 0, len(d.TopSpending)),
	}
	if d.DateRange != nil {
		r := d.DateRange.ToDomain()
		stats.DateRange = &r
	}
	if d.Summary != nil {
		stats.Summary = d.Summary.ToDomain()
	}
	for _, m := range d.MonthlyTrends {
		stats.MonthlyTrends = append(stats.MonthlyTrends, m.ToDomain())
	}
	for _, a := range d.AccountBalances {
		stats.AccountBalances = append(stats.AccountBalances, a.ToDomain())
	}
	for _, t := range d.DailyTrend {
		stats.DailyTrend = append(stats.DailyTrend, t.ToDomain())
	}
	for _, t := range d.TopSpending {
		stats.TopSpending = append(stats.TopSpending, t.ToDomain())
	}
	return stats
}

func mapBreakdown(items []CategoryBreakdownDTO) []models.CategoryBreakdownItem {
	out := make([]models.CategoryBreakdownItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToDomain())
	}
	return out
}

// DateRangeDTO bounds are optional; a missing bound maps to the zero time.
type DateRangeDTO struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func (d DateRangeDTO) ToDomain() models.DateRange {
	var r models.DateRange
	if d.Start != nil {
		r.Start = *d.Start
	}
	if d.End != nil {
		r.End = *d.End
	}
	return r
}

type StatsSummaryDTO struct {
	TotalIncome      *decimal.Decimal `json:"total_income"`
	TotalExpenses    *decimal.Decimal `json:"total_expenses"`
	NetIncome        *decimal.Decimal `json:"net_income"`
	SavingsRate      *decimal.Decimal `json:"savings_rate"`
	NetWorth         *decimal.Decimal `json:"net_worth"`
	TransactionCount *int             `json:"transaction_count"`
	AvgExpenseAmount *decimal.Decimal `json:"avg_expense_amount"`
	AvgIncomeAmount  *decimal.Decimal `json:"avg_income_amount"`
}

func (d StatsSummaryDTO) ToDomain() models.StatsSummary {
	return models.StatsSummary{
		TotalIncome:      decOrZero(d.TotalIncome),
		TotalExpenses:    decOrZero(d.TotalExpenses),
		NetIncome:        decOrZero(d.NetIncome),
		SavingsRate:      decOrZero(d.SavingsRate),
		NetWorth:         decOrZero(d.NetWorth),
		TransactionCount: intOrZero(d.TransactionCount),
		AvgExpenseAmount: decOrZero(d.AvgExpenseAmount),
		AvgIncomeAmount:  decOrZero(d.AvgIncomeAmount),
	}
}

type CategoryBreakdownDTO struct {
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
	Count  *int             `json:"count"`
	Color  *string          `json:"color"`
}

func (d CategoryBreakdownDTO) ToDomain() models.CategoryBreakdownItem {
	return models.CategoryBreakdownItem{
		Name:   strOr(d.Name, unknownBreakdownName),
		Amount: decOrZero(d.Amount),
		Count:  intOrZero(d.Count),
		Color:  d.Color,
	}
}

type MonthlyTrendDTO struct {
	Month    *string          `json:"month"`
	Income   *decimal.Decimal `json:"income"`
	Expenses *decimal.Decimal `json:"expenses"`
	Net      *decimal.Decimal `json:"net"`
}

func (d MonthlyTrendDTO) ToDomain() models.MonthlyTrend {
	return models.MonthlyTrend{
		Month:    strOr(d.Month, ""),
		Income:   decOrZero(d.Income),
		Expenses: decOrZero(d.Expenses),
		Net:      decOrZero(d.Net),
	}
}

type AccountBalanceDTO struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
	Type    *string          `json:"type"`
}

func (d AccountBalanceDTO) ToDomain() models.AccountBalance {
	return models.AccountBalance{
		Name:    strOr(d.Name, ""),
		Balance: decOrZero(d.Balance),
		Type:    strOr(d.Type, ""),
	}
}

type DailyTrendDTO struct {
	Date   *string          `json:"date"`
	Amount *decimal.Decimal `json:"amount"`
}

func (d DailyTrendDTO) ToDomain() models.DailyTrendItem {
	return models.DailyTrendItem{
		Date:   strOr(d.Date, ""),
		Amount: decOrZero(d.Amount),
	}
}

type TopSpendingDTO struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
}

func (d TopSpendingDTO) ToDomain() models.TopSpendingItem {
	return models.TopSpendingItem{
		Description: strOr(d.Description, ""),
		Amount:      decOrZero(d.Amount),
		Category:    d.Category,
		Date:        d.Date,
	}
}
