package stubapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

const topSpendingLimit = 5

var hundred = decimal.NewFromInt(100)

// periodStart returns the first instant of the reporting window containing
// now. ok is false for an unknown period; "all" yields a zero start.
func periodStart(period string, now time.Time) (start time.Time, ok bool) {
	y, m, _ := now.Date()
	loc := now.Location()
	switch period {
	case "month":
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case "quarter":
		q := (int(m)-1)/3*3 + 1
		return time.Date(y, time.Month(q), 1, 0, 0, 0, 0, loc), true
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	case "all":
		return time.Time{}, true
	}
	return time.Time{}, false
}

type breakdownAcc struct {
	name   string
	color  *string
	amount decimal.Decimal
	count  int
}

func ptr[T any](v T) *T { return &v }

// Statistics aggregates the user's transactions inside the period window.
func (s *Store) Statistics(userID, period string) (dto.StatisticsDTO, error) {
	now := s.now().UTC()
	start, ok := periodStart(period, now)
	if !ok {
		return dto.StatisticsDTO{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid period")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)

	colors := make(map[string]*string, len(d.categories))
	for _, c := range d.categories {
		colors[c.ID] = c.Color
	}

	var (
		income, expenses        decimal.Decimal
		incomeCount, expenseCnt int
		count                   int
		expenseBy               = map[string]*breakdownAcc{}
		incomeBy                = map[string]*breakdownAcc{}
		monthly                 = map[string]*dto.MonthlyTrendDTO{}
		daily                   = map[string]decimal.Decimal{}
		spending                []*dto.TransactionDTO
	)

	addBreakdown := func(into map[string]*breakdownAcc, t *dto.TransactionDTO) {
		name := "Uncategorized"
		var color *string
		if t.Category != nil {
			name = t.Category.Name
			color = colors[t.Category.ID]
		}
		acc, ok := into[name]
		if !ok {
			acc = &breakdownAcc{name: name, color: color}
			into[name] = acc
		}
		acc.amount = acc.amount.Add(t.Amount)
		acc.count++
	}

	for _, t := range d.transactions {
		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}
		count++
		month := t.Date.UTC().Format("2006-01")
		trend, ok := monthly[month]
		if !ok {
			trend = &dto.MonthlyTrendDTO{Month: ptr(month), Income: ptr(decimal.Zero), Expenses: ptr(decimal.Zero)}
			monthly[month] = trend
		}
		switch t.Type {
		case "INCOME":
			income = income.Add(t.Amount)
			incomeCount++
			addBreakdown(incomeBy, t)
			*trend.Income = trend.Income.Add(t.Amount)
		case "EXPENSE":
			expenses = expenses.Add(t.Amount)
			expenseCnt++
			addBreakdown(expenseBy, t)
			*trend.Expenses = trend.Expenses.Add(t.Amount)
			day := t.Date.UTC().Format("2006-01-02")
			daily[day] = daily[day].Add(t.Amount)
			spending = append(spending, t)
		}
	}

	net := income.Sub(expenses)
	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = net.Div(income).Mul(hundred).Round(2)
	}
	avgExpense, avgIncome := decimal.Zero, decimal.Zero
	if expenseCnt > 0 {
		avgExpense = expenses.Div(decimal.NewFromInt(int64(expenseCnt))).Round(2)
	}
	if incomeCount > 0 {
		avgIncome = income.Div(decimal.NewFromInt(int64(incomeCount))).Round(2)
	}

	netWorth := decimal.Zero
	balances := make([]dto.AccountBalanceDTO, 0, len(d.accounts))
	for _, a := range d.accounts {
		if a.IsActive != nil && !*a.IsActive {
			continue
		}
		netWorth = netWorth.Add(a.Balance)
		balances = append(balances, dto.AccountBalanceDTO{
			Name:    ptr(a.Name),
			Balance: ptr(a.Balance),
			Type:    ptr(a.Type),
		})
	}

	stats := dto.StatisticsDTO{
		Period: ptr(period),
		Summary: &dto.StatsSummaryDTO{
			TotalIncome:      ptr(income),
			TotalExpenses:    ptr(expenses),
			NetIncome:        ptr(net),
			SavingsRate:      ptr(savingsRate),
			NetWorth:         ptr(netWorth),
			TransactionCount: ptr(count),
			AvgExpenseAmount: ptr(avgExpense),
			AvgIncomeAmount:  ptr(avgIncome),
		},
		CategoryBreakdown:       breakdownList(expenseBy),
		IncomeCategoryBreakdown: breakdownList(incomeBy),
		MonthlyTrends:           make([]dto.MonthlyTrendDTO, 0, len(monthly)),
		AccountBalances:         balances,
		DailyTrend:              make([]dto.DailyTrendDTO, 0, len(daily)),
		TopSpending:             make([]dto.TopSpendingDTO, 0, topSpendingLimit),
	}
	if period != "all" {
		stats.DateRange = &dto.DateRangeDTO{Start: ptr(start), End: ptr(now)}
	}

	for _, trend := range monthly {
		trend.Net = ptr(trend.Income.Sub(*trend.Expenses))
		stats.MonthlyTrends = append(stats.MonthlyTrends, *trend)
	}
	sort.Slice(stats.MonthlyTrends, func(i, j int) bool {
		return *stats.MonthlyTrends[i].Month < *stats.MonthlyTrends[j].Month
	})

	for day, amount := range daily {
		stats.DailyTrend = append(stats.DailyTrend, dto.DailyTrendDTO{Date: ptr(day), Amount: ptr(amount)})
	}
	sort.Slice(stats.DailyTrend, func(i, j int) bool {
		return *stats.DailyTrend[i].Date < *stats.DailyTrend[j].Date
	})

	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].Amount.GreaterThan(spending[j].Amount)
	})
	for _, t := range spending {
		if len(stats.TopSpending) == topSpendingLimit {
			break
		}
		item := dto.TopSpendingDTO{
			Description: ptr(t.Description),
			Amount:      ptr(t.Amount),
			Date:        ptr(t.Date),
		}
		if t.Category != nil {
			item.Category = ptr(t.Category.Name)
		}
		stats.TopSpending = append(stats.TopSpending, item)
	}
	return stats, nil
}

// breakdownList orders categories by amount, largest first.
func breakdownList(by map[string]*breakdownAcc) []dto.CategoryBreakdownDTO {
	accs := make([]*breakdownAcc, 0, len(by))
	for _, acc := range by {
		accs = append(accs, acc)
	}
	sort.Slice(accs, func(i, j int) bool {
		if accs[i].amount.Equal(accs[j].amount) {
			return accs[i].name < accs[j].name
		}
		return accs[i].amount.GreaterThan(accs[j].amount)
	})
	out := make([]dto.CategoryBreakdownDTO, 0, len(accs))
	for _, acc := range accs {
		out = append(out, dto.CategoryBreakdownDTO{
			Name:   ptr(acc.name),
			Amount: ptr(acc.amount),
			Count:  ptr(acc.count),
			Color:  acc.color,
		})
	}
	return out
}

func (s *Server) getStatistics(c *gin.Context) {
	stats, err := s.store.Statistics(userID(c), c.DefaultQuery("period", "month"))
	respond(c, http.StatusOK, stats, err)
}
