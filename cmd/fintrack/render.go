package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"fintrack/internal/controllers"
	"fintrack/internal/derived"
	"fintrack/internal/models"
)

const dateLayout = "2006-01-02"

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func renderAccounts(out io.Writer, data controllers.AccountsData) {
	w := table(out)
	fmt.Fprintln(w, "NAME\tTYPE\tBALANCE\tCURRENCY\tACTIVE")
	for _, a := range data.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", a.Name, a.Type.Title(), money(a.Balance), a.Currency, a.IsActive)
	}
	w.Flush()
	fmt.Fprintf(out, "Total balance: %s\n", money(data.TotalBalance))
}

func renderCategories(out io.Writer, categories []models.Category) {
	w := table(out)
	fmt.Fprintln(w, "NAME\tTYPE\tCOLOR\tPARENT")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Type, orDash(c.Color), orDash(c.ParentID))
	}
	w.Flush()
}

func renderTransactions(out io.Writer, txs []models.Transaction) {
	w := table(out)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tDESCRIPTION\tACCOUNT\tCATEGORY")
	for _, tx := range txs {
		account, category := "-", "-"
		if tx.Account != nil {
			account = tx.Account.Name
		}
		if tx.Category != nil {
			category = tx.Category.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(dateLayout), tx.Type, money(tx.Amount), tx.Description, account, category)
	}
	w.Flush()
}

func renderSubscriptions(out io.Writer, data controllers.SubscriptionsData) {
	w := table(out)
	fmt.Fprintln(w, "NAME\tAMOUNT\tFREQUENCY\tSTATUS\tNEXT BILLING")
	for _, s := range data.Subscriptions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Name, money(s.Amount), s.Frequency, s.Status, s.NextBillingDate.Format(dateLayout))
	}
	w.Flush()
	if sum := data.Summary; sum != nil {
		fmt.Fprintf(out, "Active: %d  Monthly: %s  Yearly: %s\n",
			sum.Count(), money(sum.TotalMonthly()), money(sum.TotalYearly()))
	}
}

func renderDebts(out io.Writer, data controllers.DebtsData) {
	w := table(out)
	fmt.Fprintln(w, "PERSON\tAMOUNT\tDUE\tPAID")
	for _, d := range data.Debts {
		due := "-"
		if d.DueDate != nil {
			due = d.DueDate.Format(dateLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", d.PersonName, money(d.Amount), due, d.IsPaid)
	}
	w.Flush()
	if sum := data.Summary; sum != nil {
		fmt.Fprintf(out, "Owed: %s  Paid: %s  Debts: %d\n",
			money(sum.TotalOwed()), money(sum.TotalPaid()), sum.Count())
	}
}

func renderPortfolio(out io.Writer, holdings []models.CryptoHolding, totals derived.PortfolioSummary) {
	w := table(out)
	fmt.Fprintln(w, "SYMBOL\tAMOUNT\tVALUE\tP/L\tP/L %")
	for _, h := range holdings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\n",
			h.Symbol, h.Amount.String(), money(h.CurrentValue()), money(h.ProfitLoss()),
			h.ProfitLossPercentage().StringFixed(2))
	}
	w.Flush()
	fmt.Fprintf(out, "Value: %s  Cost: %s  P/L: %s (%s%%)\n",
		money(totals.TotalValue), money(totals.TotalCost), money(totals.TotalProfitLoss),
		totals.ProfitLossPercentage.StringFixed(2))
}

func renderSummary(out io.Writer, s *models.FinancialStatistics) {
	fmt.Fprintf(out, "Period: %s\n", s.Period)
	fmt.Fprintf(out, "Income: %s  Expenses: %s  Balance: %s  Net worth: %s\n",
		money(s.Income()), money(s.Expenses()), money(s.Balance()), money(s.NetWorth()))
}

func renderStatistics(out io.Writer, s *models.FinancialStatistics) {
	renderSummary(out, s)
	fmt.Fprintf(out, "Savings rate: %s%%  Transactions: %d\n",
		s.Summary.SavingsRate.StringFixed(2), s.Summary.TransactionCount)

	if len(s.CategoryBreakdown) > 0 {
		fmt.Fprintln(out)
		w := table(out)
		fmt.Fprintln(w, "CATEGORY\tSPENT\tCOUNT")
		for _, item := range s.CategoryBreakdown {
			fmt.Fprintf(w, "%s\t%s\t%d\n", item.Name, money(item.Amount), item.Count)
		}
		w.Flush()
	}
	if len(s.MonthlyTrends) > 0 {
		fmt.Fprintln(out)
		w := table(out)
		fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET")
		for _, m := range s.MonthlyTrends {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Month, money(m.Income), money(m.Expenses), money(m.Net))
		}
		w.Flush()
	}
}
