package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fintrack/internal/controllers"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// app wires repositories to controllers for one CLI invocation.
type app struct {
	out io.Writer

	auth          *controllers.AuthController
	home          *controllers.HomeController
	accounts      *controllers.AccountsController
	categories    *controllers.CategoriesController
	transactions  *controllers.TransactionsController
	subscriptions *controllers.SubscriptionsController
	debts         *controllers.DebtsController
	crypto        *controllers.CryptoController
	statistics    *controllers.StatisticsController
	export        repository.ExportRepository
}

func newApp(api repository.Requester, tokens repository.TokenStore, out io.Writer) *app {
	stats := repository.NewStatisticsRepository(api)
	txs := repository.NewTransactionRepository(api)
	return &app{
		out:           out,
		auth:          controllers.NewAuthController(repository.NewAuthRepository(api, tokens)),
		home:          controllers.NewHomeController(stats, txs),
		accounts:      controllers.NewAccountsController(repository.NewAccountRepository(api)),
		categories:    controllers.NewCategoriesController(repository.NewCategoryRepository(api)),
		transactions:  controllers.NewTransactionsController(txs),
		subscriptions: controllers.NewSubscriptionsController(repository.NewSubscriptionRepository(api)),
		debts:         controllers.NewDebtsController(repository.NewDebtRepository(api)),
		crypto:        controllers.NewCryptoController(repository.NewCryptoRepository(api)),
		statistics:    controllers.NewStatisticsController(stats),
		export:        repository.NewExportRepository(api),
	}
}

type command struct {
	usage string
	run   func(a *app, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"signup":        {"signup -email E -password P -name N", (*app).signUp},
	"signin":        {"signin -email E -password P", (*app).signIn},
	"signout":       {"signout", (*app).signOut},
	"session":       {"session", (*app).showSession},
	"home":          {"home", (*app).showHome},
	"accounts":      {"accounts", (*app).listAccounts},
	"categories":    {"categories [-type EXPENSE|INCOME] [-check]", (*app).listCategories},
	"transactions":  {"transactions [-type T] [-search Q]", (*app).listTransactions},
	"subscriptions": {"subscriptions [-status S] [-process-due]", (*app).listSubscriptions},
	"debts":         {"debts [-all]", (*app).listDebts},
	"crypto":        {"crypto [-refresh]", (*app).showPortfolio},
	"stats":         {"stats [-period month|quarter|year|all]", (*app).showStatistics},
	"export":        {"export [-dir D]", (*app).exportData},
}

var errUsage = errors.New("usage: fintrack <command> [flags]")

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(a, ctx, args[1:])
}

func (a *app) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(a.out, "usage: fintrack <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// loaded converts a controller's final state into the command's result.
func loaded[T any](s controllers.State[T]) (T, error) {
	if s.Status == controllers.StatusError {
		return s.Data, s.Err
	}
	return s.Data, nil
}

func (a *app) signUp(ctx context.Context, args []string) error {
	fs := newFlags("signup")
	email := fs.String("email", "", "email address")
	password := fs.String("password", os.Getenv("FINTRACK_PASSWORD"), "password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.auth.SignUp(ctx, *email, *password, *name)
	return a.authResult()
}

func (a *app) signIn(ctx context.Context, args []string) error {
	fs := newFlags("signin")
	email := fs.String("email", "", "email address")
	password := fs.String("password", os.Getenv("FINTRACK_PASSWORD"), "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.auth.SignIn(ctx, *email, *password)
	return a.authResult()
}

func (a *app) authResult() error {
	var problems []string
	for _, field := range []string{"email", "password", "name"} {
		if msg := a.auth.FieldError(field); msg != "" {
			problems = append(problems, field+": "+msg)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid input: %s", strings.Join(problems, "; "))
	}

	state := a.auth.State()
	switch state.Status {
	case controllers.AuthAuthenticated:
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", state.User.Name, state.User.Email)
		return nil
	case controllers.AuthUnauthenticated:
		if state.Err != nil {
			return state.Err
		}
		return errors.New("not signed in")
	default:
		return state.Err
	}
}

func (a *app) signOut(ctx context.Context, _ []string) error {
	a.auth.SignOut(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *app) showSession(ctx context.Context, _ []string) error {
	a.auth.CheckSession(ctx)
	state := a.auth.State()
	if state.Status != controllers.AuthAuthenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", state.User.Name, state.User.Email)
	return nil
}

func (a *app) showHome(ctx context.Context, _ []string) error {
	a.home.Load(ctx)
	data, err := loaded(a.home.State())
	if err != nil {
		return err
	}
	if data.Statistics != nil {
		renderSummary(a.out, data.Statistics)
	}
	fmt.Fprintln(a.out)
	renderTransactions(a.out, data.Recent)
	return nil
}

func (a *app) listAccounts(ctx context.Context, _ []string) error {
	a.accounts.Load(ctx)
	data, err := loaded(a.accounts.State())
	if err != nil {
		return err
	}
	renderAccounts(a.out, data)
	return nil
}

func (a *app) listCategories(ctx context.Context, args []string) error {
	fs := newFlags("categories")
	typ := fs.String("type", "", "EXPENSE or INCOME")
	check := fs.Bool("check", false, "report broken parent links")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter *models.CategoryType
	if *typ != "" {
		t := models.ParseCategoryType(*typ)
		filter = &t
	}
	a.categories.Load(ctx, filter)
	data, err := loaded(a.categories.State())
	if err != nil {
		return err
	}
	renderCategories(a.out, data)
	if *check {
		issues := a.categories.TreeIssues()
		for _, issue := range issues {
			fmt.Fprintf(a.out, "issue: %s\n", issue)
		}
		if len(issues) == 0 {
			fmt.Fprintln(a.out, "category tree ok")
		}
	}
	return nil
}

func (a *app) listTransactions(ctx context.Context, args []string) error {
	fs := newFlags("transactions")
	typ := fs.String("type", "", "EXPENSE, INCOME or TRANSFER")
	query := fs.String("search", "", "match description, category or account")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter *models.TransactionType
	if *typ != "" {
		t := models.ParseTransactionType(*typ)
		filter = &t
	}
	a.transactions.ApplyTypeFilter(ctx, filter)
	if _, err := loaded(a.transactions.State()); err != nil {
		return err
	}
	renderTransactions(a.out, a.transactions.Search(*query))
	return nil
}

func (a *app) listSubscriptions(ctx context.Context, args []string) error {
	fs := newFlags("subscriptions")
	status := fs.String("status", "", "ACTIVE, PAUSED or CANCELLED")
	processDue := fs.Bool("process-due", false, "bill every due subscription first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *status != "" {
		s := models.ParseSubscriptionStatus(*status)
		a.subscriptions.SetStatusFilter(&s)
	}
	if *processDue {
		if err := a.subscriptions.ProcessDue(ctx); err != nil {
			return err
		}
	} else {
		a.subscriptions.Load(ctx)
	}
	data, err := loaded(a.subscriptions.State())
	if err != nil {
		return err
	}
	renderSubscriptions(a.out, data)
	return nil
}

func (a *app) listDebts(ctx context.Context, args []string) error {
	fs := newFlags("debts")
	all := fs.Bool("all", false, "include paid debts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.debts.SetShowPaid(*all)
	a.debts.Load(ctx)
	data, err := loaded(a.debts.State())
	if err != nil {
		return err
	}
	renderDebts(a.out, data)
	return nil
}

func (a *app) showPortfolio(ctx context.Context, args []string) error {
	fs := newFlags("crypto")
	refresh := fs.Bool("refresh", false, "refresh prices first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.crypto.Load(ctx)
	if *refresh {
		a.crypto.RefreshPrices(ctx)
	}
	holdings, err := loaded(a.crypto.State())
	if err != nil {
		return err
	}
	renderPortfolio(a.out, holdings, a.crypto.Totals())
	return nil
}

func (a *app) showStatistics(ctx context.Context, args []string) error {
	fs := newFlags("stats")
	period := fs.String("period", string(models.PeriodMonth), "month, quarter, year or all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.statistics.ChangePeriod(ctx, models.Period(*period))
	stats, err := loaded(a.statistics.State())
	if err != nil {
		return err
	}
	if stats == nil {
		return errors.New("statistics request was cancelled")
	}
	renderStatistics(a.out, stats)
	return nil
}

func (a *app) exportData(ctx context.Context, args []string) error {
	fs := newFlags("export")
	dir := fs.String("dir", os.TempDir(), "directory to write the export into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := a.export.Export(ctx, *dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}
