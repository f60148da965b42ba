// Command myfinance is the interactive terminal frontend for the
// personal finance tracker.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rasikaapte/myfinance/internal/cli"
	"github.com/rasikaapte/myfinance/internal/core"
	"github.com/rasikaapte/myfinance/internal/log"
)

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(log.New(log.ComponentApp, slog.LevelInfo))
	logger := cli.SetupLogger(cfg)

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", log.FieldError, err)
		os.Exit(1)
	}
	defer app.Close()

	ui := &ui{app: app, in: bufio.NewReader(os.Stdin)}
	ui.run(ctx)
}

type ui struct {
	app *cli.App
	in  *bufio.Reader
}

func (u *ui) run(ctx context.Context) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("       MyFinance - Personal Finance Tracker")
	fmt.Println(strings.Repeat("=", 50))

	for {
		fmt.Println("\n--- Main Menu ---")
		fmt.Println("1. Add Expense")
		fmt.Println("2. View Recent Expenses")
		fmt.Println("3. Expense Summary")
		fmt.Println("4. Add Income")
		fmt.Println("5. Income Summary")
		fmt.Println("6. Dashboard")
		fmt.Println("7. Statements")
		fmt.Println("8. Portfolio")
		fmt.Println("9. Delete Expense")
		fmt.Println("0. Exit")

		switch u.prompt("Select option") {
		case "1":
			u.addExpense(ctx)
		case "2":
			u.recentExpenses()
		case "3":
			u.expenseSummary()
		case "4":
			u.addIncome(ctx)
		case "5":
			u.incomeSummary()
		case "6":
			u.dashboard()
		case "7":
			u.statements(ctx)
		case "8":
			u.portfolio(ctx)
		case "9":
			u.deleteExpense(ctx)
		case "0", "q", "exit":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (u *ui) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := u.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (u *ui) promptAmount(label string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(u.prompt(label))
	if err != nil {
		fmt.Println("Invalid amount.")
		return decimal.Decimal{}, false
	}
	return v, true
}

// promptDate reads a YYYY-MM-DD date, defaulting to today when blank.
func (u *ui) promptDate(label string) (core.Date, bool) {
	raw := u.prompt(label + " (YYYY-MM-DD, blank for today)")
	if raw == "" {
		return core.DateOf(time.Now()), true
	}
	d, err := core.ParseDate(raw)
	if err != nil {
		fmt.Println("Invalid date.")
		return core.Date{}, false
	}
	return d, true
}

func (u *ui) promptTaxonomy(label string, taxonomy []core.TaxonomyEntry) (string, bool) {
	fmt.Printf("\n--- %s ---\n", label)
	for i, entry := range taxonomy {
		fmt.Printf("  %d. %s %s\n", i+1, entry.Icon, entry.Name)
	}
	n, err := strconv.Atoi(u.prompt("Select number"))
	if err != nil || n < 1 || n > len(taxonomy) {
		fmt.Println("Invalid selection.")
		return "", false
	}
	return taxonomy[n-1].ID, true
}

func (u *ui) addExpense(ctx context.Context) {
	amount, ok := u.promptAmount("Amount")
	if !ok {
		return
	}
	categoryID, ok := u.promptTaxonomy("Categories", core.Categories)
	if !ok {
		return
	}
	date, ok := u.promptDate("Date")
	if !ok {
		return
	}

	created, err := u.app.Expenses.Create(ctx, core.Expense{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: u.prompt("Description (optional)"),
		Date:        date,
	})
	if err != nil {
		fmt.Println("Could not add expense:", err)
		return
	}
	fmt.Printf("Added expense #%d: $%s\n", created.ID, created.Amount.StringFixed(2))
}

func (u *ui) recentExpenses() {
	expenses := u.app.Expenses.All()
	if len(expenses) == 0 {
		fmt.Println("No expenses recorded yet.")
		return
	}
	limit := len(expenses)
	if limit > 10 {
		limit = 10
	}
	fmt.Println("\n--- Recent Expenses ---")
	for _, e := range expenses[:limit] {
		entry, _ := core.Lookup(core.Categories, e.CategoryID)
		fmt.Printf("  #%-5d %s  %s %-18s $%10s  %s\n",
			e.ID, e.Date, entry.Icon, entry.Name, e.Amount.StringFixed(2), e.Description)
	}
}

func promptPeriod(u *ui) core.Period {
	switch u.prompt("Period (1=this month, 2=last month, 3=this year, 4=all)") {
	case "1":
		return core.PeriodMonth
	case "2":
		return core.PeriodLastMonth
	case "3":
		return core.PeriodYear
	default:
		return core.PeriodAll
	}
}

func printSummary(title string, s core.Summary) {
	fmt.Printf("\n--- %s ---\n", title)
	fmt.Printf("Total: $%s across %d records\n", s.Total.StringFixed(2), s.Count)
	for _, g := range s.ByGroup {
		fmt.Printf("  %s %-18s $%10s  (%d)\n", g.Icon, g.Name, g.Total.StringFixed(2), g.Count)
	}
}

func (u *ui) expenseSummary() {
	period := promptPeriod(u)
	today := core.DateOf(time.Now())
	printSummary("Expense Summary", u.app.Expenses.Summary(period, today, core.SortByTotalDesc))
}

func (u *ui) addIncome(ctx context.Context) {
	amount, ok := u.promptAmount("Amount")
	if !ok {
		return
	}
	sourceID, ok := u.promptTaxonomy("Sources", core.Sources)
	if !ok {
		return
	}
	date, ok := u.promptDate("Date")
	if !ok {
		return
	}

	created, err := u.app.Income.Create(ctx, core.Income{
		Amount:      amount,
		SourceID:    sourceID,
		Description: u.prompt("Description (optional)"),
		Date:        date,
	})
	if err != nil {
		fmt.Println("Could not add income:", err)
		return
	}
	fmt.Printf("Added income #%d: $%s\n", created.ID, created.Amount.StringFixed(2))
}

func (u *ui) incomeSummary() {
	period := promptPeriod(u)
	today := core.DateOf(time.Now())
	printSummary("Income Summary", u.app.Income.Summary(period, today, core.SortByTotalDesc))
}

func (u *ui) dashboard() {
	today := core.DateOf(time.Now())
	w := core.WindowOf(today)
	o := core.Overview(u.app.Expenses.All(), u.app.Income.All(), w)

	fmt.Printf("\n--- Dashboard: %s %d ---\n", w.Month, w.Year)
	fmt.Printf("Income:   $%s (%d)\n", o.TotalIncome.StringFixed(2), o.IncomeCount)
	fmt.Printf("Expenses: $%s (%d)\n", o.TotalExpenses.StringFixed(2), o.ExpenseCount)
	fmt.Printf("Net:      $%s  (savings rate %s%%)\n", o.NetBalance.StringFixed(2), o.SavingsRate.StringFixed(0))
	fmt.Printf("Net worth: $%s\n", u.app.Portfolio.NetWorth().StringFixed(2))

	if len(o.ByCategory) > 0 {
		fmt.Println("\nTop categories:")
		top := o.ByCategory
		if len(top) > 4 {
			top = top[:4]
		}
		for _, g := range top {
			fmt.Printf("  %s %-18s $%10s\n", g.Icon, g.Name, g.Total.StringFixed(2))
		}
	}

	upcoming := u.app.Statements.Upcoming(today, u.app.Config.UpcomingWindowDays, u.app.Config.UpcomingLimit)
	if len(upcoming) > 0 {
		fmt.Println("\nUpcoming statements:")
		for _, st := range upcoming {
			badge := core.DueStatus(st, today)
			fmt.Printf("  💳 %-20s $%10s  %s\n", st.CardName, st.Amount.StringFixed(2), badge.Label)
		}
	}

	recent := core.RecentActivity(u.app.Expenses.All(), u.app.Income.All(), w, u.app.Config.RecentLimit)
	if len(recent) > 0 {
		fmt.Println("\nRecent activity:")
		for _, a := range recent {
			sign := "-"
			if a.Kind == core.ActivityIncome {
				sign = "+"
			}
			fmt.Printf("  %s  %s %-18s %s$%s\n", a.Date, a.Entry.Icon, a.Entry.Name, sign, a.Amount.StringFixed(2))
		}
	}
}

func (u *ui) statements(ctx context.Context) {
	today := core.DateOf(time.Now())
	all := u.app.Statements.ForDisplay()

	fmt.Printf("\n--- Statements (outstanding $%s) ---\n", u.app.Statements.TotalOutstanding().StringFixed(2))
	for _, st := range all {
		badge := core.DueStatus(st, today)
		min := ""
		if st.MinPayment != nil {
			min = fmt.Sprintf("  min $%s", st.MinPayment.StringFixed(2))
		}
		fmt.Printf("  #%-5d %-20s $%10s  %s%s\n", st.ID, st.CardName, st.Amount.StringFixed(2), badge.Label, min)
	}

	switch u.prompt("Action (a=add, p=toggle paid, d=delete, enter=back)") {
	case "a":
		u.addStatement(ctx)
	case "p":
		if id, err := strconv.ParseInt(u.prompt("Statement id"), 10, 64); err == nil {
			u.app.Statements.TogglePaid(ctx, id)
		}
	case "d":
		if id, err := strconv.ParseInt(u.prompt("Statement id"), 10, 64); err == nil {
			u.app.Statements.Delete(ctx, id)
		}
	}
}

func (u *ui) addStatement(ctx context.Context) {
	cardName := u.prompt("Card name")
	amount, ok := u.promptAmount("Statement amount")
	if !ok {
		return
	}
	statementDate, ok := u.promptDate("Statement date")
	if !ok {
		return
	}
	dueDate, ok := u.promptDate("Due date")
	if !ok {
		return
	}

	draft := core.Statement{
		CardName:      cardName,
		Amount:        amount,
		StatementDate: statementDate,
		DueDate:       dueDate,
	}
	if raw := u.prompt("Minimum payment (blank for none)"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Invalid amount.")
			return
		}
		draft.MinPayment = &min
	}

	if _, err := u.app.Statements.Create(ctx, draft); err != nil {
		fmt.Println("Could not add statement:", err)
	}
}

func (u *ui) portfolio(ctx context.Context) {
	accounts := u.app.Portfolio.All()
	totals := u.app.Portfolio.TotalsByCategory()

	fmt.Printf("\n--- Portfolio (net worth $%s) ---\n", u.app.Portfolio.NetWorth().StringFixed(2))
	fmt.Printf("Savings $%s | Investments $%s | Retirement $%s | Other $%s\n",
		totals.Savings.StringFixed(2), totals.Investments.StringFixed(2),
		totals.Retirement.StringFixed(2), totals.Other.StringFixed(2))

	for _, a := range accounts {
		entry, _ := core.Lookup(core.AccountTypes, a.Type)
		line := fmt.Sprintf("  #%-5d %s %-22s $%12s", a.ID, entry.Icon, a.Name, a.Balance.StringFixed(2))
		if g, ok := u.app.Portfolio.Growth(a.ID); ok {
			sign := ""
			if !g.Change.IsNegative() {
				sign = "+"
			}
			line += fmt.Sprintf("  %s%s%%", sign, g.PercentChange.StringFixed(1))
		}
		fmt.Println(line)
	}

	switch u.prompt("Action (a=add, u=update balance, d=delete, enter=back)") {
	case "a":
		u.addAccount(ctx)
	case "u":
		id, err := strconv.ParseInt(u.prompt("Account id"), 10, 64)
		if err != nil {
			return
		}
		if balance, ok := u.promptAmount("New balance"); ok {
			u.app.Portfolio.UpdateBalance(ctx, id, balance)
		}
	case "d":
		if id, err := strconv.ParseInt(u.prompt("Account id"), 10, 64); err == nil {
			u.app.Portfolio.Delete(ctx, id)
		}
	}
}

func (u *ui) addAccount(ctx context.Context) {
	name := u.prompt("Account name")
	typeID, ok := u.promptTaxonomy("Account Types", core.AccountTypes)
	if !ok {
		return
	}
	balance, ok := u.promptAmount("Current balance")
	if !ok {
		return
	}

	draft := core.Account{Name: name, Type: typeID, Balance: balance}
	if instID := u.prompt("Institution id (blank to skip)"); instID != "" {
		if inst, ok := core.LookupInstitution(instID); ok {
			draft.InstitutionID = inst.ID
			draft.WebsiteURL = inst.URL
		} else {
			draft.InstitutionID = core.FallbackID
			draft.WebsiteURL = u.prompt("Website URL")
		}
	}

	if _, err := u.app.Portfolio.Create(ctx, draft); err != nil {
		fmt.Println("Could not add account:", err)
	}
}

func (u *ui) deleteExpense(ctx context.Context) {
	id, err := strconv.ParseInt(u.prompt("Expense id"), 10, 64)
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}
	u.app.Expenses.Delete(ctx, id)
}
