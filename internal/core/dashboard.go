package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthOverview is the dashboard rollup for one month window.
type MonthOverview struct {
	Window        MonthWindow
	TotalExpenses decimal.Decimal
	TotalIncome   decimal.Decimal
	NetBalance    decimal.Decimal
	SavingsRate   decimal.Decimal // percent of income kept; 0 when income is 0
	ExpenseCount  int
	IncomeCount   int
	ByCategory    []GroupTotal // descending by total
}

// ActivityKind tags a merged dashboard transaction.
type ActivityKind string

const (
	ActivityExpense ActivityKind = "expense"
	ActivityIncome  ActivityKind = "income"
)

// Activity is one row of the recent-transactions widget: an expense or
// an income with its resolved taxonomy entry.
type Activity struct {
	Kind        ActivityKind
	Date        Date
	Description string
	Amount      decimal.Decimal
	Entry       TaxonomyEntry
}

// Overview computes the month dashboard over the given window.
func Overview(expenses []Expense, incomes []Income, w MonthWindow) MonthOverview {
	monthExpenses := FilterByWindow(expenses, w)
	monthIncomes := FilterByWindow(incomes, w)

	o := MonthOverview{
		Window:        w,
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
		ExpenseCount:  len(monthExpenses),
		IncomeCount:   len(monthIncomes),
	}
	for _, e := range monthExpenses {
		o.TotalExpenses = o.TotalExpenses.Add(e.Amount)
	}
	for _, i := range monthIncomes {
		o.TotalIncome = o.TotalIncome.Add(i.Amount)
	}
	o.NetBalance = o.TotalIncome.Sub(o.TotalExpenses)
	o.SavingsRate = decimal.Zero
	if o.TotalIncome.IsPositive() {
		o.SavingsRate = o.NetBalance.Div(o.TotalIncome).Mul(decimal.NewFromInt(100))
	}
	o.ByCategory = SummarizeWindow(monthExpenses, Categories, w, SortByTotalDesc).ByGroup
	return o
}

// RecentActivity merges the window's expenses and incomes, newest
// first, capped to limit when positive. Dangling taxonomy references
// resolve to each registry's catch-all entry.
func RecentActivity(expenses []Expense, incomes []Income, w MonthWindow, limit int) []Activity {
	var out []Activity
	for _, e := range FilterByWindow(expenses, w) {
		entry, _ := Lookup(Categories, e.CategoryID)
		out = append(out, Activity{
			Kind:        ActivityExpense,
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
			Entry:       entry,
		})
	}
	for _, i := range FilterByWindow(incomes, w) {
		entry, _ := Lookup(Sources, i.SourceID)
		out = append(out, Activity{
			Kind:        ActivityIncome,
			Date:        i.Date,
			Description: i.Description,
			Amount:      i.Amount,
			Entry:       entry,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
