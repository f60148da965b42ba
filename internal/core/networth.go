package core

import "github.com/shopspring/decimal"

// CategoryTotals buckets account balances into the four net-worth
// super-categories.
type CategoryTotals struct {
	Savings     decimal.Decimal `json:"savings"`
	Investments decimal.Decimal `json:"investments"`
	Retirement  decimal.Decimal `json:"retirement"`
	Other       decimal.Decimal `json:"other"`
}

// Growth describes how an account moved against its first recorded
// balance.
type Growth struct {
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
}

var (
	savingsTypes    = map[string]bool{"savings": true, "checking": true, "emergency": true}
	investmentTypes = map[string]bool{"stocks": true, "bonds": true, "etf": true, "crypto": true}
	retirementTypes = map[string]bool{"401k": true, "ira": true}
)

// TotalsByCategory sums balances per super-category. Unrecognized
// account types land in Other alongside the explicit "other" type.
func TotalsByCategory(accounts []Account) CategoryTotals {
	t := CategoryTotals{
		Savings:     decimal.Zero,
		Investments: decimal.Zero,
		Retirement:  decimal.Zero,
		Other:       decimal.Zero,
	}
	for _, a := range accounts {
		switch {
		case savingsTypes[a.Type]:
			t.Savings = t.Savings.Add(a.Balance)
		case investmentTypes[a.Type]:
			t.Investments = t.Investments.Add(a.Balance)
		case retirementTypes[a.Type]:
			t.Retirement = t.Retirement.Add(a.Balance)
		default:
			t.Other = t.Other.Add(a.Balance)
		}
	}
	return t
}

// NetWorth is the unconditional sum of all balances, zero and negative
// included.
func NetWorth(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// AccountGrowth compares the current balance against the first history
// snapshot. It returns false when fewer than two snapshots exist. A
// zero first balance yields a 0% change rather than dividing by zero.
func AccountGrowth(a Account) (Growth, bool) {
	if len(a.History) < 2 {
		return Growth{}, false
	}
	first := a.History[0].Balance
	change := a.Balance.Sub(first)
	percent := decimal.Zero
	if first.IsPositive() {
		percent = change.Div(first).Mul(decimal.NewFromInt(100))
	}
	return Growth{Change: change, PercentChange: percent}, true
}

// WithBalance returns a copy of the account carrying the new balance
// and a history snapshot dated today. A same-day snapshot is
// overwritten in place, so history never holds two entries for one
// calendar day.
func (a Account) WithBalance(balance decimal.Decimal, today Date) Account {
	updated := a
	updated.Balance = balance
	updated.History = make([]Snapshot, len(a.History))
	copy(updated.History, a.History)

	for i := range updated.History {
		if updated.History[i].Date.Equal(today.Time) {
			updated.History[i].Balance = balance
			return updated
		}
	}
	updated.History = append(updated.History, Snapshot{Date: today, Balance: balance})
	return updated
}
