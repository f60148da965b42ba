package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotalsByCategory(t *testing.T) {
	accounts := []Account{
		{Type: "savings", Balance: decimal.RequireFromString("500")},
		{Type: "stocks", Balance: decimal.RequireFromString("300")},
		{Type: "401k", Balance: decimal.RequireFromString("700")},
	}

	got := TotalsByCategory(accounts)
	if !got.Savings.Equal(decimal.RequireFromString("500")) {
		t.Errorf("savings = %s, want 500", got.Savings)
	}
	if !got.Investments.Equal(decimal.RequireFromString("300")) {
		t.Errorf("investments = %s, want 300", got.Investments)
	}
	if !got.Retirement.Equal(decimal.RequireFromString("700")) {
		t.Errorf("retirement = %s, want 700", got.Retirement)
	}
	if !got.Other.IsZero() {
		t.Errorf("other = %s, want 0", got.Other)
	}
}

func TestTotalsByCategoryUnrecognizedType(t *testing.T) {
	accounts := []Account{
		{Type: "mattress", Balance: decimal.RequireFromString("50")},
		{Type: "other", Balance: decimal.RequireFromString("25")},
	}
	got := TotalsByCategory(accounts)
	if !got.Other.Equal(decimal.RequireFromString("75")) {
		t.Errorf("unrecognized types should land in Other: got %s, want 75", got.Other)
	}
}

func TestNetWorth(t *testing.T) {
	accounts := []Account{
		{Type: "savings", Balance: decimal.RequireFromString("500")},
		{Type: "stocks", Balance: decimal.RequireFromString("300")},
		{Type: "401k", Balance: decimal.RequireFromString("700")},
	}
	if got := NetWorth(accounts); !got.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("net worth = %s, want 1500", got)
	}

	// Zero and negative balances are summed unconditionally.
	accounts = append(accounts,
		Account{Type: "checking", Balance: decimal.Zero},
		Account{Type: "other", Balance: decimal.RequireFromString("-100")},
	)
	if got := NetWorth(accounts); !got.Equal(decimal.RequireFromString("1400")) {
		t.Errorf("net worth = %s, want 1400", got)
	}
}

func TestAccountGrowth(t *testing.T) {
	a := Account{
		Balance: decimal.RequireFromString("1200"),
		History: []Snapshot{
			{Date: NewDate(2024, 1, 1), Balance: decimal.RequireFromString("1000")},
			{Date: NewDate(2024, 6, 1), Balance: decimal.RequireFromString("1200")},
		},
	}

	g, ok := AccountGrowth(a)
	if !ok {
		t.Fatal("expected growth for an account with two snapshots")
	}
	if !g.Change.Equal(decimal.RequireFromString("200")) {
		t.Errorf("change = %s, want 200", g.Change)
	}
	if !g.PercentChange.Equal(decimal.RequireFromString("20")) {
		t.Errorf("percent = %s, want 20", g.PercentChange)
	}
}

func TestAccountGrowthAbsentWithSingleSnapshot(t *testing.T) {
	a := Account{
		Balance: decimal.RequireFromString("100"),
		History: []Snapshot{
			{Date: NewDate(2024, 1, 1), Balance: decimal.RequireFromString("100")},
		},
	}
	if _, ok := AccountGrowth(a); ok {
		t.Error("an account created today and never updated has no growth")
	}
}

func TestAccountGrowthZeroBaseline(t *testing.T) {
	a := Account{
		Balance: decimal.RequireFromString("50"),
		History: []Snapshot{
			{Date: NewDate(2024, 1, 1), Balance: decimal.Zero},
			{Date: NewDate(2024, 2, 1), Balance: decimal.RequireFromString("50")},
		},
	}
	g, ok := AccountGrowth(a)
	if !ok {
		t.Fatal("expected growth to be present")
	}
	if !g.PercentChange.IsZero() {
		t.Errorf("zero baseline must yield 0%%, got %s", g.PercentChange)
	}
	if !g.Change.Equal(decimal.RequireFromString("50")) {
		t.Errorf("change = %s, want 50", g.Change)
	}
}

func TestWithBalanceSameDayOverwrites(t *testing.T) {
	today := NewDate(2024, 3, 10)
	a := Account{
		Balance: decimal.RequireFromString("100"),
		History: []Snapshot{{Date: NewDate(2024, 3, 1), Balance: decimal.RequireFromString("100")}},
	}

	a = a.WithBalance(decimal.RequireFromString("150"), today)
	if len(a.History) != 2 {
		t.Fatalf("new day should append: history length = %d, want 2", len(a.History))
	}

	a = a.WithBalance(decimal.RequireFromString("175"), today)
	if len(a.History) != 2 {
		t.Fatalf("same day should overwrite: history length = %d, want 2", len(a.History))
	}
	if !a.History[1].Balance.Equal(decimal.RequireFromString("175")) {
		t.Errorf("today's snapshot = %s, want 175", a.History[1].Balance)
	}
	if !a.Balance.Equal(decimal.RequireFromString("175")) {
		t.Errorf("balance = %s, want 175", a.Balance)
	}
}

func TestWithBalanceDoesNotMutateOriginal(t *testing.T) {
	orig := Account{
		Balance: decimal.RequireFromString("100"),
		History: []Snapshot{{Date: NewDate(2024, 3, 1), Balance: decimal.RequireFromString("100")}},
	}
	_ = orig.WithBalance(decimal.RequireFromString("999"), NewDate(2024, 3, 1))
	if !orig.History[0].Balance.Equal(decimal.RequireFromString("100")) {
		t.Error("WithBalance must not mutate the receiver's history")
	}
}
