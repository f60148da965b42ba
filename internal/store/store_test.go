package store

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rasikaapte/myfinance/internal/core"
	applog "github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
	"github.com/rasikaapte/myfinance/internal/storage/memory"
)

func testLogger() *applog.Logger {
	return applog.New("test", slog.LevelError)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func expenseDraft(amount string) core.Expense {
	return core.Expense{
		Amount:     decimal.RequireFromString(amount),
		CategoryID: "food",
		Date:       core.NewDate(2024, 3, 5),
	}
}

func TestExpensesCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := NewExpenses(ctx, memory.New(), testLogger(), fixedClock(time.Unix(1700000000, 0)))

	first, err := s.Create(ctx, expenseDraft("10"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.Create(ctx, expenseDraft("20"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("ids must be strictly increasing: %d then %d", first.ID, second.ID)
	}

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Error("newest expense should come first")
	}
}

func TestExpensesCreateRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	s := NewExpenses(ctx, memory.New(), testLogger(), time.Now)

	draft := expenseDraft("10")
	draft.Amount = decimal.RequireFromString("-5")
	if _, err := s.Create(ctx, draft); err != core.ErrInvalidAmount {
		t.Errorf("got %v, want %v", err, core.ErrInvalidAmount)
	}
	if len(s.All()) != 0 {
		t.Error("rejected draft must not be stored")
	}
}

func TestExpensesPersistAndReload(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	clock := fixedClock(time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC))

	s := NewExpenses(ctx, backend, testLogger(), clock)
	created, err := s.Create(ctx, core.Expense{
		Amount:      decimal.RequireFromString("12.34"),
		CategoryID:  "transport",
		Description: "bus pass",
		Date:        core.NewDate(2024, 3, 5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh store over the same backend sees the same record with
	// every field intact.
	reloaded := NewExpenses(ctx, backend, testLogger(), clock)
	all := reloaded.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 expense after reload, got %d", len(all))
	}
	got := all[0]
	if got.ID != created.ID ||
		!got.Amount.Equal(created.Amount) ||
		got.CategoryID != created.CategoryID ||
		got.Description != created.Description ||
		got.Date.String() != created.Date.String() ||
		!got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("round trip lost data: got %+v, want %+v", got, created)
	}

	// The sequence resumes above the highest persisted id.
	next, err := reloaded.Create(ctx, expenseDraft("1"))
	if err != nil {
		t.Fatalf("create after reload: %v", err)
	}
	if next.ID <= created.ID {
		t.Errorf("id after reload = %d, must exceed %d", next.ID, created.ID)
	}
}

func TestCollectionMalformedPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	if err := backend.Save(ctx, storage.NamespaceExpenses, []byte("{not json")); err != nil {
		t.Fatalf("seed backend: %v", err)
	}

	s := NewExpenses(ctx, backend, testLogger(), time.Now)
	if len(s.All()) != 0 {
		t.Error("malformed payload must degrade to an empty collection")
	}
	if _, err := s.Create(ctx, expenseDraft("5")); err != nil {
		t.Fatalf("store should stay usable after bad load: %v", err)
	}
}

func TestExpensesDeleteAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewExpenses(ctx, memory.New(), testLogger(), time.Now)
	if _, err := s.Create(ctx, expenseDraft("10")); err != nil {
		t.Fatalf("create: %v", err)
	}

	s.Delete(ctx, 99999)
	if len(s.All()) != 1 {
		t.Error("deleting an unknown id must leave the collection unchanged")
	}
}

func TestExpensesByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewExpenses(ctx, memory.New(), testLogger(), time.Now)

	a := expenseDraft("10")
	b := expenseDraft("20")
	b.CategoryID = "travel"
	if _, err := s.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	if got := s.ByCategory("travel"); len(got) != 1 || got[0].CategoryID != "travel" {
		t.Errorf("ByCategory(travel) = %+v", got)
	}
	if got := s.ByCategory(""); len(got) != 2 {
		t.Errorf("empty filter should return everything, got %d", len(got))
	}
}

func TestStatementsCreateForcesUnpaid(t *testing.T) {
	ctx := context.Background()
	s := NewStatements(ctx, memory.New(), testLogger(), time.Now)

	created, err := s.Create(ctx, core.Statement{
		CardName:      "Amex Gold",
		Amount:        decimal.RequireFromString("420.69"),
		StatementDate: core.NewDate(2024, 3, 1),
		DueDate:       core.NewDate(2024, 3, 25),
		IsPaid:        true, // the store must ignore this
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsPaid {
		t.Error("new statements always start unpaid")
	}
}

func TestStatementsTogglePaid(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := NewStatements(ctx, backend, testLogger(), time.Now)

	created, err := s.Create(ctx, core.Statement{
		CardName:      "Chase Sapphire",
		Amount:        decimal.RequireFromString("100"),
		StatementDate: core.NewDate(2024, 3, 1),
		DueDate:       core.NewDate(2024, 3, 25),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	s.TogglePaid(ctx, created.ID)
	if got := s.All()[0]; !got.IsPaid {
		t.Error("first toggle should mark paid")
	}
	s.TogglePaid(ctx, created.ID)
	if got := s.All()[0]; got.IsPaid {
		t.Error("second toggle should mark unpaid again")
	}

	// Toggling an unknown id changes nothing.
	s.TogglePaid(ctx, 424242)
	if got := s.All()[0]; got.IsPaid {
		t.Error("toggling an unknown id must not touch other records")
	}
}

func TestStatementMinPaymentRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := NewStatements(ctx, backend, testLogger(), time.Now)

	zero := decimal.Zero
	withZero, err := s.Create(ctx, core.Statement{
		CardName:      "Zero Min",
		Amount:        decimal.RequireFromString("50"),
		StatementDate: core.NewDate(2024, 3, 1),
		DueDate:       core.NewDate(2024, 3, 25),
		MinPayment:    &zero,
	})
	if err != nil {
		t.Fatal(err)
	}
	noMin, err := s.Create(ctx, core.Statement{
		CardName:      "No Min",
		Amount:        decimal.RequireFromString("60"),
		StatementDate: core.NewDate(2024, 3, 1),
		DueDate:       core.NewDate(2024, 3, 26),
	})
	if err != nil {
		t.Fatal(err)
	}

	reloaded := NewStatements(ctx, backend, testLogger(), time.Now)
	for _, st := range reloaded.All() {
		switch st.ID {
		case withZero.ID:
			if st.MinPayment == nil || !st.MinPayment.IsZero() {
				t.Error("an explicit zero minimum must survive the round trip as zero, not absence")
			}
		case noMin.ID:
			if st.MinPayment != nil {
				t.Error("an absent minimum must stay absent")
			}
		}
	}
}

func TestPortfolioCreateSeedsHistory(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC))
	s := NewPortfolio(ctx, memory.New(), testLogger(), clock)

	created, err := s.Create(ctx, core.Account{
		Name:    "High yield",
		Type:    "savings",
		Balance: decimal.RequireFromString("1000"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(created.History))
	}
	snap := created.History[0]
	if snap.Date.String() != "2024-03-10" || !snap.Balance.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("seed snapshot = %s/%s, want 2024-03-10/1000", snap.Date, snap.Balance)
	}

	if _, ok := s.Growth(created.ID); ok {
		t.Error("a freshly created account has no growth yet")
	}
}

func TestPortfolioUpdateBalanceCollapsesSameDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := NewPortfolio(ctx, memory.New(), testLogger(), clock)

	created, err := s.Create(ctx, core.Account{
		Name:    "Brokerage",
		Type:    "stocks",
		Balance: decimal.RequireFromString("1000"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same-day update overwrites the seed snapshot.
	s.UpdateBalance(ctx, created.ID, decimal.RequireFromString("1100"))
	got, _ := s.Get(created.ID)
	if len(got.History) != 1 {
		t.Fatalf("same-day update appended: history length = %d, want 1", len(got.History))
	}
	if !got.History[0].Balance.Equal(decimal.RequireFromString("1100")) {
		t.Errorf("seed snapshot should be overwritten, got %s", got.History[0].Balance)
	}

	// Next day appends, and growth appears.
	now = now.AddDate(0, 0, 1)
	s.UpdateBalance(ctx, created.ID, decimal.RequireFromString("1200"))
	got, _ = s.Get(created.ID)
	if len(got.History) != 2 {
		t.Fatalf("new-day update should append: history length = %d, want 2", len(got.History))
	}

	g, ok := s.Growth(created.ID)
	if !ok {
		t.Fatal("growth should be present after a second snapshot")
	}
	if !g.Change.Equal(decimal.RequireFromString("100")) {
		t.Errorf("change = %s, want 100 (against the first snapshot)", g.Change)
	}
}

func TestPortfolioAggregates(t *testing.T) {
	ctx := context.Background()
	s := NewPortfolio(ctx, memory.New(), testLogger(), time.Now)

	for _, a := range []core.Account{
		{Name: "Savings", Type: "savings", Balance: decimal.RequireFromString("500")},
		{Name: "Stocks", Type: "stocks", Balance: decimal.RequireFromString("300")},
		{Name: "401k", Type: "401k", Balance: decimal.RequireFromString("700")},
	} {
		if _, err := s.Create(ctx, a); err != nil {
			t.Fatalf("create %s: %v", a.Name, err)
		}
	}

	if nw := s.NetWorth(); !nw.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("net worth = %s, want 1500", nw)
	}
	totals := s.TotalsByCategory()
	if !totals.Savings.Equal(decimal.RequireFromString("500")) ||
		!totals.Investments.Equal(decimal.RequireFromString("300")) ||
		!totals.Retirement.Equal(decimal.RequireFromString("700")) ||
		!totals.Other.IsZero() {
		t.Errorf("totals = %+v", totals)
	}
}

func TestIncomeSummaryFromStore(t *testing.T) {
	ctx := context.Background()
	s := NewIncome(ctx, memory.New(), testLogger(), time.Now)

	if _, err := s.Create(ctx, core.Income{
		Amount:   decimal.RequireFromString("3000"),
		SourceID: "salary",
		Date:     core.NewDate(2024, 3, 1),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	sum := s.Summary(core.PeriodAll, core.NewDate(2024, 3, 15), core.SortTaxonomy)
	if sum.Count != 1 || !sum.Total.Equal(decimal.RequireFromString("3000")) {
		t.Errorf("summary = %+v", sum)
	}
}
