package store

import (
	"context"
	"time"

	"github.com/rasikaapte/myfinance/internal/core"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
)

// Expenses owns the expense collection.
type Expenses struct {
	c     *collection[core.Expense]
	clock func() time.Time
}

// NewExpenses loads any persisted expenses from the backend.
func NewExpenses(ctx context.Context, backend storage.Store, logger *log.Logger, clock func() time.Time) *Expenses {
	return &Expenses{
		c: newCollection(ctx, storage.NamespaceExpenses, backend,
			logger.WithComponent(log.ComponentExpenses),
			func(e core.Expense) int64 { return e.ID }),
		clock: clock,
	}
}

// Create validates the draft, assigns an id and creation timestamp,
// and prepends it to the collection.
func (s *Expenses) Create(ctx context.Context, draft core.Expense) (core.Expense, error) {
	if err := draft.Validate(); err != nil {
		return core.Expense{}, err
	}
	draft.ID = s.c.seq.next()
	draft.CreatedAt = s.clock()
	s.c.prepend(ctx, draft)
	s.c.logger.Info("expense created",
		log.FieldRecordID, draft.ID,
		log.FieldAmount, draft.Amount,
		log.FieldCategory, draft.CategoryID)
	return draft, nil
}

// Delete removes the expense; deleting an unknown id is a no-op.
func (s *Expenses) Delete(ctx context.Context, id int64) {
	if s.c.remove(ctx, id) {
		s.c.logger.Info("expense deleted", log.FieldRecordID, id)
	}
}

// All returns the expenses, most recent first.
func (s *Expenses) All() []core.Expense {
	return s.c.all()
}

// ByCategory returns the expenses for one category; an empty id means
// no filtering.
func (s *Expenses) ByCategory(categoryID string) []core.Expense {
	if categoryID == "" {
		return s.c.all()
	}
	var out []core.Expense
	for _, e := range s.c.items {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// Summary aggregates the collection by category over the given period.
func (s *Expenses) Summary(period core.Period, today core.Date, order core.SortOrder) core.Summary {
	return core.Summarize(s.c.items, core.Categories, period, today, order)
}
