package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rasikaapte/myfinance/internal/core"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
)

// Statements owns the credit-card statement collection.
type Statements struct {
	c     *collection[core.Statement]
	clock func() time.Time
}

// NewStatements loads any persisted statements from the backend.
func NewStatements(ctx context.Context, backend storage.Store, logger *log.Logger, clock func() time.Time) *Statements {
	return &Statements{
		c: newCollection(ctx, storage.NamespaceStatements, backend,
			logger.WithComponent(log.ComponentStatements),
			func(s core.Statement) int64 { return s.ID }),
		clock: clock,
	}
}

// Create validates the draft and prepends it. A new statement always
// starts unpaid, whatever the draft says.
func (s *Statements) Create(ctx context.Context, draft core.Statement) (core.Statement, error) {
	if err := draft.Validate(); err != nil {
		return core.Statement{}, err
	}
	draft.ID = s.c.seq.next()
	draft.CreatedAt = s.clock()
	draft.IsPaid = false
	s.c.prepend(ctx, draft)
	s.c.logger.Info("statement created",
		log.FieldRecordID, draft.ID,
		log.FieldCard, draft.CardName,
		log.FieldAmount, draft.Amount)
	return draft, nil
}

// TogglePaid flips the paid flag; toggling an unknown id is a no-op.
func (s *Statements) TogglePaid(ctx context.Context, id int64) {
	stmt, ok := s.c.update(ctx, id, func(st core.Statement) core.Statement {
		st.IsPaid = !st.IsPaid
		return st
	})
	if ok {
		s.c.logger.Info("statement toggled",
			log.FieldRecordID, id, "is_paid", stmt.IsPaid)
	}
}

// Delete removes the statement; deleting an unknown id is a no-op.
func (s *Statements) Delete(ctx context.Context, id int64) {
	if s.c.remove(ctx, id) {
		s.c.logger.Info("statement deleted", log.FieldRecordID, id)
	}
}

// All returns the statements, most recent first.
func (s *Statements) All() []core.Statement {
	return s.c.all()
}

// ForDisplay returns the statements ordered for the list view: unpaid
// first, then ascending by due date.
func (s *Statements) ForDisplay() []core.Statement {
	return core.SortForDisplay(s.c.items)
}

// Upcoming returns the unpaid statements due within windowDays of
// today, ascending, capped to limit when positive.
func (s *Statements) Upcoming(today core.Date, windowDays, limit int) []core.Statement {
	return core.UpcomingWithinWindow(s.c.items, today, windowDays, limit)
}

// TotalOutstanding sums the unpaid statement amounts.
func (s *Statements) TotalOutstanding() decimal.Decimal {
	return core.TotalOutstanding(s.c.items)
}
