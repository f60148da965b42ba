package store

import (
	"context"
	"time"

	"github.com/rasikaapte/myfinance/internal/core"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
)

// Income owns the income collection.
type Income struct {
	c     *collection[core.Income]
	clock func() time.Time
}

// NewIncome loads any persisted income records from the backend.
func NewIncome(ctx context.Context, backend storage.Store, logger *log.Logger, clock func() time.Time) *Income {
	return &Income{
		c: newCollection(ctx, storage.NamespaceIncome, backend,
			logger.WithComponent(log.ComponentIncome),
			func(i core.Income) int64 { return i.ID }),
		clock: clock,
	}
}

// Create validates the draft, assigns an id and creation timestamp,
// and prepends it to the collection.
func (s *Income) Create(ctx context.Context, draft core.Income) (core.Income, error) {
	if err := draft.Validate(); err != nil {
		return core.Income{}, err
	}
	draft.ID = s.c.seq.next()
	draft.CreatedAt = s.clock()
	s.c.prepend(ctx, draft)
	s.c.logger.Info("income created",
		log.FieldRecordID, draft.ID,
		log.FieldAmount, draft.Amount,
		log.FieldSource, draft.SourceID)
	return draft, nil
}

// Delete removes the income record; deleting an unknown id is a no-op.
func (s *Income) Delete(ctx context.Context, id int64) {
	if s.c.remove(ctx, id) {
		s.c.logger.Info("income deleted", log.FieldRecordID, id)
	}
}

// All returns the income records, most recent first.
func (s *Income) All() []core.Income {
	return s.c.all()
}

// Summary aggregates the collection by source over the given period.
func (s *Income) Summary(period core.Period, today core.Date, order core.SortOrder) core.Summary {
	return core.Summarize(s.c.items, core.Sources, period, today, order)
}
