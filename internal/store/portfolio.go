package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rasikaapte/myfinance/internal/core"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
)

// Portfolio owns the account collection.
type Portfolio struct {
	c     *collection[core.Account]
	clock func() time.Time
}

// NewPortfolio loads any persisted accounts from the backend.
func NewPortfolio(ctx context.Context, backend storage.Store, logger *log.Logger, clock func() time.Time) *Portfolio {
	return &Portfolio{
		c: newCollection(ctx, storage.NamespacePortfolio, backend,
			logger.WithComponent(log.ComponentPortfolio),
			func(a core.Account) int64 { return a.ID }),
		clock: clock,
	}
}

// Create validates the draft, seeds its history with the opening
// balance at today's date, and prepends it to the collection.
func (s *Portfolio) Create(ctx context.Context, draft core.Account) (core.Account, error) {
	if err := draft.Validate(); err != nil {
		return core.Account{}, err
	}
	now := s.clock()
	draft.ID = s.c.seq.next()
	draft.CreatedAt = now
	draft.History = []core.Snapshot{{Date: core.DateOf(now), Balance: draft.Balance}}
	s.c.prepend(ctx, draft)
	s.c.logger.Info("account created",
		log.FieldRecordID, draft.ID,
		log.FieldAccount, draft.Name,
		"type", draft.Type)
	return draft, nil
}

// UpdateBalance sets a new balance, collapsing today's history
// snapshot if one already exists. Updating an unknown id is a no-op.
func (s *Portfolio) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) {
	today := core.DateOf(s.clock())
	_, ok := s.c.update(ctx, id, func(a core.Account) core.Account {
		return a.WithBalance(balance, today)
	})
	if ok {
		s.c.logger.Info("balance updated",
			log.FieldRecordID, id, log.FieldAmount, balance)
	}
}

// Delete removes the account; deleting an unknown id is a no-op.
func (s *Portfolio) Delete(ctx context.Context, id int64) {
	if s.c.remove(ctx, id) {
		s.c.logger.Info("account deleted", log.FieldRecordID, id)
	}
}

// All returns the accounts, most recent first.
func (s *Portfolio) All() []core.Account {
	return s.c.all()
}

// Get returns one account by id.
func (s *Portfolio) Get(id int64) (core.Account, bool) {
	return s.c.find(id)
}

// TotalsByCategory buckets balances into the net-worth
// super-categories.
func (s *Portfolio) TotalsByCategory() core.CategoryTotals {
	return core.TotalsByCategory(s.c.items)
}

// NetWorth sums every balance.
func (s *Portfolio) NetWorth() decimal.Decimal {
	return core.NetWorth(s.c.items)
}

// Growth reports the account's movement against its first snapshot;
// absent for unknown ids and accounts with fewer than two snapshots.
func (s *Portfolio) Growth(id int64) (core.Growth, bool) {
	a, ok := s.c.find(id)
	if !ok {
		return core.Growth{}, false
	}
	return core.AccountGrowth(a)
}
