// Package store owns the four in-memory record collections and their
// load/persist lifecycle against the storage port. Every successful
// mutation re-persists the full collection; persistence failures are
// logged and never surfaced to the caller.
package store

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
)

func init() {
	// Persisted documents encode amounts as JSON numbers, matching the
	// format the original data was written in.
	decimal.MarshalJSONWithoutQuotes = true
}

// collection is the shared mechanics of one record kind: an ordered
// in-memory slice (most recent first), a namespace in the storage
// backend, and an id sequence.
type collection[R any] struct {
	namespace string
	backend   storage.Store
	logger    *log.Logger
	idOf      func(R) int64
	seq       *sequence
	items     []R
}

func newCollection[R any](ctx context.Context, namespace string, backend storage.Store, logger *log.Logger, idOf func(R) int64) *collection[R] {
	c := &collection[R]{
		namespace: namespace,
		backend:   backend,
		logger:    logger,
		idOf:      idOf,
		seq:       newSequence(),
	}
	c.load(ctx)
	return c
}

// load pulls the persisted collection. A missing or malformed document
// degrades to an empty collection; it never fails construction.
func (c *collection[R]) load(ctx context.Context) {
	payload, ok, err := c.backend.Load(ctx, c.namespace)
	if err != nil {
		c.logger.Warn("load failed, starting empty",
			log.FieldNamespace, c.namespace, log.FieldError, err)
		return
	}
	if !ok {
		return
	}
	var items []R
	if err := json.Unmarshal(payload, &items); err != nil {
		c.logger.Warn("malformed persisted data, starting empty",
			log.FieldNamespace, c.namespace, log.FieldError, err)
		return
	}
	c.items = items
	for _, r := range items {
		c.seq.observe(c.idOf(r))
	}
	c.logger.Debug("collection loaded",
		log.FieldNamespace, c.namespace, log.FieldCount, len(items))
}

// persist writes the full collection back. Errors are logged, not
// returned: a failed save leaves the in-memory state authoritative and
// the next mutation retries the whole document anyway.
func (c *collection[R]) persist(ctx context.Context) {
	payload, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error("encode collection",
			log.FieldNamespace, c.namespace, log.FieldError, err)
		return
	}
	if err := c.backend.Save(ctx, c.namespace, payload); err != nil {
		c.logger.Error("persist collection",
			log.FieldNamespace, c.namespace, log.FieldError, err)
	}
}

// prepend inserts the record at the front (most recent first) and
// persists.
func (c *collection[R]) prepend(ctx context.Context, r R) {
	c.items = append([]R{r}, c.items...)
	c.persist(ctx)
}

// remove deletes the record with the given id and persists. Removing
// an absent id is a no-op.
func (c *collection[R]) remove(ctx context.Context, id int64) bool {
	for i, r := range c.items {
		if c.idOf(r) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist(ctx)
			return true
		}
	}
	return false
}

// update applies fn to the record with the given id and persists.
// Updating an absent id is a no-op.
func (c *collection[R]) update(ctx context.Context, id int64, fn func(R) R) (R, bool) {
	for i, r := range c.items {
		if c.idOf(r) == id {
			c.items[i] = fn(r)
			c.persist(ctx)
			return c.items[i], true
		}
	}
	var zero R
	return zero, false
}

// find returns the record with the given id.
func (c *collection[R]) find(id int64) (R, bool) {
	for _, r := range c.items {
		if c.idOf(r) == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// all returns a copy of the collection in its stored order.
func (c *collection[R]) all() []R {
	out := make([]R, len(c.items))
	copy(out, c.items)
	return out
}
