// Package storage defines the key-value persistence port the record
// stores save through, plus the fixed namespace keys.
package storage

import "context"

// Fixed namespace keys, one per record kind.
const (
	NamespaceExpenses   = "myfinance_expenses"
	NamespaceIncome     = "myfinance_income"
	NamespaceStatements = "myfinance_statements"
	NamespacePortfolio  = "myfinance_portfolio"
)

// Store is the outbound port for persistence. Each namespace holds one
// opaque document: the JSON encoding of a full record collection.
// Load reports ok=false when the namespace has never been written.
type Store interface {
	Load(ctx context.Context, namespace string) (payload []byte, ok bool, err error)
	Save(ctx context.Context, namespace string, payload []byte) error
}
