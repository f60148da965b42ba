// Package core provides the domain model and the pure computation layer:
// taxonomy registries, period filtering, summaries, net-worth and growth
// calculations, and the statement due-date policy.
//
// Nothing in this package reads the ambient clock; "today" is always an
// explicit parameter so that every computation is deterministic.
package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar date at day granularity. The time component is
	// always midnight UTC; record dates and reference dates share the
	// same calendar so comparisons never cross timezone boundaries.
	Date struct {
		time.Time
	}

	// Expense is a single spend record classified by category.
	Expense struct {
		ID          int64           `json:"id"`
		Amount      decimal.Decimal `json:"amount"`
		CategoryID  string          `json:"categoryId"`
		Description string          `json:"description,omitempty"`
		Date        Date            `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	// Income is a single earning record classified by source.
	Income struct {
		ID          int64           `json:"id"`
		Amount      decimal.Decimal `json:"amount"`
		SourceID    string          `json:"sourceId"`
		Description string          `json:"description,omitempty"`
		Date        Date            `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	// Statement is a credit-card statement with a payment deadline.
	// MinPayment is nil when the card reports no minimum; an explicit
	// zero is a legitimate zero minimum and is preserved as such.
	Statement struct {
		ID            int64            `json:"id"`
		CardName      string           `json:"cardName"`
		Amount        decimal.Decimal  `json:"amount"`
		StatementDate Date             `json:"statementDate"`
		DueDate       Date             `json:"dueDate"`
		MinPayment    *decimal.Decimal `json:"minPayment,omitempty"`
		IsPaid        bool             `json:"isPaid"`
		CreatedAt     time.Time        `json:"createdAt"`
	}

	// Snapshot is a dated balance observation for an account. At most
	// one snapshot exists per calendar day.
	Snapshot struct {
		Date    Date            `json:"date"`
		Balance decimal.Decimal `json:"balance"`
	}

	// Account is a savings or investment account. History is seeded with
	// the opening balance at creation and grows by one snapshot per day
	// a balance update happens; dates are chronologically non-decreasing.
	Account struct {
		ID            int64           `json:"id"`
		Name          string          `json:"name"`
		Type          string          `json:"type"`
		Balance       decimal.Decimal `json:"balance"`
		InstitutionID string          `json:"institutionId,omitempty"`
		WebsiteURL    string          `json:"websiteUrl,omitempty"`
		History       []Snapshot      `json:"history"`
		CreatedAt     time.Time       `json:"createdAt"`
	}
)

var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrInvalidDate    = errors.New("date is required")
	ErrEmptyCardName  = errors.New("card name is required")
	ErrEmptyName      = errors.New("account name is required")
	ErrEmptyCategory  = errors.New("category is required")
	ErrEmptySource    = errors.New("source is required")
	ErrEmptyType      = errors.New("account type is required")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its UTC calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts YYYY-MM-DD and, for data written by older
// versions, full RFC 3339 timestamps truncated to the day.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = Date{Time: t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// DaysUntil returns the whole-day offset from d to due. Both dates sit
// at midnight, so the division is exact.
func (d Date) DaysUntil(due Date) int {
	return int(due.Sub(d.Time) / (24 * time.Hour))
}

// RecordDate implements Dated.
func (e Expense) RecordDate() Date { return e.Date }

// RecordDate implements Dated.
func (i Income) RecordDate() Date { return i.Date }

// RecordDate implements Dated; statements are filed under their
// statement date, not the payment deadline.
func (s Statement) RecordDate() Date { return s.StatementDate }

// GroupID implements Grouped.
func (e Expense) GroupID() string { return e.CategoryID }

// GroupID implements Grouped.
func (i Income) GroupID() string { return i.SourceID }

// Value implements Grouped.
func (e Expense) Value() decimal.Decimal { return e.Amount }

// Value implements Grouped.
func (i Income) Value() decimal.Decimal { return i.Amount }

// Validate checks an expense draft at the entry boundary. Stored data
// loaded from persistence is never re-validated; computations tolerate
// whatever survives the round trip.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(e.CategoryID) == "" {
		return ErrEmptyCategory
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks an income draft at the entry boundary.
func (i Income) Validate() error {
	if i.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(i.SourceID) == "" {
		return ErrEmptySource
	}
	if !i.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks a statement draft at the entry boundary.
func (s Statement) Validate() error {
	if strings.TrimSpace(s.CardName) == "" {
		return ErrEmptyCardName
	}
	if s.DueDate.IsZero() || s.StatementDate.IsZero() {
		return ErrInvalidDate
	}
	if !s.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if s.MinPayment != nil && s.MinPayment.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Validate checks an account draft at the entry boundary. A zero
// opening balance is allowed; a negative one is not.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(a.Type) == "" {
		return ErrEmptyType
	}
	if a.Balance.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
