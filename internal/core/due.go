package core

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Severity classifies how urgent a statement's payment deadline is.
type Severity string

const (
	SeverityPaid     Severity = "paid"
	SeverityOverdue  Severity = "overdue"
	SeverityDueToday Severity = "due-today"
	SeverityDueSoon  Severity = "due-soon"
	SeverityUpcoming Severity = "upcoming"
)

// DueSoonWindowDays is the horizon inside which an unpaid statement
// counts as due soon.
const DueSoonWindowDays = 7

// DueBadge is the display classification for a statement deadline.
type DueBadge struct {
	Label    string
	Severity Severity
}

// DueStatus classifies a statement against today. Paid statements are
// always Paid regardless of date; otherwise the whole-day offset to the
// due date decides the bucket.
func DueStatus(s Statement, today Date) DueBadge {
	if s.IsPaid {
		return DueBadge{Label: "Paid", Severity: SeverityPaid}
	}
	days := today.DaysUntil(s.DueDate)
	switch {
	case days < 0:
		return DueBadge{Label: "Overdue", Severity: SeverityOverdue}
	case days == 0:
		return DueBadge{Label: "Due Today", Severity: SeverityDueToday}
	case days == 1:
		return DueBadge{Label: "Due in 1 day", Severity: SeverityDueSoon}
	case days <= DueSoonWindowDays:
		return DueBadge{Label: fmt.Sprintf("Due in %d days", days), Severity: SeverityDueSoon}
	default:
		return DueBadge{
			Label:    "Due " + s.DueDate.Format("Jan 2, 2006"),
			Severity: SeverityUpcoming,
		}
	}
}

// UpcomingWithinWindow returns the unpaid statements due between today
// and windowDays from now inclusive, ascending by due date. limit caps
// the result when positive; the dashboard passes 3.
func UpcomingWithinWindow(statements []Statement, today Date, windowDays, limit int) []Statement {
	out := make([]Statement, 0, len(statements))
	for _, s := range statements {
		if s.IsPaid {
			continue
		}
		days := today.DaysUntil(s.DueDate)
		if days < 0 || days > windowDays {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortForDisplay orders statements for the list view: unpaid before
// paid, then ascending by due date within each group. The input is not
// modified.
func SortForDisplay(statements []Statement) []Statement {
	out := make([]Statement, len(statements))
	copy(out, statements)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPaid != out[j].IsPaid {
			return !out[i].IsPaid
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// TotalOutstanding sums the amounts of all unpaid statements.
func TotalOutstanding(statements []Statement) decimal.Decimal {
	total := decimal.Zero
	for _, s := range statements {
		if !s.IsPaid {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// CountUnpaid returns how many statements are still unpaid.
func CountUnpaid(statements []Statement) int {
	n := 0
	for _, s := range statements {
		if !s.IsPaid {
			n++
		}
	}
	return n
}
