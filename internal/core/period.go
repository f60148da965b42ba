package core

import "time"

// Period selects the date window for filtering records.
type Period string

const (
	PeriodMonth     Period = "month"     // from the first of the current month
	PeriodLastMonth Period = "lastMonth" // the whole previous month
	PeriodYear      Period = "year"      // from January 1 of the current year
	PeriodAll       Period = "all"       // no filtering
)

// Dated is any record carrying a calendar date.
type Dated interface {
	RecordDate() Date
}

// FilterByPeriod returns the records whose date falls inside the
// period's window relative to today. Bounds are inclusive and compared
// at day granularity; month and year windows are open-ended upward.
func FilterByPeriod[R Dated](records []R, period Period, today Date) []R {
	var lower, upper Date
	switch period {
	case PeriodMonth:
		lower = NewDate(today.Year(), int(today.Month()), 1)
	case PeriodLastMonth:
		first := NewDate(today.Year(), int(today.Month()), 1)
		lower = NewDate(first.Year(), int(first.Month())-1, 1)
		upper = Date{Time: first.AddDate(0, 0, -1)}
	case PeriodYear:
		lower = NewDate(today.Year(), 1, 1)
	default:
		out := make([]R, len(records))
		copy(out, records)
		return out
	}

	out := make([]R, 0, len(records))
	for _, r := range records {
		d := r.RecordDate()
		if d.Before(lower) {
			continue
		}
		if !upper.IsZero() && d.After(upper) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MonthWindow is an explicit month/year pair used by the dashboard's
// month navigation.
type MonthWindow struct {
	Month time.Month
	Year  int
}

// WindowOf returns the month window containing the given date.
func WindowOf(d Date) MonthWindow {
	return MonthWindow{Month: d.Month(), Year: d.Year()}
}

// Prev steps to the previous month, wrapping January back to December.
func (w MonthWindow) Prev() MonthWindow {
	if w.Month == time.January {
		return MonthWindow{Month: time.December, Year: w.Year - 1}
	}
	return MonthWindow{Month: w.Month - 1, Year: w.Year}
}

// Next steps to the following month, wrapping December into January.
func (w MonthWindow) Next() MonthWindow {
	if w.Month == time.December {
		return MonthWindow{Month: time.January, Year: w.Year + 1}
	}
	return MonthWindow{Month: w.Month + 1, Year: w.Year}
}

// Bounds returns the first and last day of the window, both inclusive.
func (w MonthWindow) Bounds() (Date, Date) {
	first := NewDate(w.Year, int(w.Month), 1)
	last := Date{Time: first.AddDate(0, 1, -1)}
	return first, last
}

// Contains reports whether the date falls inside the window.
func (w MonthWindow) Contains(d Date) bool {
	first, last := w.Bounds()
	return !d.Before(first) && !d.After(last)
}

// FilterByWindow returns the records dated inside the explicit
// month/year window.
func FilterByWindow[R Dated](records []R, w MonthWindow) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if w.Contains(r.RecordDate()) {
			out = append(out, r)
		}
	}
	return out
}
