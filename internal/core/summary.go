package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SortOrder controls the ordering of grouped totals in a summary.
type SortOrder int

const (
	// SortTaxonomy keeps the taxonomy's declared order.
	SortTaxonomy SortOrder = iota
	// SortByTotalDesc orders groups by descending total, the order the
	// dashboard breakdown uses.
	SortByTotalDesc
)

// GroupTotal is a taxonomy entry together with the total and count of
// the records attributed to it.
type GroupTotal struct {
	TaxonomyEntry
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Summary holds scalar and grouped totals over a filtered record set.
type Summary struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	ByGroup []GroupTotal    `json:"byGroup"`
}

// Grouped is any record that carries a date, a taxonomy reference, and
// an amount.
type Grouped interface {
	Dated
	GroupID() string
	Value() decimal.Decimal
}

// Summarize filters records by period and computes the total, the
// record count, and per-group totals for every taxonomy entry with at
// least one record. A record whose group reference matches no entry is
// attributed to the taxonomy's catch-all entry rather than dropped.
func Summarize[R Grouped](records []R, taxonomy []TaxonomyEntry, period Period, today Date, order SortOrder) Summary {
	filtered := FilterByPeriod(records, period, today)
	return summarize(filtered, taxonomy, order)
}

// SummarizeWindow is the explicit month/year variant used by the
// dashboard.
func SummarizeWindow[R Grouped](records []R, taxonomy []TaxonomyEntry, w MonthWindow, order SortOrder) Summary {
	return summarize(FilterByWindow(records, w), taxonomy, order)
}

func summarize[R Grouped](records []R, taxonomy []TaxonomyEntry, order SortOrder) Summary {
	s := Summary{Total: decimal.Zero}

	known := make(map[string]int, len(taxonomy))
	for i, entry := range taxonomy {
		known[entry.ID] = i
	}

	totals := make([]decimal.Decimal, len(taxonomy))
	counts := make([]int, len(taxonomy))

	fallbackIdx := -1
	if fb, ok := Fallback(taxonomy); ok {
		fallbackIdx = known[fb.ID]
	}

	for _, r := range records {
		s.Total = s.Total.Add(r.Value())
		s.Count++

		idx, ok := known[r.GroupID()]
		if !ok {
			if fallbackIdx < 0 {
				continue
			}
			idx = fallbackIdx
		}
		totals[idx] = totals[idx].Add(r.Value())
		counts[idx]++
	}

	for i, entry := range taxonomy {
		if counts[i] == 0 {
			continue
		}
		s.ByGroup = append(s.ByGroup, GroupTotal{
			TaxonomyEntry: entry,
			Total:         totals[i],
			Count:         counts[i],
		})
	}

	if order == SortByTotalDesc {
		sort.SliceStable(s.ByGroup, func(i, j int) bool {
			return s.ByGroup[i].Total.GreaterThan(s.ByGroup[j].Total)
		})
	}

	return s
}
