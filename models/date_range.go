package models

import "time"

// RangeKind selects the dashboard view granularity.
type RangeKind string

const (
	RangeDay   RangeKind = "day"
	RangeWeek  RangeKind = "week"
	RangeMonth RangeKind = "month"
)

// DateRange is an anchored window: the start is the user-selected date and
// the end is mechanically derived from it. There is no snapping to Monday or
// to the first of the month.
type DateRange struct {
	Kind  RangeKind `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds the anchored window for a kind and selected date:
// day..[d, d], week..[d, d+6], month..[d, d+1month-1day].
func NewDateRange(kind RangeKind, anchor time.Time) DateRange {
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	var end time.Time
	switch kind {
	case RangeWeek:
		end = start.AddDate(0, 0, 6)
	case RangeMonth:
		end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	default:
		kind = RangeDay
		end = start
	}
	return DateRange{Kind: kind, Start: start, End: end}
}

// StartDate returns the window start as YYYY-MM-DD.
func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the window end as YYYY-MM-DD.
func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

// Dates lists every calendar date in the window, inclusive.
func (r DateRange) Dates() []string {
	var dates []string
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// Days returns the window length in calendar days.
func (r DateRange) Days() int {
	return len(r.Dates())
}
