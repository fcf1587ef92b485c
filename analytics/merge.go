package analytics

import (
	"fmt"
	"sort"

	"pd-server/models"
)

// MergeHourly combines an actual and a predicted hourly series into one
// time-indexed series. Duplicate entries within one side are summed first
// (multiple streets contributing to the same slot), then actual values take
// precedence wherever both sides cover a slot. Slots present on only one
// side keep the other side nil. The result is sorted by (date, hour); map
// iteration order is never relied on.
func MergeHourly(actual, predicted []models.HourlyPoint) []models.MergedHourlyPoint {
	type key struct {
		date string
		hour int
	}
	merged := make(map[key]*models.MergedHourlyPoint)

	for _, p := range predicted {
		k := key{p.Date, p.Hour}
		e, ok := merged[k]
		if !ok {
			e = &models.MergedHourlyPoint{Date: p.Date, Hour: p.Hour}
			merged[k] = e
		}
		if e.Predicted == nil {
			e.Predicted = models.Float64Ptr(0)
		}
		*e.Predicted += p.Total
	}

	for _, a := range actual {
		k := key{a.Date, a.Hour}
		e, ok := merged[k]
		if !ok {
			e = &models.MergedHourlyPoint{Date: a.Date, Hour: a.Hour}
			merged[k] = e
		}
		if e.Actual == nil {
			e.Actual = models.Float64Ptr(0)
		}
		*e.Actual += a.Total
	}

	out := make([]models.MergedHourlyPoint, 0, len(merged))
	for _, e := range merged {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// MergeDaily combines an actual and a predicted daily series, same precedence
// rules as MergeHourly but keyed by date alone.
func MergeDaily(actual, predicted []models.DailyPoint) []models.MergedDailyPoint {
	merged := make(map[string]*models.MergedDailyPoint)

	for _, p := range predicted {
		e, ok := merged[p.Date]
		if !ok {
			e = &models.MergedDailyPoint{Date: p.Date, Weekday: p.Weekday}
			merged[p.Date] = e
		}
		if e.Predicted == nil {
			e.Predicted = models.Float64Ptr(0)
		}
		*e.Predicted += p.Total
	}

	for _, a := range actual {
		e, ok := merged[a.Date]
		if !ok {
			e = &models.MergedDailyPoint{Date: a.Date, Weekday: a.Weekday}
			merged[a.Date] = e
		}
		if a.Weekday != "" {
			e.Weekday = a.Weekday
		}
		if e.Actual == nil {
			e.Actual = models.Float64Ptr(0)
		}
		*e.Actual += a.Total
	}

	out := make([]models.MergedDailyPoint, 0, len(merged))
	for _, e := range merged {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// HourKey renders the composite (date, hour) key used by lookup maps.
func HourKey(date string, hour int) string {
	return fmt.Sprintf("%s__%02d", date, hour)
}
