package analytics

import (
	"sort"
	"time"

	"pd-server/models"
)

// FillDailyGaps produces a dense daily series covering every date in
// [rng.Start, min(rng.End, today)]. Missing past or present dates get an
// explicit zero actual (a confirmed-absent observation and a sensor gap are
// indistinguishable here; that ambiguity is documented, not resolved). A
// date strictly after today gets a nil actual so rendering can skip it.
// Existing entries pass through untouched.
func FillDailyGaps(rng models.DateRange, series []models.MergedDailyPoint, now time.Time) []models.MergedDailyPoint {
	today := dayOf(now)

	byDate := make(map[string]models.MergedDailyPoint, len(series))
	for _, p := range series {
		byDate[p.Date] = p
	}

	var out []models.MergedDailyPoint
	for d := dayOf(rng.Start); !d.After(rng.End) && !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateLayout)
		if p, ok := byDate[date]; ok {
			if p.Weekday == "" {
				p.Weekday = models.WeekdayName(date)
			}
			out = append(out, p)
			continue
		}
		out = append(out, models.MergedDailyPoint{
			Date:    date,
			Weekday: models.WeekdayName(date),
			Actual:  models.Float64Ptr(0),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// FillHourlyGaps produces a dense hourly series: every hour of every date in
// [rng.Start, min(rng.End, today)]. Hours at or before now with no data get
// a zero actual; hours strictly after now (including the remainder of today)
// stay nil so the chart line stops at the present instead of dropping to
// zero. Predicted values already merged in are preserved either way.
func FillHourlyGaps(rng models.DateRange, series []models.MergedHourlyPoint, now time.Time) []models.MergedHourlyPoint {
	today := dayOf(now)

	bySlot := make(map[string]models.MergedHourlyPoint, len(series))
	for _, p := range series {
		bySlot[HourKey(p.Date, p.Hour)] = p
	}

	var out []models.MergedHourlyPoint
	for d := dayOf(rng.Start); !d.After(rng.End) && !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateLayout)
		for hour := 0; hour < 24; hour++ {
			if p, ok := bySlot[HourKey(date, hour)]; ok {
				out = append(out, p)
				continue
			}
			slot := models.MergedHourlyPoint{Date: date, Hour: hour}
			slotStart := d.Add(time.Duration(hour) * time.Hour)
			if !slotStart.After(now) {
				slot.Actual = models.Float64Ptr(0)
			}
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Date < out[j].Date
	})
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
