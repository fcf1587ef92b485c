package analytics

import (
	"math"
	"sort"

	"pd-server/models"
)

// HourlyFromRecords projects raw records onto chart-ready hourly points,
// summing duplicates for the same (date, hour) slot ("All streets" requests
// deliver one record per street per slot).
func HourlyFromRecords(records []models.PedestrianRecord) []models.HourlyPoint {
	type key struct {
		date string
		hour int
	}
	grouped := make(map[key]*models.HourlyPoint)
	for _, r := range records {
		k := key{r.Date, r.Hour}
		p, ok := grouped[k]
		if !ok {
			p = &models.HourlyPoint{Date: r.Date, Hour: r.Hour}
			grouped[k] = p
		}
		p.Total += r.NPedestrians
		p.Towards += r.NPedestriansTowards
		p.Away += r.NPedestriansAway
	}

	out := make([]models.HourlyPoint, 0, len(grouped))
	for _, p := range grouped {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// DailyFromRecords reduces raw records to one point per date: the day total
// plus the average over the hours that actually reported. The weekday label
// is derived from the date. Temperature averages over the reporting hours;
// the day's weather condition is the most frequent one.
func DailyFromRecords(records []models.PedestrianRecord) []models.DailyPoint {
	type acc struct {
		total      float64
		hours      int
		tempSum    float64
		tempCount  int
		conditions map[string]int
	}
	grouped := make(map[string]*acc)
	for _, r := range records {
		a, ok := grouped[r.Date]
		if !ok {
			a = &acc{conditions: map[string]int{}}
			grouped[r.Date] = a
		}
		a.total += r.NPedestrians
		a.hours++
		if r.Temperature != nil {
			a.tempSum += *r.Temperature
			a.tempCount++
		}
		if r.WeatherCondition != "" {
			a.conditions[r.WeatherCondition]++
		}
	}

	out := make([]models.DailyPoint, 0, len(grouped))
	for date, a := range grouped {
		p := models.DailyPoint{
			Date:    date,
			Total:   a.total,
			Weekday: models.WeekdayName(date),
		}
		if a.hours > 0 {
			p.AvgHourly = math.Round(a.total / float64(a.hours))
		}
		if a.tempCount > 0 {
			p.Temperature = models.Float64Ptr(a.tempSum / float64(a.tempCount))
		}
		best := 0
		for cond, n := range a.conditions {
			if n > best || (n == best && cond < p.WeatherCondition) {
				best = n
				p.WeatherCondition = cond
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
