package analytics

import (
	"sort"
	"strconv"
	"time"

	"pd-server/models"
)

// DailyWithPeak is a daily point annotated with the peak hour observed on
// that date. Both annotations stay nil when no hourly data exists for the
// day; the caller falls back to a zero/unknown display.
type DailyWithPeak struct {
	models.DailyPoint
	PeakHour  *int     `json:"peakHour"`
	PeakCount *float64 `json:"peakCount"`
}

// SingleDayPeakPoint is one slot of the dense 24-hour peak series used by
// the single-day view.
type SingleDayPeakPoint struct {
	Hour      int     `json:"hour"`
	Total     float64 `json:"total"`
	PeakCount float64 `json:"peakCount"`
	IsPeak    bool    `json:"isPeak"`
	Date      string  `json:"date,omitempty"`
}

// DailyPeaks annotates each day of a week/month view with its peak hour and
// peak count, dropping days after today (they cannot have observed peaks
// yet). In day view the single date is annotated with the global peak hour
// of its hourly series.
func DailyPeaks(hourly []models.HourlyPoint, daily []models.DailyPoint, kind models.RangeKind, now time.Time) []DailyWithPeak {
	if kind == models.RangeDay {
		return singleDayPeak(hourly)
	}

	byDate := make(map[string][]models.HourlyPoint)
	for _, h := range hourly {
		byDate[h.Date] = append(byDate[h.Date], h)
	}

	today := dayOf(now)
	var out []DailyWithPeak
	for _, d := range daily {
		t, err := time.Parse(models.DateLayout, d.Date)
		if err != nil || t.After(today) {
			continue
		}
		entry := DailyWithPeak{DailyPoint: d}
		if hours := byDate[d.Date]; len(hours) > 0 {
			buckets := make([]Bucket, len(hours))
			for i, h := range hours {
				buckets[i] = Bucket{Key: strconv.Itoa(h.Hour), Total: h.Total}
			}
			if peak, ok := FindPeak(buckets); ok {
				hour, _ := strconv.Atoi(peak.Key)
				entry.PeakHour = &hour
				entry.PeakCount = models.Float64Ptr(peak.Total)
			}
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func singleDayPeak(hourly []models.HourlyPoint) []DailyWithPeak {
	if len(hourly) == 0 {
		return nil
	}

	buckets := make([]Bucket, len(hourly))
	for i, h := range hourly {
		buckets[i] = Bucket{Key: strconv.Itoa(h.Hour), Total: h.Total}
	}
	peak, _ := FindPeak(buckets)
	peakHour, _ := strconv.Atoi(peak.Key)

	date := hourly[0].Date
	var dayTotal float64
	for _, h := range hourly {
		dayTotal += h.Total
	}

	return []DailyWithPeak{{
		DailyPoint: models.DailyPoint{
			Date:      date,
			Total:     dayTotal,
			AvgHourly: dayTotal / float64(len(hourly)),
			Weekday:   models.WeekdayName(date),
		},
		PeakHour:  &peakHour,
		PeakCount: models.Float64Ptr(peak.Total),
	}}
}

// SingleDayPeakSeries expands a day's hourly data into a dense 0..23 series
// with the peak hour marked, so the chart can overlay a peak bar on top of
// the hourly line.
func SingleDayPeakSeries(hourly []models.HourlyPoint, peaks []DailyWithPeak) []SingleDayPeakPoint {
	peakHour := -1
	var peakCount float64
	var date string
	if len(peaks) > 0 {
		date = peaks[0].Date
		if peaks[0].PeakHour != nil {
			peakHour = *peaks[0].PeakHour
		}
		if peaks[0].PeakCount != nil {
			peakCount = *peaks[0].PeakCount
		}
	}
	if date == "" && len(hourly) > 0 {
		date = hourly[0].Date
	}

	byHour := make(map[int]float64)
	for _, h := range hourly {
		if h.Hour >= 0 && h.Hour <= 23 {
			byHour[h.Hour] = h.Total
		}
	}

	out := make([]SingleDayPeakPoint, 24)
	for hour := 0; hour < 24; hour++ {
		p := SingleDayPeakPoint{Hour: hour, Total: byHour[hour], Date: date}
		if hour == peakHour {
			p.PeakCount = peakCount
			p.IsPeak = true
		}
		out[hour] = p
	}
	return out
}
