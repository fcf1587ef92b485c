package analytics

import (
	"time"

	"pd-server/models"
)

// HeatmapCell is one (day-of-week, hour) slot of the weekly traffic grid.
// Day follows time.Weekday numbering: 0 is Sunday.
type HeatmapCell struct {
	Day          int     `json:"day"`
	Hour         int     `json:"hour"`
	Value        float64 `json:"value"`
	IsPrediction bool    `json:"isPrediction"`
}

// BuildHeatmap buckets hourly points into a 7x24 grid, averaging by
// occurrence count: several Mondays landing on the same 9:00 cell average
// out instead of summing up. Actual points accumulate first. Predicted
// points contribute only to today's hours that have no actual yet and to
// strictly-future slots, and flag those cells as prediction-derived.
//
// With a day or week range the date->row mapping is taken from the window
// itself so the grid rows line up with the selected dates; points outside
// the window are dropped. Otherwise rows come from each date's weekday.
func BuildHeatmap(actual, predicted []models.HourlyPoint, rng *models.DateRange, now time.Time) []HeatmapCell {
	type acc struct {
		sum          float64
		count        int
		isPrediction bool
	}
	grid := make([]acc, 7*24)

	dateToDay := map[string]int{}
	if rng != nil && (rng.Kind == models.RangeDay || rng.Kind == models.RangeWeek) {
		for _, date := range rng.Dates() {
			if t, err := time.Parse(models.DateLayout, date); err == nil {
				dateToDay[date] = int(t.Weekday())
			}
		}
	}

	rowFor := func(date string) (int, bool) {
		if len(dateToDay) > 0 {
			day, ok := dateToDay[date]
			return day, ok
		}
		t, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return 0, false
		}
		return int(t.Weekday()), true
	}

	todayStr := now.Format(models.DateLayout)
	currentHour := now.Hour()

	// Hours of today already covered by an observation.
	actualsToday := map[int]bool{}
	for _, p := range actual {
		if p.Date == todayStr {
			actualsToday[p.Hour] = true
		}
	}

	for _, p := range actual {
		day, ok := rowFor(p.Date)
		if !ok || p.Hour < 0 || p.Hour > 23 {
			continue
		}
		cell := &grid[day*24+p.Hour]
		cell.sum += p.Total
		cell.count++
		cell.isPrediction = false
	}

	for _, p := range predicted {
		day, ok := rowFor(p.Date)
		if !ok || p.Hour < 0 || p.Hour > 23 {
			continue
		}
		isToday := p.Date == todayStr
		isFuture := p.Date > todayStr || (isToday && p.Hour > currentHour)
		if (isToday && !actualsToday[p.Hour]) || isFuture {
			cell := &grid[day*24+p.Hour]
			cell.sum += p.Total
			cell.count++
			cell.isPrediction = true
		}
	}

	cells := make([]HeatmapCell, 0, len(grid))
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			a := grid[day*24+hour]
			value := 0.0
			if a.count > 0 {
				value = a.sum / float64(a.count)
			}
			cells = append(cells, HeatmapCell{
				Day:          day,
				Hour:         hour,
				Value:        value,
				IsPrediction: a.isPrediction,
			})
		}
	}
	return cells
}
