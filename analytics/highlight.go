package analytics

import "pd-server/models"

// HighlightedHour is an hourly point with the high-traffic classification
// layered on top. HighTotal repeats the total only for high hours and is nil
// elsewhere, which lets a chart draw the "high traffic" overlay as a line
// with gaps.
type HighlightedHour struct {
	models.HourlyPoint
	IsHigh    bool     `json:"isHigh"`
	HighTotal *float64 `json:"highTotal"`
}

// HighlightHighTraffic flags every hour whose total reaches the q-th
// quantile of the series. The classification only applies to single-day
// views; for week and month ranges the points pass through unflagged.
func HighlightHighTraffic(hourly []models.HourlyPoint, q float64, kind models.RangeKind) []HighlightedHour {
	out := make([]HighlightedHour, len(hourly))
	for i, p := range hourly {
		out[i] = HighlightedHour{HourlyPoint: p}
	}
	if kind != models.RangeDay || len(out) == 0 {
		return out
	}

	totals := make([]float64, len(hourly))
	for i, p := range hourly {
		totals[i] = p.Total
	}
	threshold := Quantile(totals, q)

	for i := range out {
		if out[i].Total >= threshold {
			out[i].IsHigh = true
			out[i].HighTotal = models.Float64Ptr(out[i].Total)
		}
	}
	return out
}
