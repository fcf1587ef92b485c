package analytics

import (
	"math"
	"strconv"

	"pd-server/models"
)

// WeatherImpact grades how strongly weather correlates with foot traffic.
type WeatherImpact string

const (
	WeatherImpactLow    WeatherImpact = "low"
	WeatherImpactMedium WeatherImpact = "medium"
	WeatherImpactHigh   WeatherImpact = "high"
)

// Statistics is the summary card block for one street and period.
type Statistics struct {
	TotalPedestrians float64       `json:"totalPedestrians"`
	AvgHourlyCount   float64       `json:"avgHourlyCount"`
	PeakHour         int           `json:"peakHour"`
	PeakCount        float64       `json:"peakCount"`
	DirectionRatio   float64       `json:"directionRatio"` // % moving towards the city center
	WeatherImpact    WeatherImpact `json:"weatherImpact"`
}

// ComputeStatistics reduces raw records to the summary cards: grand total,
// rounded hourly average, the peak hour-of-day with its total, the share of
// pedestrians moving towards the center, and the weather impact grade.
// Empty input yields the all-zero statistics rather than an error; the
// caller renders that as "no data".
func ComputeStatistics(records []models.PedestrianRecord) Statistics {
	stats := Statistics{WeatherImpact: WeatherImpactLow}
	if len(records) == 0 {
		return stats
	}

	var total, towards float64
	hourTotals := make(map[int]float64)
	for _, r := range records {
		total += r.NPedestrians
		towards += r.NPedestriansTowards
		hourTotals[r.Hour] += r.NPedestrians
	}

	stats.TotalPedestrians = total
	stats.AvgHourlyCount = math.Round(total / float64(len(records)))

	buckets := make([]Bucket, 0, len(hourTotals))
	for hour := 0; hour < 24; hour++ {
		if t, ok := hourTotals[hour]; ok {
			buckets = append(buckets, Bucket{Key: strconv.Itoa(hour), Total: t})
		}
	}
	if peak, ok := FindPeak(buckets); ok {
		stats.PeakHour, _ = strconv.Atoi(peak.Key)
		stats.PeakCount = peak.Total
	}

	if total > 0 {
		stats.DirectionRatio = math.Round(towards / total * 100)
	}
	stats.WeatherImpact = weatherImpact(records)
	return stats
}

// weatherImpact grades the absolute Pearson correlation between temperature
// and count: above 0.7 high, above 0.4 medium, otherwise low. Fewer than 10
// temperature-bearing records is too thin to call anything but low.
func weatherImpact(records []models.PedestrianRecord) WeatherImpact {
	var temps, counts []float64
	for _, r := range records {
		if r.Temperature != nil {
			temps = append(temps, *r.Temperature)
			counts = append(counts, r.NPedestrians)
		}
	}
	if len(temps) < 10 {
		return WeatherImpactLow
	}

	r := math.Abs(correlation(temps, counts))
	switch {
	case r > 0.7:
		return WeatherImpactHigh
	case r > 0.4:
		return WeatherImpactMedium
	default:
		return WeatherImpactLow
	}
}

// correlation computes the Pearson coefficient of two equal-length series.
// A degenerate denominator (constant series) yields 0.
func correlation(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
