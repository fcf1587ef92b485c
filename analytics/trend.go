package analytics

import (
	"math"
	"time"

	"pd-server/models"
)

// TrendDirection is the qualitative reading of a trend window comparison.
type TrendDirection string

const (
	TrendIncrease TrendDirection = "increase"
	TrendDecrease TrendDirection = "decrease"
	TrendStable   TrendDirection = "stable"
)

// TrendConfidence grades how much of the future window the forecast covers.
type TrendConfidence string

const (
	ConfidenceHigh   TrendConfidence = "high"
	ConfidenceMedium TrendConfidence = "medium"
	ConfidenceLow    TrendConfidence = "low"
)

// TrendConfig carries the tunable thresholds. The defaults reproduce the
// dashboard's historical behavior; neither value is derived from anything,
// so both stay configurable instead of being buried as literals.
type TrendConfig struct {
	DeadbandPct    float64 // +-window within which a change reads as stable
	HighCoverage   float64 // future-window coverage fraction for "high"
	MediumCoverage float64
}

// DefaultTrendConfig returns the standard thresholds: +-10% dead-band,
// high confidence at >=80% forecast coverage, medium at >=40%.
func DefaultTrendConfig() TrendConfig {
	return TrendConfig{DeadbandPct: 10, HighCoverage: 0.8, MediumCoverage: 0.4}
}

// TrendResult compares the window immediately before the pivot against the
// window immediately after it. HasData is false when the past window has no
// usable baseline; the zero totals and stable direction then stand in for a
// neutral "no data" state rather than a NaN percentage.
type TrendResult struct {
	PastTotal        float64         `json:"pastTotal"`
	FutureTotal      float64         `json:"futureTotal"`
	PercentageChange float64         `json:"percentageChange"`
	Direction        TrendDirection  `json:"direction"`
	Confidence       TrendConfidence `json:"confidence"`
	HasData          bool            `json:"hasData"`
}

// HourlyTrend compares [pivot-size*h, pivot) against [pivot, pivot+size*h)
// over a merged hourly series. The past window prefers actual values and
// falls back to predicted; the future window prefers predicted and falls
// back to actual (an already-elapsed hour inside an otherwise future window
// has real data). When a window boundary falls mid-hour the bucket's value
// is apportioned by the fraction of the hour inside the window.
func HourlyTrend(pivot time.Time, size int, series []models.MergedHourlyPoint, cfg TrendConfig) TrendResult {
	lookup := make(map[string]models.MergedHourlyPoint, len(series))
	for _, p := range series {
		lookup[HourKey(p.Date, p.Hour)] = p
	}

	span := time.Duration(size) * time.Hour
	pastTotal := windowSum(pivot.Add(-span), pivot, lookup, actualPreferring)
	futureTotal := windowSum(pivot, pivot.Add(span), lookup, predictedPreferring)

	res := classify(pastTotal, futureTotal, float64(size), cfg)
	res.Confidence = coverageConfidence(futureCoverage(pivot, size, lookup), cfg)
	return res
}

// DailyTrend compares the size calendar days before the pivot's day against
// the size days starting at the pivot's day inclusive, using whole-day sums.
func DailyTrend(pivot time.Time, size int, series []models.MergedDailyPoint, cfg TrendConfig) TrendResult {
	lookup := make(map[string]models.MergedDailyPoint, len(series))
	for _, p := range series {
		lookup[p.Date] = p
	}

	day := dayOf(pivot)
	var pastTotal, futureTotal float64
	futureCovered := 0
	for i := 1; i <= size; i++ {
		if p, ok := lookup[day.AddDate(0, 0, -i).Format(models.DateLayout)]; ok {
			pastTotal += pick(p.Actual, p.Predicted)
		}
	}
	for i := 0; i < size; i++ {
		p, ok := lookup[day.AddDate(0, 0, i).Format(models.DateLayout)]
		if !ok {
			continue
		}
		futureTotal += pick(p.Predicted, p.Actual)
		if p.Predicted != nil {
			futureCovered++
		}
	}

	res := classify(pastTotal, futureTotal, float64(size), cfg)
	res.Confidence = coverageConfidence(float64(futureCovered)/float64(size), cfg)
	return res
}

type valuePicker func(p models.MergedHourlyPoint) (float64, bool)

func actualPreferring(p models.MergedHourlyPoint) (float64, bool) {
	if p.Actual != nil {
		return *p.Actual, true
	}
	if p.Predicted != nil {
		return *p.Predicted, true
	}
	return 0, false
}

func predictedPreferring(p models.MergedHourlyPoint) (float64, bool) {
	if p.Predicted != nil {
		return *p.Predicted, true
	}
	if p.Actual != nil {
		return *p.Actual, true
	}
	return 0, false
}

// windowSum walks every hour bucket overlapping [start, end) and sums the
// picked values, scaling a bucket by the fraction of it inside the window.
func windowSum(start, end time.Time, lookup map[string]models.MergedHourlyPoint, pick valuePicker) float64 {
	var total float64
	bucket := start.Truncate(time.Hour)
	for bucket.Before(end) {
		bucketEnd := bucket.Add(time.Hour)

		overlapStart := start
		if bucket.After(overlapStart) {
			overlapStart = bucket
		}
		overlapEnd := end
		if bucketEnd.Before(overlapEnd) {
			overlapEnd = bucketEnd
		}
		frac := overlapEnd.Sub(overlapStart).Hours()

		if frac > 0 {
			key := HourKey(bucket.Format(models.DateLayout), bucket.Hour())
			if p, ok := lookup[key]; ok {
				if v, ok := pick(p); ok {
					total += v * frac
				}
			}
		}
		bucket = bucketEnd
	}
	return total
}

// futureCoverage reports the fraction of the next size hour buckets carrying
// a predicted value. Partial buckets count the same as whole ones; this is a
// qualitative hint, not part of the percentage computation.
func futureCoverage(pivot time.Time, size int, lookup map[string]models.MergedHourlyPoint) float64 {
	if size <= 0 {
		return 0
	}
	covered := 0
	buckets := 0
	bucket := pivot.Truncate(time.Hour)
	end := pivot.Add(time.Duration(size) * time.Hour)
	for bucket.Before(end) {
		buckets++
		key := HourKey(bucket.Format(models.DateLayout), bucket.Hour())
		if p, ok := lookup[key]; ok && p.Predicted != nil {
			covered++
		}
		bucket = bucket.Add(time.Hour)
	}
	if buckets == 0 {
		return 0
	}
	return float64(covered) / float64(buckets)
}

func classify(pastTotal, futureTotal, size float64, cfg TrendConfig) TrendResult {
	res := TrendResult{
		PastTotal:   pastTotal,
		FutureTotal: futureTotal,
		Direction:   TrendStable,
		Confidence:  ConfidenceLow,
	}

	pastAvg := pastTotal / size
	// Checked before dividing: a zero or non-finite baseline must surface as
	// a neutral result, never as NaN/Inf in a rendered value.
	if pastAvg == 0 || math.IsNaN(pastAvg) || math.IsInf(pastAvg, 0) {
		return res
	}

	futureAvg := futureTotal / size
	res.PercentageChange = (futureAvg - pastAvg) / pastAvg * 100
	res.HasData = true

	switch {
	case res.PercentageChange > cfg.DeadbandPct:
		res.Direction = TrendIncrease
	case res.PercentageChange < -cfg.DeadbandPct:
		res.Direction = TrendDecrease
	default:
		res.Direction = TrendStable
	}
	return res
}

func coverageConfidence(frac float64, cfg TrendConfig) TrendConfidence {
	switch {
	case frac >= cfg.HighCoverage:
		return ConfidenceHigh
	case frac >= cfg.MediumCoverage:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func pick(first, second *float64) float64 {
	if first != nil {
		return *first
	}
	if second != nil {
		return *second
	}
	return 0
}
