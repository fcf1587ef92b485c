package analytics

// Bucket is one aggregation slot handed to FindPeak. The key is opaque here:
// callers pass an hour-of-day for single-day views or a calendar date for
// multi-day views.
type Bucket struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// FindPeak returns the first bucket achieving the maximum total. Ties break
// left-to-right, so running twice over the same input order yields the same
// result. An all-zero series still has a peak (the first bucket); only an
// empty input reports no peak.
func FindPeak(buckets []Bucket) (Bucket, bool) {
	if len(buckets) == 0 {
		return Bucket{}, false
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Total > best.Total {
			best = b
		}
	}
	return best, true
}
