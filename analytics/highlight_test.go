package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/models"
)

func TestHighlightHighTraffic_DayView(t *testing.T) {
	hourly := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 8, Total: 10},
		{Date: "2024-03-04", Hour: 9, Total: 20},
		{Date: "2024-03-04", Hour: 10, Total: 30},
		{Date: "2024-03-04", Hour: 11, Total: 40},
		{Date: "2024-03-04", Hour: 12, Total: 50},
	}

	out := HighlightHighTraffic(hourly, 0.7, models.RangeDay)
	require.Len(t, out, 5)

	// The 0.7 quantile of [10..50] is 40; hours at or above it are high.
	for _, h := range out[:3] {
		assert.False(t, h.IsHigh, "hour %d below threshold", h.Hour)
		assert.Nil(t, h.HighTotal)
	}
	for _, h := range out[3:] {
		assert.True(t, h.IsHigh, "hour %d at or above threshold", h.Hour)
		require.NotNil(t, h.HighTotal)
		assert.Equal(t, h.Total, *h.HighTotal)
	}
}

func TestHighlightHighTraffic_WeekViewUnflagged(t *testing.T) {
	hourly := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 1000},
	}

	out := HighlightHighTraffic(hourly, 0.7, models.RangeWeek)
	require.Len(t, out, 1)
	assert.False(t, out[0].IsHigh)
	assert.Nil(t, out[0].HighTotal)
}

func TestHighlightHighTraffic_Empty(t *testing.T) {
	assert.Empty(t, HighlightHighTraffic(nil, 0.7, models.RangeDay))
}
