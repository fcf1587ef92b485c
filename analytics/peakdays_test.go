package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/models"
)

func TestDailyPeaks_WeekView(t *testing.T) {
	hourly := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 100},
		{Date: "2024-03-04", Hour: 12, Total: 400},
		{Date: "2024-03-05", Hour: 10, Total: 250},
	}
	daily := []models.DailyPoint{
		{Date: "2024-03-04", Total: 500, Weekday: "Monday"},
		{Date: "2024-03-05", Total: 250, Weekday: "Tuesday"},
		{Date: "2024-03-06", Total: 0, Weekday: "Wednesday"},
		{Date: "2024-03-09", Total: 0, Weekday: "Saturday"},
	}
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	peaks := DailyPeaks(hourly, daily, models.RangeWeek, now)
	require.Len(t, peaks, 3, "days after today are dropped")

	require.NotNil(t, peaks[0].PeakHour)
	assert.Equal(t, 12, *peaks[0].PeakHour)
	require.NotNil(t, peaks[0].PeakCount)
	assert.Equal(t, 400.0, *peaks[0].PeakCount)

	require.NotNil(t, peaks[1].PeakHour)
	assert.Equal(t, 10, *peaks[1].PeakHour)

	assert.Nil(t, peaks[2].PeakHour, "a day with no hourly data has no peak")
	assert.Nil(t, peaks[2].PeakCount)
}

func TestDailyPeaks_DayView(t *testing.T) {
	hourly := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 100},
		{Date: "2024-03-04", Hour: 12, Total: 400},
		{Date: "2024-03-04", Hour: 15, Total: 300},
	}
	now := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	peaks := DailyPeaks(hourly, nil, models.RangeDay, now)
	require.Len(t, peaks, 1)

	p := peaks[0]
	assert.Equal(t, "2024-03-04", p.Date)
	assert.Equal(t, 800.0, p.Total)
	require.NotNil(t, p.PeakHour)
	assert.Equal(t, 12, *p.PeakHour)
	require.NotNil(t, p.PeakCount)
	assert.Equal(t, 400.0, *p.PeakCount)
}

func TestDailyPeaks_DayViewEmpty(t *testing.T) {
	assert.Empty(t, DailyPeaks(nil, nil, models.RangeDay, time.Now()))
}

func TestSingleDayPeakSeries(t *testing.T) {
	hourly := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 100},
		{Date: "2024-03-04", Hour: 12, Total: 400},
	}
	peaks := DailyPeaks(hourly, nil, models.RangeDay, time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC))

	series := SingleDayPeakSeries(hourly, peaks)
	require.Len(t, series, 24)

	assert.Equal(t, 100.0, series[9].Total)
	assert.False(t, series[9].IsPeak)

	assert.Equal(t, 400.0, series[12].Total)
	assert.True(t, series[12].IsPeak)
	assert.Equal(t, 400.0, series[12].PeakCount)

	assert.Equal(t, 0.0, series[0].Total, "uncovered hours render as zero")
	assert.False(t, series[0].IsPeak)
}
