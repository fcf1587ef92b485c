package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/models"
)

func cellAt(t *testing.T, cells []HeatmapCell, day, hour int) HeatmapCell {
	t.Helper()
	for _, c := range cells {
		if c.Day == day && c.Hour == hour {
			return c
		}
	}
	t.Fatalf("no cell for day=%d hour=%d", day, hour)
	return HeatmapCell{}
}

func TestBuildHeatmap_AveragesByOccurrence(t *testing.T) {
	// Two Mondays landing on the same 9:00 cell.
	actual := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 10},
		{Date: "2024-03-11", Hour: 9, Total: 20},
	}
	now := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)

	cells := BuildHeatmap(actual, nil, nil, now)
	require.Len(t, cells, 7*24)

	monday9 := cellAt(t, cells, int(time.Monday), 9)
	assert.Equal(t, 15.0, monday9.Value, "cells average, never sum")
	assert.False(t, monday9.IsPrediction)
}

func TestBuildHeatmap_PredictionFillsFutureSlots(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC) // Monday noon

	actual := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 11, Total: 100},
	}
	predicted := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 11, Total: 999}, // covered by an actual already
		{Date: "2024-03-04", Hour: 15, Total: 60},  // later today
		{Date: "2024-03-05", Hour: 9, Total: 80},   // tomorrow
	}

	rng := models.NewDateRange(models.RangeWeek, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	cells := BuildHeatmap(actual, predicted, &rng, now)

	monday11 := cellAt(t, cells, int(time.Monday), 11)
	assert.Equal(t, 100.0, monday11.Value, "an observed hour ignores its forecast")
	assert.False(t, monday11.IsPrediction)

	monday15 := cellAt(t, cells, int(time.Monday), 15)
	assert.Equal(t, 60.0, monday15.Value)
	assert.True(t, monday15.IsPrediction)

	tuesday9 := cellAt(t, cells, int(time.Tuesday), 9)
	assert.Equal(t, 80.0, tuesday9.Value)
	assert.True(t, tuesday9.IsPrediction)
}

func TestBuildHeatmap_WindowFiltersDates(t *testing.T) {
	rng := models.NewDateRange(models.RangeWeek, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)

	actual := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 100},
		{Date: "2024-02-01", Hour: 9, Total: 999}, // outside the window
	}

	cells := BuildHeatmap(actual, nil, &rng, now)

	monday9 := cellAt(t, cells, int(time.Monday), 9)
	assert.Equal(t, 100.0, monday9.Value)

	thursday9 := cellAt(t, cells, int(time.Thursday), 9) // 2024-02-01 was a Thursday
	assert.Equal(t, 0.0, thursday9.Value, "out-of-window points are dropped")
}

func TestBuildHeatmap_EmptyInput(t *testing.T) {
	cells := BuildHeatmap(nil, nil, nil, time.Now())
	require.Len(t, cells, 7*24)
	for _, c := range cells {
		assert.Equal(t, 0.0, c.Value)
		assert.False(t, c.IsPrediction)
	}
}
