package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/db"
	"pd-server/models"
)

func TestRedisSeriesDAO_HourlySeriesRoundTrip(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	points := []models.HourlyPoint{
		{Date: "2024-03-04", Hour: 9, Total: 120, Towards: 70, Away: 50},
		{Date: "2024-03-04", Hour: 10, Total: 180, Towards: 90, Away: 90},
	}
	require.NoError(t, dao.SetHourlySeries("Kaiserstraße", "2024-03-04", points))

	got, err := dao.GetHourlySeries("Kaiserstraße", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestRedisSeriesDAO_HourlySeriesMiss(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	got, err := dao.GetHourlySeries("Kaiserstraße", "2024-03-04")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSeriesDAO_InvalidateStreet(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	points := []models.HourlyPoint{{Date: "2024-03-04", Hour: 9, Total: 120}}
	require.NoError(t, dao.SetHourlySeries("Kaiserstraße", "2024-03-04", points))
	require.NoError(t, dao.SetHourlySeries("Kaiserstraße", "2024-03-05", points))
	require.NoError(t, dao.SetHourlySeries("Marktplatz", "2024-03-04", points))

	require.NoError(t, dao.InvalidateStreet("Kaiserstraße"))

	got, err := dao.GetHourlySeries("Kaiserstraße", "2024-03-04")
	require.NoError(t, err)
	assert.Nil(t, got, "invalidated street's series should be gone")

	got, err = dao.GetHourlySeries("Marktplatz", "2024-03-04")
	require.NoError(t, err)
	assert.Len(t, got, 1, "other street's cache should survive")
}

func TestRedisSeriesDAO_StreetCatalog(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	miss, err := dao.GetStreetCatalog()
	require.NoError(t, err)
	assert.Nil(t, miss)

	catalog := &models.StreetsResponse{Streets: []string{"Kaiserstraße", "Marktplatz"}}
	require.NoError(t, dao.SetStreetCatalog(catalog))

	got, err := dao.GetStreetCatalog()
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestRedisSeriesDAO_NearbyStreets(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	loc := models.StreetLocation{
		ID:   "kaiserstrasse",
		Name: "Kaiserstraße",
		Coordinates: models.Coordinates{
			Lat: 49.7944,
			Lon: 9.9294,
		},
	}
	require.NoError(t, dao.UpsertStreetLocation(loc))

	nearby, err := dao.GetNearbyStreets(49.7946, 9.9290, 500)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "Kaiserstraße", nearby[0].Name)
}

func TestRedisSeriesDAO_CalendarDay(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	_, hit, err := dao.GetCalendarDay("2024-03-04")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, dao.SetCalendarDay("2024-03-04", []models.CalendarEvent{}))

	events, hit, err := dao.GetCalendarDay("2024-03-04")
	require.NoError(t, err)
	assert.True(t, hit, "empty event list is still a cache hit")
	assert.Empty(t, events)
}
