package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-server/dao/redis"
	"pd-server/db"
	"pd-server/models"
)

func TestRefreshSeriesData(t *testing.T) {
	catalog := &models.StreetsResponse{
		Streets: []string{"Kaiserstraße", "Marktplatz"},
		Count:   2,
		Details: []models.StreetLocation{
			{Name: "Kaiserstraße", ID: "kaiserstrasse", Coordinates: models.Coordinates{Lat: 49.7975, Lon: 9.9345}},
		},
	}
	api := &apiStub{
		streets: func() (*models.StreetsResponse, error) { return catalog, nil },
		historical: func(street, startDate, endDate string) (*models.HistoricalDataResponse, error) {
			if street == "Marktplatz" {
				return nil, errStub("sensor offline")
			}
			return &models.HistoricalDataResponse{
				Street: street,
				Data:   []models.PedestrianRecord{record(endDate, 9, 150, 80)},
			}, nil
		},
	}

	dao := redis.NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))
	sr := NewSeriesRefresherService(dao, api)

	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sr.RefreshSeriesData(now))

	// Catalog cached and locations indexed.
	cachedCatalog, err := dao.GetStreetCatalog()
	require.NoError(t, err)
	require.NotNil(t, cachedCatalog)
	assert.Equal(t, 2, cachedCatalog.Count)

	nearby, err := dao.GetNearbyStreets(49.7975, 9.9345, 100)
	require.NoError(t, err)
	assert.Len(t, nearby, 1)

	// Healthy street re-cached; failed street skipped without failing the run.
	points, err := dao.GetHourlySeries("Kaiserstraße", "2024-03-04")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 150.0, points[0].Total)

	points, err = dao.GetHourlySeries("Marktplatz", "2024-03-04")
	require.NoError(t, err)
	assert.Nil(t, points)
}

func TestRefreshSeriesData_DropsStaleDates(t *testing.T) {
	api := &apiStub{
		streets: func() (*models.StreetsResponse, error) {
			return &models.StreetsResponse{Streets: []string{"Kaiserstraße"}, Count: 1}, nil
		},
		historical: func(street, startDate, endDate string) (*models.HistoricalDataResponse, error) {
			return &models.HistoricalDataResponse{
				Street: street,
				Data:   []models.PedestrianRecord{record(endDate, 9, 150, 80)},
			}, nil
		},
	}

	dao := redis.NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))
	stale := []models.HourlyPoint{{Date: "2023-12-01", Hour: 9, Total: 999}}
	require.NoError(t, dao.SetHourlySeries("Kaiserstraße", "2023-12-01", stale))

	sr := NewSeriesRefresherService(dao, api)
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sr.RefreshSeriesData(now))

	points, err := dao.GetHourlySeries("Kaiserstraße", "2023-12-01")
	require.NoError(t, err)
	assert.Nil(t, points, "stale cached dates are invalidated by the refresh")
}

func TestRefreshSeriesData_CatalogFailure(t *testing.T) {
	api := &apiStub{
		streets: func() (*models.StreetsResponse, error) { return nil, errStub("upstream down") },
	}
	sr := NewSeriesRefresherService(redis.NewRedisSeriesDAO(db.NewMockRedisClient(context.Background())), api)

	err := sr.RefreshSeriesData(time.Now())
	require.Error(t, err, "no catalog means nothing to refresh")
}
