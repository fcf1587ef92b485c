package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"pd-server/db"
	"pd-server/models"
)

const STREET_GEO_KEY_V1 = "street_geo_v1"
const STREET_GEO_MEMBER_FORMAT_V1 = "street_geo_member_v1:%s"
const STREET_CATALOG_KEY_V1 = "street_catalog_v1"

// HOURLY_SERIES_KEY_FORMAT caches one street's hourly points for one date.
// Keyed (street, date) so invalidation can target a single street without
// touching the rest of the cache.
const HOURLY_SERIES_KEY_FORMAT = "hourly_series_v1:%s:%s"

// CALENDAR_DAY_KEY_FORMAT caches the merged calendar/events projection for one date.
const CALENDAR_DAY_KEY_FORMAT = "calendar_day_v1:%s"

// RedisSeriesDAO handles cached series and street data using Redis.
type RedisSeriesDAO struct {
	client db.RedisClient
}

// NewRedisSeriesDAO initializes a RedisSeriesDAO with the Redis client.
func NewRedisSeriesDAO(client db.RedisClient) *RedisSeriesDAO {
	return &RedisSeriesDAO{client: client}
}

// SetHourlySeries caches the hourly points of one street and date.
func (dao *RedisSeriesDAO) SetHourlySeries(street, date string, points []models.HourlyPoint) error {
	key := fmt.Sprintf(HOURLY_SERIES_KEY_FORMAT, street, date)
	data, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal hourly series for %s on %s: %w", street, date, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set hourly series in redis: %w", err)
	}
	return nil
}

// GetHourlySeries retrieves cached hourly points for one street and date.
// A cache miss returns (nil, nil) rather than an error.
func (dao *RedisSeriesDAO) GetHourlySeries(street, date string) ([]models.HourlyPoint, error) {
	key := fmt.Sprintf(HOURLY_SERIES_KEY_FORMAT, street, date)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hourly series from redis: %w", err)
	}
	var points []models.HourlyPoint
	if err := json.Unmarshal([]byte(str), &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hourly series JSON: %w", err)
	}
	return points, nil
}

// InvalidateStreet drops every cached series for a street. Called when the
// active street changes or the refresher re-fetches the street's data.
func (dao *RedisSeriesDAO) InvalidateStreet(street string) error {
	pattern := fmt.Sprintf(HOURLY_SERIES_KEY_FORMAT, street, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return fmt.Errorf("failed to list series keys for street %s: %w", street, err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return fmt.Errorf("failed to delete series key %s: %w", k, err)
		}
	}
	log.Printf("[RedisSeriesDAO] Invalidated %d cached dates for street %s", len(keys), street)
	return nil
}

// SetStreetCatalog caches the upstream street catalog.
func (dao *RedisSeriesDAO) SetStreetCatalog(catalog *models.StreetsResponse) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal street catalog: %w", err)
	}
	if err := dao.client.Set(STREET_CATALOG_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set street catalog in redis: %w", err)
	}
	return nil
}

// GetStreetCatalog retrieves the cached street catalog; (nil, nil) on miss.
func (dao *RedisSeriesDAO) GetStreetCatalog() (*models.StreetsResponse, error) {
	str, err := dao.client.Get(STREET_CATALOG_KEY_V1)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get street catalog from redis: %w", err)
	}
	var catalog models.StreetsResponse
	if err := json.Unmarshal([]byte(str), &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal street catalog JSON: %w", err)
	}
	return &catalog, nil
}

// UpsertStreetLocation stores a counter location in the geo index with the
// street record as its JSON payload.
func (dao *RedisSeriesDAO) UpsertStreetLocation(loc models.StreetLocation) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(STREET_GEO_MEMBER_FORMAT_V1, loc.ID)
	return dao.client.AddLocationWithJSON(ctx, STREET_GEO_KEY_V1, memberKey, loc.Coordinates.Lat, loc.Coordinates.Lon, loc)
}

// GetNearbyStreets retrieves counter locations within a radius (in meters).
func (dao *RedisSeriesDAO) GetNearbyStreets(lat, lon, radius float64) ([]models.StreetLocation, error) {
	payloads, err := dao.client.GetLocationsWithinRadius(STREET_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisSeriesDAO] failed to get nearby streets: %v", err)
	}

	streets := make([]models.StreetLocation, len(payloads))
	for i, payload := range payloads {
		if err := json.Unmarshal([]byte(payload), &streets[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal street JSON: %v", err)
		}
	}
	return streets, nil
}

// SetCalendarDay caches the typed events projected for one date.
func (dao *RedisSeriesDAO) SetCalendarDay(date string, events []models.CalendarEvent) error {
	key := fmt.Sprintf(CALENDAR_DAY_KEY_FORMAT, date)
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal calendar day %s: %w", date, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set calendar day in redis: %w", err)
	}
	return nil
}

// GetCalendarDay retrieves the cached typed events for one date; a miss
// returns (nil, false, nil). An empty cached slice is a valid hit: a date
// with no events stays cached as such.
func (dao *RedisSeriesDAO) GetCalendarDay(date string) ([]models.CalendarEvent, bool, error) {
	key := fmt.Sprintf(CALENDAR_DAY_KEY_FORMAT, date)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get calendar day from redis: %w", err)
	}
	var events []models.CalendarEvent
	if err := json.Unmarshal([]byte(str), &events); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal calendar day JSON: %w", err)
	}
	return events, true, nil
}
