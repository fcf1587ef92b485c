package services

import (
	"log"

	"pd-server/api/pedestrianapi"
	"pd-server/dao/redis"
	"pd-server/models"
)

// StreetService serves the street catalog and the counter geo index.
type StreetService struct {
	seriesDao     *redis.RedisSeriesDAO
	pedestrianApi pedestrianapi.PedestrianAPI
}

// NewStreetService constructs a new StreetService with its dependencies.
func NewStreetService(
	seriesDao *redis.RedisSeriesDAO,
	pedestrianApi pedestrianapi.PedestrianAPI) *StreetService {

	return &StreetService{
		seriesDao:     seriesDao,
		pedestrianApi: pedestrianApi,
	}
}

// GetStreets returns the street catalog, consulting the cache before the
// upstream API. A fresh upstream catalog is cached and its counter locations
// are upserted into the geo index.
func (ss *StreetService) GetStreets() (*models.StreetsResponse, error) {
	if cached, err := ss.seriesDao.GetStreetCatalog(); err == nil && cached != nil {
		return cached, nil
	}

	catalog, err := ss.pedestrianApi.GetStreets()
	if err != nil {
		return nil, err
	}
	if err := ss.seriesDao.SetStreetCatalog(catalog); err != nil {
		log.Printf("[StreetService] Failed to cache street catalog: %v", err)
	}
	ss.indexLocations(catalog)
	return catalog, nil
}

// GetStreetsNearby returns the counter locations within radius meters.
func (ss *StreetService) GetStreetsNearby(lat, lon, radius float64) ([]models.StreetLocation, error) {
	return ss.seriesDao.GetNearbyStreets(lat, lon, radius)
}

// indexLocations upserts every counter location of the catalog into the geo
// index. Failures are logged per street; the catalog itself is still served.
func (ss *StreetService) indexLocations(catalog *models.StreetsResponse) {
	for _, loc := range catalog.Details {
		if err := ss.seriesDao.UpsertStreetLocation(loc); err != nil {
			log.Printf("[StreetService] Failed to index location for %s: %v", loc.Name, err)
		}
	}
}
