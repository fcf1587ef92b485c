package services

import (
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"pd-server/analytics"
	"pd-server/api/pedestrianapi"
	"pd-server/dao/redis"
	"pd-server/models"
)

// refreshLookbackDays is how far back each refresh re-fetches. Recent days
// get corrected upstream (late sensor uploads), so a trailing window is
// re-cached instead of only today.
const refreshLookbackDays = 7

const refreshConcurrency = 4

// SeriesRefresherService periodically re-fetches and re-caches per-street
// hourly series so dashboards keep working through upstream outages.
type SeriesRefresherService struct {
	seriesDao     *redis.RedisSeriesDAO
	pedestrianApi pedestrianapi.PedestrianAPI
}

// NewSeriesRefresherService constructs a new refresher with its dependencies.
func NewSeriesRefresherService(
	seriesDao *redis.RedisSeriesDAO,
	pedestrianApi pedestrianapi.PedestrianAPI) *SeriesRefresherService {

	return &SeriesRefresherService{
		seriesDao:     seriesDao,
		pedestrianApi: pedestrianApi,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (sr *SeriesRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *SeriesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[SeriesRefresherService] Running periodic series refresher job.")
		if err := sr.RefreshSeriesData(time.Now()); err != nil {
			log.Printf("[SeriesRefresherService] RefreshSeriesData returned error: %v", err)
		} else {
			log.Println("[SeriesRefresherService] RefreshSeriesData completed successfully.")
		}
	}
}

// RefreshSeriesData re-fetches the street catalog, re-indexes the counter
// locations, and re-caches the trailing window of every street's hourly
// series. Per-street failures are logged and skipped.
func (sr *SeriesRefresherService) RefreshSeriesData(now time.Time) error {
	catalog, err := sr.pedestrianApi.GetStreets()
	if err != nil {
		return err
	}
	if err := sr.seriesDao.SetStreetCatalog(catalog); err != nil {
		log.Printf("[SeriesRefresherService] Failed to cache street catalog: %v", err)
	}
	for _, loc := range catalog.Details {
		if err := sr.seriesDao.UpsertStreetLocation(loc); err != nil {
			log.Printf("[SeriesRefresherService] Failed to index location for %s: %v", loc.Name, err)
		}
	}

	startDate := now.AddDate(0, 0, -refreshLookbackDays).Format(models.DateLayout)
	endDate := now.Format(models.DateLayout)
	log.Printf("[SeriesRefresherService] Refreshing %d streets for %s..%s",
		len(catalog.Streets), startDate, endDate)

	var g errgroup.Group
	g.SetLimit(refreshConcurrency)
	for _, street := range catalog.Streets {
		street := street
		g.Go(func() error {
			if err := sr.refreshStreet(street, startDate, endDate); err != nil {
				log.Printf("[SeriesRefresherService] Refresh failed for %s: %v", street, err)
			}
			return nil
		})
	}
	g.Wait()
	return nil
}

// refreshStreet replaces one street's cached series with freshly fetched data.
func (sr *SeriesRefresherService) refreshStreet(street, startDate, endDate string) error {
	historical, err := sr.pedestrianApi.GetHistoricalData(street, startDate, endDate)
	if err != nil {
		return err
	}

	// Drop stale dates first so removed upstream data does not linger.
	if err := sr.seriesDao.InvalidateStreet(street); err != nil {
		return err
	}

	hourly := analytics.HourlyFromRecords(historical.Data)
	byDate := make(map[string][]models.HourlyPoint)
	for _, p := range hourly {
		byDate[p.Date] = append(byDate[p.Date], p)
	}
	for date, points := range byDate {
		if err := sr.seriesDao.SetHourlySeries(street, date, points); err != nil {
			return err
		}
	}
	log.Printf("[SeriesRefresherService] Cached %d dates for street %s", len(byDate), street)
	return nil
}
