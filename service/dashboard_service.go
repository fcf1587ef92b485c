package services

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"pd-server/analytics"
	"pd-server/api/pedestrianapi"
	"pd-server/config"
	"pd-server/dao/redis"
	"pd-server/models"
)

// DashboardView is the full derived view for one (street, range, date)
// filter selection. Every series in it has already been merged, gap-filled
// and reduced; handlers marshal it as-is.
type DashboardView struct {
	Street    string           `json:"street"`
	Range     models.RangeKind `json:"range"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`

	Hourly    []models.MergedHourlyPoint     `json:"hourly"`
	Daily     []models.MergedDailyPoint      `json:"daily"`
	Highlight []analytics.HighlightedHour    `json:"highlight,omitempty"`
	DayPeaks  []analytics.DailyWithPeak      `json:"dayPeaks"`
	PeakHours []analytics.SingleDayPeakPoint `json:"peakHours,omitempty"`
	Heatmap   []analytics.HeatmapCell        `json:"heatmap"`

	Statistics analytics.Statistics  `json:"statistics"`
	Trend      analytics.TrendResult `json:"trend"`

	Events      []models.CalendarEvent `json:"events"`
	NextEvent   *models.CalendarEvent  `json:"nextEvent,omitempty"`
	EventImpact *float64               `json:"eventImpactPct,omitempty"`
}

// DashboardService runs the aggregation pipeline for one filter selection.
type DashboardService struct {
	seriesDao       *redis.RedisSeriesDAO
	pedestrianApi   pedestrianapi.PedestrianAPI
	calendarService *CalendarService
	trendConfig     analytics.TrendConfig
}

// NewDashboardService constructs a new DashboardService with its dependencies.
func NewDashboardService(
	seriesDao *redis.RedisSeriesDAO,
	pedestrianApi pedestrianapi.PedestrianAPI,
	calendarService *CalendarService) *DashboardService {

	trendConfig := analytics.DefaultTrendConfig()
	trendConfig.DeadbandPct = config.TREND_DEADBAND_PCT

	return &DashboardService{
		seriesDao:       seriesDao,
		pedestrianApi:   pedestrianApi,
		calendarService: calendarService,
		trendConfig:     trendConfig,
	}
}

// BuildDashboard fetches the street's records for the range and runs the full
// pipeline. The historical and prediction fetches run concurrently; a failed
// prediction fetch degrades to an empty forecast, while a failed historical
// fetch falls back to the cached series and only errors out when the cache is
// empty too. That error is the single user-visible failure of the dashboard.
func (ds *DashboardService) BuildDashboard(street string, kind models.RangeKind, anchor, now time.Time) (*DashboardView, error) {
	rng := models.NewDateRange(kind, anchor)
	log.Printf("[DashboardService] Building dashboard for street=%s range=%s %s..%s",
		street, kind, rng.StartDate(), rng.EndDate())

	var historical *models.HistoricalDataResponse
	var prediction *models.PredictionResponse
	var events []models.CalendarEvent
	var histErr error

	var g errgroup.Group
	g.Go(func() error {
		historical, histErr = ds.pedestrianApi.GetHistoricalData(street, rng.StartDate(), rng.EndDate())
		return nil
	})
	g.Go(func() error {
		var err error
		prediction, err = ds.pedestrianApi.GetPredictionData(street, rng.StartDate(), rng.EndDate())
		if err != nil {
			log.Printf("[DashboardService] Prediction fetch failed for %s: %v", street, err)
			prediction = &models.PredictionResponse{Street: street}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = ds.calendarService.LoadEvents(rng.Start, rng.End)
		if err != nil {
			log.Printf("[DashboardService] Calendar aggregation failed: %v", err)
			events = []models.CalendarEvent{}
		}
		return nil
	})
	g.Wait()

	var records []models.PedestrianRecord
	var hourlyActual []models.HourlyPoint
	if histErr != nil {
		log.Printf("[DashboardService] Historical fetch failed for %s, trying cache: %v", street, histErr)
		cached, err := ds.cachedHourly(street, rng)
		if err != nil || len(cached) == 0 {
			return nil, fmt.Errorf("no historical data available for street %s: %w", street, histErr)
		}
		hourlyActual = cached
	} else {
		records = historical.Data
		hourlyActual = analytics.HourlyFromRecords(records)
		ds.cacheHourly(street, hourlyActual)
	}

	hourlyPredicted := analytics.HourlyFromRecords(prediction.Predictions)
	dailyActual := analytics.DailyFromRecords(records)
	dailyPredicted := analytics.DailyFromRecords(prediction.Predictions)
	if len(records) == 0 && len(hourlyActual) > 0 {
		// Served from cache: rebuild daily totals from the hourly points.
		dailyActual = dailyFromHourly(hourlyActual)
	}

	mergedHourly := analytics.FillHourlyGaps(rng, analytics.MergeHourly(hourlyActual, hourlyPredicted), now)
	mergedDaily := analytics.FillDailyGaps(rng, analytics.MergeDaily(dailyActual, dailyPredicted), now)

	peaks := analytics.DailyPeaks(hourlyActual, dailyActual, kind, now)
	view := &DashboardView{
		Street:     street,
		Range:      kind,
		StartDate:  rng.StartDate(),
		EndDate:    rng.EndDate(),
		Hourly:     mergedHourly,
		Daily:      mergedDaily,
		DayPeaks:   peaks,
		Heatmap:    analytics.BuildHeatmap(hourlyActual, hourlyPredicted, &rng, now),
		Statistics: analytics.ComputeStatistics(records),
		Events:     events,
	}

	if kind == models.RangeDay {
		view.Highlight = analytics.HighlightHighTraffic(hourlyActual, config.HIGH_TRAFFIC_QUANTILE, kind)
		view.PeakHours = analytics.SingleDayPeakSeries(hourlyActual, peaks)
		view.Trend = analytics.HourlyTrend(now, 24, mergedHourly, ds.trendConfig)
	} else {
		view.Trend = analytics.DailyTrend(now, rng.Days(), mergedDaily, ds.trendConfig)
	}

	if next, ok := ds.calendarService.NextUpcomingEvent(events, now); ok {
		view.NextEvent = &next
		if impact, ok := ds.estimateImpact(street, next, mergedDaily, now); ok {
			view.EventImpact = &impact
		}
	}

	return view, nil
}

// estimateImpact compares the next event's expected daily total against the
// mean daily total of the trailing baseline window.
func (ds *DashboardService) estimateImpact(
	street string,
	event models.CalendarEvent,
	mergedDaily []models.MergedDailyPoint,
	now time.Time) (float64, bool) {

	baselineEnd := now.AddDate(0, 0, -1)
	baselineStart := now.AddDate(0, 0, -config.EVENT_BASELINE_DAYS)
	baseline, err := ds.pedestrianApi.GetHistoricalData(
		street, baselineStart.Format(models.DateLayout), baselineEnd.Format(models.DateLayout))
	if err != nil {
		log.Printf("[DashboardService] Baseline fetch failed for %s: %v", street, err)
		return 0, false
	}

	daily := analytics.DailyFromRecords(baseline.Data)
	if len(daily) == 0 {
		return 0, false
	}
	baselineAvg := lo.SumBy(daily, func(p models.DailyPoint) float64 { return p.Total }) / float64(len(daily))

	// The event may fall outside the selected window; fetch its forecast
	// day and merge it in so the predicted-preferring lookup can see it.
	eventDaily := mergedDaily
	if _, found := lo.Find(mergedDaily, func(p models.MergedDailyPoint) bool { return p.Date == event.Date }); !found {
		forecast, err := ds.pedestrianApi.GetPredictionData(street, event.Date, event.Date)
		if err == nil && len(forecast.Predictions) > 0 {
			eventDaily = analytics.MergeDaily(nil, analytics.DailyFromRecords(forecast.Predictions))
		}
	}

	return ds.calendarService.EstimateEventImpact(event, eventDaily, baselineAvg)
}

// cacheHourly writes the street's hourly points into the per-date cache.
func (ds *DashboardService) cacheHourly(street string, hourly []models.HourlyPoint) {
	byDate := lo.GroupBy(hourly, func(p models.HourlyPoint) string { return p.Date })
	for date, points := range byDate {
		if err := ds.seriesDao.SetHourlySeries(street, date, points); err != nil {
			log.Printf("[DashboardService] Failed to cache series for %s %s: %v", street, date, err)
		}
	}
}

// cachedHourly assembles the street's hourly points for the range from the
// per-date cache; dates with no cached entry are simply absent.
func (ds *DashboardService) cachedHourly(street string, rng models.DateRange) ([]models.HourlyPoint, error) {
	var hourly []models.HourlyPoint
	for _, date := range rng.Dates() {
		points, err := ds.seriesDao.GetHourlySeries(street, date)
		if err != nil {
			return nil, err
		}
		hourly = append(hourly, points...)
	}
	return hourly, nil
}

// dailyFromHourly reduces cached hourly points to daily totals. Temperature
// and weather are unknown in the cache, so those fields stay empty.
func dailyFromHourly(hourly []models.HourlyPoint) []models.DailyPoint {
	byDate := lo.GroupBy(hourly, func(p models.HourlyPoint) string { return p.Date })
	dates := lo.Keys(byDate)
	sort.Strings(dates)

	daily := make([]models.DailyPoint, 0, len(dates))
	for _, date := range dates {
		points := byDate[date]
		total := lo.SumBy(points, func(p models.HourlyPoint) float64 { return p.Total })
		daily = append(daily, models.DailyPoint{
			Date:      date,
			Total:     total,
			AvgHourly: math.Round(total / float64(len(points))),
			Weekday:   models.WeekdayName(date),
		})
	}
	return daily
}
