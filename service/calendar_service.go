package services

import (
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pd-server/api/pedestrianapi"
	"pd-server/config"
	"pd-server/dao/redis"
	"pd-server/models"
)

// CalendarService aggregates per-date calendar and event records into a flat
// list of typed CalendarEvent entries.
type CalendarService struct {
	seriesDao     *redis.RedisSeriesDAO
	pedestrianApi pedestrianapi.PedestrianAPI
}

// NewCalendarService constructs a new CalendarService with its dependencies.
func NewCalendarService(
	seriesDao *redis.RedisSeriesDAO,
	pedestrianApi pedestrianapi.PedestrianAPI) *CalendarService {

	return &CalendarService{
		seriesDao:     seriesDao,
		pedestrianApi: pedestrianApi,
	}
}

// LoadEvents fetches calendar and event records for every date in the window
// and projects them into typed entries, sorted ascending by date.
//
// The window is widened by CALENDAR_WINDOW_EXTENSION_DAYS before the start
// and runs to at least that far past the start, so a short selection still
// shows surrounding holidays and upcoming events. Per-date fetches run
// concurrently; a failed date contributes zero events instead of failing the
// whole aggregation.
func (cs *CalendarService) LoadEvents(start, end time.Time) ([]models.CalendarEvent, error) {
	extension := time.Duration(config.CALENDAR_WINDOW_EXTENSION_DAYS) * 24 * time.Hour
	extendedStart := start.Add(-extension)
	extendedEnd := end
	if minEnd := start.Add(extension); minEnd.After(extendedEnd) {
		extendedEnd = minEnd
	}

	var dates []string
	for d := extendedStart; !d.After(extendedEnd); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(models.DateLayout))
	}
	log.Printf("[CalendarService] Loading events for %d dates (%s .. %s)",
		len(dates), extendedStart.Format(models.DateLayout), extendedEnd.Format(models.DateLayout))

	perDate := make([][]models.CalendarEvent, len(dates))
	var g errgroup.Group
	g.SetLimit(config.CALENDAR_FETCH_CONCURRENCY)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			events, err := cs.eventsForDate(date)
			if err != nil {
				// Degrade per-date: this date contributes nothing.
				log.Printf("[CalendarService] Failed to load calendar data for %s: %v", date, err)
				return nil
			}
			perDate[i] = events
			return nil
		})
	}
	g.Wait()

	var all []models.CalendarEvent
	for _, events := range perDate {
		all = append(all, events...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})
	return all, nil
}

// eventsForDate returns the typed events of one date, consulting the Redis
// day cache before hitting the upstream API. The calendar-info and events
// fetches for a cache miss run concurrently.
func (cs *CalendarService) eventsForDate(date string) ([]models.CalendarEvent, error) {
	if cached, hit, err := cs.seriesDao.GetCalendarDay(date); err == nil && hit {
		return cached, nil
	}

	var calendarInfo *models.CalendarInfo
	var eventsInfo *models.EventsResponse
	var wg sync.WaitGroup
	var calendarErr, eventsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		calendarInfo, calendarErr = cs.pedestrianApi.GetCalendarInfo(date)
	}()
	go func() {
		defer wg.Done()
		eventsInfo, eventsErr = cs.pedestrianApi.GetEventsForDate(date)
	}()
	wg.Wait()

	if calendarErr != nil {
		return nil, calendarErr
	}
	if eventsErr != nil {
		return nil, eventsErr
	}

	events := projectDateEvents(date, calendarInfo, eventsInfo)
	if err := cs.seriesDao.SetCalendarDay(date, events); err != nil {
		log.Printf("[CalendarService] Failed to cache calendar day %s: %v", date, err)
	}
	return events, nil
}

// projectDateEvents folds one date's calendar and event records into typed
// entries. A holiday, a school holiday, a lecture period, and any number of
// named events can all coexist on the same date.
func projectDateEvents(date string, calendarInfo *models.CalendarInfo, eventsInfo *models.EventsResponse) []models.CalendarEvent {
	events := []models.CalendarEvent{}

	if calendarInfo.IsPublicHoliday {
		name := "Public Holiday"
		if calendarInfo.PublicHolidayName != nil && *calendarInfo.PublicHolidayName != "" {
			name = *calendarInfo.PublicHolidayName
		}
		description := "Regional Holiday"
		if calendarInfo.IsNationwideHoliday {
			description = "National Holiday"
		}
		events = append(events, models.CalendarEvent{
			Date:        date,
			Type:        models.EventTypeHoliday,
			Name:        name,
			Description: description,
		})
	}

	if calendarInfo.IsSchoolHoliday {
		name := "School Holiday"
		if calendarInfo.SchoolHolidayName != nil && *calendarInfo.SchoolHolidayName != "" {
			name = *calendarInfo.SchoolHolidayName
		}
		events = append(events, models.CalendarEvent{
			Date:        date,
			Type:        models.EventTypeSchoolHoliday,
			Name:        name,
			Description: "School break period",
		})
	}

	if calendarInfo.IsJMULecturePeriod || calendarInfo.IsTHWSLecturePeriod {
		events = append(events, models.CalendarEvent{
			Date:        date,
			Type:        models.EventTypeLecture,
			Name:        "University Lecture Period",
			Description: "Regular semester period",
		})
	}

	if eventsInfo.HasEvents {
		for _, e := range eventsInfo.Events {
			eventType := models.EventTypeEvent
			description := "Event"
			if e.IsConcert {
				eventType = models.EventTypeConcert
				description = "Concert"
			}
			events = append(events, models.CalendarEvent{
				Date:        date,
				Type:        eventType,
				Name:        e.EventName,
				Description: description,
			})
		}
	}

	return events
}

// NextUpcomingEvent returns the first named event or concert dated today or
// later, within the next NEXT_EVENT_HORIZON_MONTHS months. Holidays and
// lecture periods do not count; ok is false when nothing qualifies.
func (cs *CalendarService) NextUpcomingEvent(events []models.CalendarEvent, now time.Time) (models.CalendarEvent, bool) {
	today := now.Format(models.DateLayout)
	horizon := now.AddDate(0, config.NEXT_EVENT_HORIZON_MONTHS, 0).Format(models.DateLayout)

	var next models.CalendarEvent
	found := false
	for _, e := range events {
		if e.Type != models.EventTypeEvent && e.Type != models.EventTypeConcert {
			continue
		}
		if e.Date < today || e.Date >= horizon {
			continue
		}
		if !found || e.Date < next.Date {
			next = e
			found = true
		}
	}
	return next, found
}

// EstimateEventImpact estimates how much busier the event's date is expected
// to be compared to a baseline average of daily totals, as a percentage. The
// event date's total prefers the predicted series and falls back to the
// actual one; ok is false when neither covers the date or the baseline is
// zero.
func (cs *CalendarService) EstimateEventImpact(
	event models.CalendarEvent,
	merged []models.MergedDailyPoint,
	baselineAvg float64) (float64, bool) {

	if baselineAvg == 0 {
		return 0, false
	}

	var total *float64
	for _, p := range merged {
		if p.Date != event.Date {
			continue
		}
		if p.Predicted != nil {
			total = p.Predicted
		} else if p.Actual != nil {
			total = p.Actual
		}
		break
	}
	if total == nil {
		return 0, false
	}
	return (*total - baselineAvg) / baselineAvg * 100, true
}
