package pedestrianapi

import (
	"log"
	"net/url"

	"pd-server/api"
	"pd-server/models"
)

// PedestrianApiClient embeds the common HTTPClient
type PedestrianApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewPedestrianApiClient creates a new instance of PedestrianApiClient
func NewPedestrianApiClient(httpClient *api.HTTPClient) *PedestrianApiClient {
	return &PedestrianApiClient{
		HTTPClient: httpClient,
	}
}

// GetStreets retrieves the catalog of counted streets.
func (c *PedestrianApiClient) GetStreets() (*models.StreetsResponse, error) {
	var response models.StreetsResponse
	if err := c.Get("/api/streets", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetHistoricalData retrieves observed records for one street and date span.
func (c *PedestrianApiClient) GetHistoricalData(street, startDate, endDate string) (*models.HistoricalDataResponse, error) {
	query := url.Values{}
	query.Set("street", street)
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var response models.HistoricalDataResponse
	if err := c.Get("/api/pedestrians/historical", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPredictionData retrieves forecast records for one street and date span.
// A failed call degrades to an empty response so the dashboard can still
// render from actual data alone.
func (c *PedestrianApiClient) GetPredictionData(street, startDate, endDate string) (*models.PredictionResponse, error) {
	query := url.Values{}
	query.Set("street", street)
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var response models.PredictionResponse
	if err := c.Get("/api/pedestrians/predictions", query, &response); err != nil {
		log.Printf("[PedestrianApiClient] Prediction fetch failed for %s: %v", street, err)
		return &models.PredictionResponse{
			Street:          street,
			RequestedPeriod: models.Period{Start: startDate, End: endDate},
			Predictions:     []models.PedestrianRecord{},
			Metadata:        map[string]string{"note": "No prediction data available"},
		}, nil
	}
	return &response, nil
}

// GetCalendarInfo retrieves the holiday/lecture context for one date.
func (c *PedestrianApiClient) GetCalendarInfo(date string) (*models.CalendarInfo, error) {
	var response models.CalendarInfo
	if err := c.Get("/api/calendar/"+date, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetEventsForDate retrieves the events taking place on one date.
func (c *PedestrianApiClient) GetEventsForDate(date string) (*models.EventsResponse, error) {
	var response models.EventsResponse
	if err := c.Get("/api/events/"+date, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
