package pedestrianapi

import (
	"fmt"

	"pd-server/config"
	"pd-server/models"
	"pd-server/util"
)

func streetsResponsePath() string { return config.GetResourcePath(config.STREETS_RESPONSE_RESOURCE) }
func historicalResponsePath() string { return config.GetResourcePath(config.HISTORICAL_RESPONSE_RESOURCE) }
func predictionResponsePath() string { return config.GetResourcePath(config.PREDICTION_RESPONSE_RESOURCE) }
func calendarInfoPath() string { return config.GetResourcePath(config.CALENDAR_INFO_RESOURCE) }
func eventsResponsePath() string { return config.GetResourcePath(config.EVENTS_RESPONSE_RESOURCE) }

// PedestrianApiClientMock embeds mocked logic for the pedestrian api client
type PedestrianApiClientMock struct {
}

// NewPedestrianApiClientMock creates a new instance of PedestrianApiClientMock
func NewPedestrianApiClientMock() *PedestrianApiClientMock {
	return &PedestrianApiClientMock{}
}

// GetStreets loads the street catalog fixture.
func (c *PedestrianApiClientMock) GetStreets() (*models.StreetsResponse, error) {
	response, err := util.ReadStreetsResponseFromJSON(streetsResponsePath())
	if err != nil {
		fmt.Println("Could not read streets response from json")
		return nil, err
	}
	return response, nil
}

// GetHistoricalData loads the historical fixture regardless of the filters.
func (c *PedestrianApiClientMock) GetHistoricalData(street, startDate, endDate string) (*models.HistoricalDataResponse, error) {
	response, err := util.ReadHistoricalResponseFromJSON(historicalResponsePath())
	if err != nil {
		fmt.Println("Could not read historical response from json")
		return nil, err
	}
	return response, nil
}

// GetPredictionData loads the prediction fixture regardless of the filters.
func (c *PedestrianApiClientMock) GetPredictionData(street, startDate, endDate string) (*models.PredictionResponse, error) {
	response, err := util.ReadPredictionResponseFromJSON(predictionResponsePath())
	if err != nil {
		fmt.Println("Could not read prediction response from json")
		return nil, err
	}
	return response, nil
}

// GetCalendarInfo loads the calendar fixture, stamping in the requested date.
func (c *PedestrianApiClientMock) GetCalendarInfo(date string) (*models.CalendarInfo, error) {
	response, err := util.ReadCalendarInfoFromJSON(calendarInfoPath())
	if err != nil {
		fmt.Println("Could not read calendar info from json")
		return nil, err
	}
	response.Date = date
	return response, nil
}

// GetEventsForDate loads the events fixture, stamping in the requested date.
func (c *PedestrianApiClientMock) GetEventsForDate(date string) (*models.EventsResponse, error) {
	response, err := util.ReadEventsResponseFromJSON(eventsResponsePath())
	if err != nil {
		fmt.Println("Could not read events response from json")
		return nil, err
	}
	response.Date = date
	return response, nil
}
