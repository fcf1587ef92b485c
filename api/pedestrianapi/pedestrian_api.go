package pedestrianapi

import (
	"pd-server/models"
)

// PedestrianAPI defines the interface for interacting with the pedestrian data API
type PedestrianAPI interface {
	GetStreets() (*models.StreetsResponse, error)
	GetHistoricalData(street, startDate, endDate string) (*models.HistoricalDataResponse, error)
	GetPredictionData(street, startDate, endDate string) (*models.PredictionResponse, error)
	GetCalendarInfo(date string) (*models.CalendarInfo, error)
	GetEventsForDate(date string) (*models.EventsResponse, error)
}
