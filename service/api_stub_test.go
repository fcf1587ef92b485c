package services

import (
	"fmt"

	"pd-server/models"
)

// apiStub lets each test swap in just the upstream calls it cares about.
type apiStub struct {
	streets    func() (*models.StreetsResponse, error)
	historical func(street, startDate, endDate string) (*models.HistoricalDataResponse, error)
	prediction func(street, startDate, endDate string) (*models.PredictionResponse, error)
	calendar   func(date string) (*models.CalendarInfo, error)
	events     func(date string) (*models.EventsResponse, error)
}

func (s *apiStub) GetStreets() (*models.StreetsResponse, error) {
	if s.streets != nil {
		return s.streets()
	}
	return &models.StreetsResponse{}, nil
}

func (s *apiStub) GetHistoricalData(street, startDate, endDate string) (*models.HistoricalDataResponse, error) {
	if s.historical != nil {
		return s.historical(street, startDate, endDate)
	}
	return &models.HistoricalDataResponse{Street: street}, nil
}

func (s *apiStub) GetPredictionData(street, startDate, endDate string) (*models.PredictionResponse, error) {
	if s.prediction != nil {
		return s.prediction(street, startDate, endDate)
	}
	return &models.PredictionResponse{Street: street}, nil
}

func (s *apiStub) GetCalendarInfo(date string) (*models.CalendarInfo, error) {
	if s.calendar != nil {
		return s.calendar(date)
	}
	return &models.CalendarInfo{Date: date}, nil
}

func (s *apiStub) GetEventsForDate(date string) (*models.EventsResponse, error) {
	if s.events != nil {
		return s.events(date)
	}
	return &models.EventsResponse{Date: date}, nil
}

func errStub(msg string) error {
	return fmt.Errorf("%s", msg)
}
