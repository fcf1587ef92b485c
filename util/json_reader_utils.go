package util

import (
	"encoding/json"
	"fmt"
	"os"

	"pd-server/models"
)

// ReadStreetsResponseFromJSON loads a StreetsResponse from JSON on disk.
func ReadStreetsResponseFromJSON(filePath string) (*models.StreetsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.StreetsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal StreetsResponse: %w", err)
	}
	return &resp, nil
}

// ReadHistoricalResponseFromJSON loads a HistoricalDataResponse from JSON on disk.
func ReadHistoricalResponseFromJSON(filePath string) (*models.HistoricalDataResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.HistoricalDataResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal HistoricalDataResponse: %w", err)
	}
	return &resp, nil
}

// ReadPredictionResponseFromJSON loads a PredictionResponse from JSON on disk.
func ReadPredictionResponseFromJSON(filePath string) (*models.PredictionResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PredictionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PredictionResponse: %w", err)
	}
	return &resp, nil
}

// ReadCalendarInfoFromJSON loads a CalendarInfo from JSON on disk.
func ReadCalendarInfoFromJSON(filePath string) (*models.CalendarInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var info models.CalendarInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CalendarInfo: %w", err)
	}
	return &info, nil
}

// ReadEventsResponseFromJSON loads an EventsResponse from JSON on disk.
func ReadEventsResponseFromJSON(filePath string) (*models.EventsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.EventsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal EventsResponse: %w", err)
	}
	return &resp, nil
}
