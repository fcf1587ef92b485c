package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadStreetsResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"streets": ["Kaiserstraße", "Marktplatz"],
		"count": 2,
		"details": [
			{
				"id": "kaiserstrasse",
				"name": "Kaiserstraße",
				"coordinates": {"lat": 49.7944, "lon": 9.9294}
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadStreetsResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Count != 2 {
		t.Errorf("Expected Count 2, got %d", response.Count)
	}
	if len(response.Streets) != 2 || response.Streets[0] != "Kaiserstraße" {
		t.Errorf("Expected streets [Kaiserstraße Marktplatz], got %v", response.Streets)
	}
	if len(response.Details) != 1 {
		t.Fatalf("Expected 1 detail entry, got %d", len(response.Details))
	}
	if response.Details[0].Coordinates.Lat != 49.7944 {
		t.Errorf("Expected Lat 49.7944, got %f", response.Details[0].Coordinates.Lat)
	}
}

func TestReadHistoricalResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"street": "Kaiserstraße",
		"period": {"start": "2024-03-04", "end": "2024-03-10"},
		"count": 1,
		"data": [
			{
				"street": "Kaiserstraße",
				"date": "2024-03-04",
				"hour": 9,
				"n_pedestrians": 120,
				"n_pedestrians_towards": 70,
				"n_pedestrians_away": 50,
				"temperature": 6.5,
				"weather_condition": "cloudy"
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadHistoricalResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Street != "Kaiserstraße" {
		t.Errorf("Expected Street 'Kaiserstraße', got %s", response.Street)
	}
	if response.Period.Start != "2024-03-04" {
		t.Errorf("Expected Period.Start '2024-03-04', got %s", response.Period.Start)
	}
	if len(response.Data) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(response.Data))
	}
	record := response.Data[0]
	if record.Hour != 9 || record.NPedestrians != 120 {
		t.Errorf("Expected hour 9 with 120 pedestrians, got hour %d with %f", record.Hour, record.NPedestrians)
	}
	if record.Temperature == nil || *record.Temperature != 6.5 {
		t.Errorf("Expected Temperature 6.5, got %v", record.Temperature)
	}
}

func TestReadPredictionResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"street": "Kaiserstraße",
		"requested_period": {"start": "2024-03-04", "end": "2024-03-10"},
		"actual_coverage": {"start": "2024-03-04", "end": "2024-03-06", "hours_covered": 72},
		"count": 1,
		"predictions": [
			{
				"street": "Kaiserstraße",
				"date": "2024-03-05",
				"hour": 14,
				"n_pedestrians": 95
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadPredictionResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.ActualCoverage.HoursCovered != 72 {
		t.Errorf("Expected HoursCovered 72, got %d", response.ActualCoverage.HoursCovered)
	}
	if len(response.Predictions) != 1 || response.Predictions[0].NPedestrians != 95 {
		t.Errorf("Expected 1 prediction with 95 pedestrians, got %v", response.Predictions)
	}
}

func TestReadCalendarInfoFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"date": "2024-10-03",
		"is_public_holiday": true,
		"public_holiday_name": "Tag der Deutschen Einheit",
		"is_nationwide_holiday": true,
		"is_jmu_lecture_period": false
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	info, err := ReadCalendarInfoFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !info.IsPublicHoliday || !info.IsNationwideHoliday {
		t.Errorf("Expected a nationwide public holiday, got %+v", info)
	}
	if info.PublicHolidayName == nil || *info.PublicHolidayName != "Tag der Deutschen Einheit" {
		t.Errorf("Expected holiday name 'Tag der Deutschen Einheit', got %v", info.PublicHolidayName)
	}
}

func TestReadEventsResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"date": "2024-03-08",
		"has_events": true,
		"event_count": 1,
		"events": [
			{"event_name": "Stadtfest", "is_concert": false}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadEventsResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !response.HasEvents || len(response.Events) != 1 {
		t.Fatalf("Expected 1 event, got %v", response.Events)
	}
	if response.Events[0].EventName != "Stadtfest" {
		t.Errorf("Expected EventName 'Stadtfest', got %s", response.Events[0].EventName)
	}
}

func TestReadHistoricalResponseFromJSON_MalformedJSON(t *testing.T) {
	// Arrange
	tempFile := createTempFile(t, `{"street": "Kaiserstraße",`)
	defer os.Remove(tempFile)

	// Act
	_, err := ReadHistoricalResponseFromJSON(tempFile)

	// Assert
	if err == nil {
		t.Fatal("Expected an error for malformed JSON, got nil")
	}
}
