package models

// PedestrianRecord is one observed or forecast hour of foot traffic for a
// single street. The upstream API is the only place allowed to produce it;
// downstream code never probes alternative field names.
type PedestrianRecord struct {
	ID                  string   `json:"id,omitempty"`
	Street              string   `json:"street"`
	City                string   `json:"city,omitempty"`
	Date                string   `json:"date"` // YYYY-MM-DD
	Hour                int      `json:"hour"` // 0..23
	Weekday             string   `json:"weekday,omitempty"`
	NPedestrians        float64  `json:"n_pedestrians"`
	NPedestriansTowards float64  `json:"n_pedestrians_towards"`
	NPedestriansAway    float64  `json:"n_pedestrians_away"`
	Temperature         *float64 `json:"temperature,omitempty"`
	WeatherCondition    string   `json:"weather_condition,omitempty"`
}

// Period is the date span covered by a response.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// HistoricalDataResponse wraps the observed records for one street and span.
type HistoricalDataResponse struct {
	Street string             `json:"street"`
	Period Period             `json:"period"`
	Count  int                `json:"count"`
	Data   []PedestrianRecord `json:"data"`
}

// PredictionCoverage describes how much of the requested span the forecast
// actually covers.
type PredictionCoverage struct {
	Start        *string `json:"start"`
	End          *string `json:"end"`
	HoursCovered int     `json:"hours_covered"`
}

// PredictionResponse wraps the forecast records for one street and span.
// A failed upstream call degrades to an empty PredictionResponse.
type PredictionResponse struct {
	Street          string             `json:"street"`
	RequestedPeriod Period             `json:"requested_period"`
	ActualCoverage  PredictionCoverage `json:"actual_coverage"`
	Count           int                `json:"count"`
	Predictions     []PedestrianRecord `json:"predictions"`
	Metadata        map[string]string  `json:"metadata,omitempty"`
}
