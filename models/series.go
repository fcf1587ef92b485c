package models

import "time"

// DateLayout is the wire format for calendar dates throughout the system.
const DateLayout = "2006-01-02"

// HourlyPoint is one chart-ready hour of foot traffic.
type HourlyPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Hour    int     `json:"hour"` // 0..23
	Total   float64 `json:"total"`
	Towards float64 `json:"towards"`
	Away    float64 `json:"away"`
}

// DailyPoint is the 24-hour reduction of one date. It is always derived from
// hourly points, never independently authoritative.
type DailyPoint struct {
	Date             string   `json:"date"`
	Total            float64  `json:"total"`
	AvgHourly        float64  `json:"avgHourly"`
	Weekday          string   `json:"weekday"`
	Temperature      *float64 `json:"temperature,omitempty"`
	WeatherCondition string   `json:"weatherCondition,omitempty"`
}

// MergedHourlyPoint pairs the actual and predicted counts for one hour.
// A nil field means that side has no value for the slot; rendering relies on
// the distinction to leave future slots undrawn instead of plotting zeros.
type MergedHourlyPoint struct {
	Date      string   `json:"date"`
	Hour      int      `json:"hour"`
	Actual    *float64 `json:"actual"`
	Predicted *float64 `json:"predicted"`
}

// MergedDailyPoint pairs the actual and predicted totals for one date.
type MergedDailyPoint struct {
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	Actual    *float64 `json:"actual"`
	Predicted *float64 `json:"predicted"`
}

// WeekdayName returns the long weekday name for a YYYY-MM-DD date, or an
// empty string when the date does not parse.
func WeekdayName(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// Float64Ptr returns a pointer to v. Convenience for the nullable series
// fields above.
func Float64Ptr(v float64) *float64 {
	return &v
}
