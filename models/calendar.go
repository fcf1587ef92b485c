package models

// CalendarInfo is the per-date holiday/lecture context from the upstream API.
type CalendarInfo struct {
	Date                string  `json:"date"`
	IsPublicHoliday     bool    `json:"is_public_holiday"`
	PublicHolidayName   *string `json:"public_holiday_name,omitempty"`
	IsNationwideHoliday bool    `json:"is_nationwide_holiday"`
	IsSchoolHoliday     bool    `json:"is_school_holiday"`
	SchoolHolidayName   *string `json:"school_holiday_name,omitempty"`
	HasEvent            bool    `json:"has_event"`
	HasConcert          bool    `json:"has_concert"`
	IsJMULecturePeriod  bool    `json:"is_jmu_lecture_period"`
	IsTHWSLecturePeriod bool    `json:"is_thws_lecture_period"`
	IsSpecialDay        bool    `json:"is_special_day"`
}

// EventInfo is one named event on a date.
type EventInfo struct {
	EventName string `json:"event_name"`
	IsConcert bool   `json:"is_concert"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// EventsResponse lists the events taking place on one date.
type EventsResponse struct {
	Date       string      `json:"date"`
	HasEvents  bool        `json:"has_events"`
	EventCount int         `json:"event_count"`
	Events     []EventInfo `json:"events"`
}

// EventType classifies a CalendarEvent.
type EventType string

const (
	EventTypeHoliday       EventType = "holiday"
	EventTypeSchoolHoliday EventType = "school_holiday"
	EventTypeEvent         EventType = "event"
	EventTypeConcert       EventType = "concert"
	EventTypeLecture       EventType = "lecture"
)

// CalendarEvent is one typed entry folded out of the per-date calendar and
// events records. Several events may share a date.
type CalendarEvent struct {
	Date        string    `json:"date"` // YYYY-MM-DD
	Type        EventType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
