package models

// Coordinates of a pedestrian counter installation.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// StreetLocation describes one counted street and where its sensor sits.
type StreetLocation struct {
	Name        string      `json:"name"`
	ID          string      `json:"id"`
	Coordinates Coordinates `json:"coordinates"`
}

// StreetsResponse is the street catalog served by the upstream API.
type StreetsResponse struct {
	Streets []string         `json:"streets"`
	Count   int              `json:"count"`
	Details []StreetLocation `json:"details,omitempty"`
}
