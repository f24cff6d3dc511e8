package models

// Recommendation represents one scored venue from the category engine
type Recommendation struct {
	VenueID      string  `json:"venueId"`
	CategoryName string  `json:"categoryName"`
	Score        float64 `json:"score"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// SelectedCheckin represents the randomly sampled check-in for one group member
type SelectedCheckin struct {
	UserID    string  `json:"userId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearestVenue represents a candidate meeting venue with its distance from the
// group centroid. The distance is Euclidean in (latitude, longitude) degrees,
// matching the nearest-neighbor search metric.
type NearestVenue struct {
	VenueID             string  `json:"venueId"`
	CategoryName        string  `json:"categoryName"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	DistanceFromCentral float64 `json:"distanceFromCentral"`
}

// MeetingPlace represents the output of the meeting-point engine
type MeetingPlace struct {
	SelectedCheckins []SelectedCheckin `json:"selectedCheckins"`
	CentralLatitude  float64           `json:"centralLatitude"`
	CentralLongitude float64           `json:"centralLongitude"`
	NearestVenues    []NearestVenue    `json:"nearestVenues"`
}
