package models

import "time"

// CheckinRecord represents one raw check-in row as supplied by the ingestion source
type CheckinRecord struct {
	UserID          string  `json:"userId" db:"user_id"`
	VenueID         string  `json:"venueId" db:"venue_id"`
	VenueCategoryID string  `json:"venueCategoryId" db:"venue_category_id"`
	CategoryName    string  `json:"categoryName" db:"category_name"`
	Latitude        float64 `json:"latitude" db:"latitude"`
	Longitude       float64 `json:"longitude" db:"longitude"`
	TimezoneOffset  int     `json:"timezoneOffset" db:"timezone_offset"` // UTC offset in minutes
	UTCTime         string  `json:"utcTime" db:"utc_time"`               // Format: Tue Apr 03 18:00:09 +0000 2012
}

// Category represents one row of the venue category taxonomy
type Category struct {
	ID    string `json:"categoryId" db:"category_id"`
	Name  string `json:"categoryName" db:"category_name"`
	Label string `json:"categoryLabel" db:"category_label"` // Hierarchical, e.g. "Dining and Drinking > Bar"
}

// EnrichedCheckin represents a check-in after cleaning and feature derivation.
// Local time is timezone-naive: the per-row UTC offset has already been applied
// and discarded.
type EnrichedCheckin struct {
	UserID          string    `json:"userId"`
	VenueID         string    `json:"venueId"`
	VenueCategoryID string    `json:"venueCategoryId"`
	CategoryName    string    `json:"categoryName"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	LocalTime       time.Time `json:"localTime"`

	// Categorical features
	BroaderCategory string `json:"broaderCategory,omitempty"` // Empty when the taxonomy has no entry

	// Temporal features
	DayOfWeek  string `json:"dayOfWeek"`
	IsWeekend  bool   `json:"isWeekend"`
	Hour       int    `json:"hour"`
	TimeBucket string `json:"timeBucket"`

	// Per-user features
	PreferredCategory   string  `json:"preferredCategory"`
	PreferredTimeBucket string  `json:"preferredTimeBucket"`
	CentroidLatitude    float64 `json:"centroidLatitude"`
	CentroidLongitude   float64 `json:"centroidLongitude"`
	DistanceFromCenter  float64 `json:"distanceFromCenter"` // km, haversine to the user's centroid

	// Per-venue features
	TotalVisits     int     `json:"totalVisits"`
	PopularityScore float64 `json:"popularityScore"` // visits / max visits, in [0,1]
	BusyTimeBucket  string  `json:"busyTimeBucket"`
}

// Time bucket constants
const (
	BucketMorning   = "Morning"   // [5,12)
	BucketAfternoon = "Afternoon" // [12,17)
	BucketEvening   = "Evening"   // [17,21)
	BucketNight     = "Night"     // everything else
)

// TimeBucketForHour maps an hour of day (0-23) to its time bucket
func TimeBucketForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 21:
		return BucketEvening
	default:
		return BucketNight
	}
}

// DatasetStats represents summary counts over the enriched dataset
type DatasetStats struct {
	Checkins int `json:"checkins"`
	Users    int `json:"users"`
	Venues   int `json:"venues"`
}
