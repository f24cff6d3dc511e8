package evaluation

import (
	"math"
	"testing"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

func TestPrecision(t *testing.T) {
	recs := []models.Recommendation{
		{VenueID: "v1", CategoryName: "Bar"},
		{VenueID: "v2", CategoryName: "bar"},
		{VenueID: "v3", CategoryName: "Cafe"},
	}

	if got := Precision(recs, "Bar"); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("Precision = %f, want 2/3", got)
	}
	if got := Precision(nil, "Bar"); got != 0 {
		t.Errorf("Precision of empty result = %f, want 0", got)
	}
}

func TestDiversity(t *testing.T) {
	recs := []models.Recommendation{
		{VenueID: "v1"}, {VenueID: "v2"}, {VenueID: "v1"},
	}
	if got := Diversity(recs); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("Diversity = %f, want 2/3", got)
	}
	if got := Diversity(nil); got != 0 {
		t.Errorf("Diversity of empty result = %f, want 0", got)
	}
}

func TestAverageSimilarity(t *testing.T) {
	neighbors := []models.SimilarUser{
		{UserID: "U2", Score: 0.9},
		{UserID: "U3", Score: 0.5},
	}
	if got := AverageSimilarity(neighbors); math.Abs(got-0.7) > 1e-12 {
		t.Errorf("AverageSimilarity = %f, want 0.7", got)
	}
}

func TestPreferenceOverlap(t *testing.T) {
	data := []models.EnrichedCheckin{
		{UserID: "U1", CategoryName: "Bar", TimeBucket: "Evening"},
		{UserID: "U1", CategoryName: "Cafe", TimeBucket: "Morning"},
		{UserID: "U2", CategoryName: "Bar", TimeBucket: "Evening"},
		{UserID: "U3", CategoryName: "Park", TimeBucket: "Afternoon"},
	}

	// U2 shares one pair with U1, U3 shares none.
	if got := PreferenceOverlap(data, "U1", []string{"U2", "U3"}); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("PreferenceOverlap = %f, want 0.5", got)
	}
	if got := PreferenceOverlap(data, "U1", nil); got != 0 {
		t.Errorf("PreferenceOverlap with no neighbors = %f, want 0", got)
	}
}

func TestMeetingSpread(t *testing.T) {
	selected := []models.SelectedCheckin{
		{UserID: "U1", Latitude: 40.70, Longitude: -74.00},
		{UserID: "U2", Latitude: 40.80, Longitude: -74.00},
	}
	venues := []models.NearestVenue{
		{VenueID: "v1", Latitude: 40.75, Longitude: -74.00},
	}

	spreads := MeetingSpread(selected, venues)
	if len(spreads) != 1 {
		t.Fatalf("expected one spread per venue, got %d", len(spreads))
	}
	// Both users are about 5.56 km from the midpoint venue.
	if math.Abs(spreads[0]-5.56) > 0.1 {
		t.Errorf("expected roughly 5.56 km, got %f", spreads[0])
	}
}
