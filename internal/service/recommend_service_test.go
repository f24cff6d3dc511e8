package service

import (
	"errors"
	"testing"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

func testTaxonomy() []models.Category {
	return []models.Category{
		{ID: "cat-bar", Name: "Bar", Label: "Dining and Drinking > Bar"},
		{ID: "cat-cafe", Name: "Cafe", Label: "Dining and Drinking > Cafe"},
		{ID: "cat-restaurant", Name: "Restaurant", Label: "Dining and Drinking > Restaurant"},
	}
}

func testRaw() []models.CheckinRecord {
	return []models.CheckinRecord{
		{UserID: "1", VenueID: "v-bar", VenueCategoryID: "cat-bar", CategoryName: "Bar",
			Latitude: 40.7198, Longitude: -74.0025, TimezoneOffset: -240,
			UTCTime: "Mon Apr 02 23:00:00 +0000 2012"},
		{UserID: "2", VenueID: "v-restaurant", VenueCategoryID: "cat-restaurant", CategoryName: "Restaurant",
			Latitude: 40.7451, Longitude: -73.9825, TimezoneOffset: -240,
			UTCTime: "Tue Apr 03 16:30:00 +0000 2012"},
		{UserID: "3", VenueID: "v-cafe", VenueCategoryID: "cat-cafe", CategoryName: "Cafe",
			Latitude: 40.6068, Longitude: -74.0441, TimezoneOffset: -240,
			UTCTime: "Wed Apr 04 12:15:00 +0000 2012"},
	}
}

func TestRecommendServiceEndToEnd(t *testing.T) {
	svc, err := NewRecommendService(testRaw(), testTaxonomy())
	if err != nil {
		t.Fatalf("NewRecommendService returned error: %v", err)
	}

	t.Run("stats count the enriched dataset", func(t *testing.T) {
		stats := svc.Stats()
		if stats.Checkins != 3 || stats.Users != 3 || stats.Venues != 3 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("unvisited recommendations exclude visited venues", func(t *testing.T) {
		recs, err := svc.RecommendUnvisited("1", "Bar", 2)
		if err != nil {
			t.Fatalf("RecommendUnvisited returned error: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("expected the Restaurant and Cafe venues, got %d results", len(recs))
		}
		for _, r := range recs {
			if r.VenueID == "v-bar" {
				t.Error("visited venue returned")
			}
		}
	})

	t.Run("similar users excludes the query user", func(t *testing.T) {
		neighbors, err := svc.TopSimilarUsers("1", 5)
		if err != nil {
			t.Fatalf("TopSimilarUsers returned error: %v", err)
		}
		if len(neighbors) != 2 {
			t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
		}
		for _, n := range neighbors {
			if n.UserID == "1" {
				t.Error("query user included in neighbors")
			}
		}
	})

	t.Run("profile lookup distinguishes unknown users", func(t *testing.T) {
		if _, err := svc.Profile("1"); err != nil {
			t.Fatalf("Profile returned error: %v", err)
		}
		_, err := svc.Profile("nobody")
		var notFound *models.UserNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected UserNotFoundError, got %v", err)
		}
	})

	t.Run("meeting place is reproducible with a seed", func(t *testing.T) {
		seed := int64(42)
		a, err := svc.RecommendMeetingPlace([]string{"1", "2", "3"}, 1, &seed)
		if err != nil {
			t.Fatalf("RecommendMeetingPlace returned error: %v", err)
		}
		b, err := svc.RecommendMeetingPlace([]string{"1", "2", "3"}, 1, &seed)
		if err != nil {
			t.Fatalf("RecommendMeetingPlace returned error: %v", err)
		}
		if len(a.SelectedCheckins) != 3 || len(a.NearestVenues) != 1 {
			t.Fatalf("unexpected shape: %d selections, %d venues", len(a.SelectedCheckins), len(a.NearestVenues))
		}
		if a.CentralLatitude != b.CentralLatitude || a.CentralLongitude != b.CentralLongitude {
			t.Error("seeded runs disagree")
		}
	})
}

func TestRecommendServiceEmptyDataset(t *testing.T) {
	svc, err := NewRecommendService(nil, testTaxonomy())
	if err != nil {
		t.Fatalf("empty dataset must build without error, got %v", err)
	}

	if stats := svc.Stats(); stats.Checkins != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	// Profiles are empty and the similarity matrix over them is empty, not
	// an error; any lookup is then an unknown user.
	_, err = svc.TopSimilarUsers("U1", 5)
	var notFound *models.UserNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected UserNotFoundError on empty matrix, got %v", err)
	}
}
