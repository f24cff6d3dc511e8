package profile

import (
	"testing"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

// enrichedRow builds an enriched check-in carrying only the fields the
// profile builder reads
func enrichedRow(user, prefCategory, prefBucket string, lat, lon float64) models.EnrichedCheckin {
	return models.EnrichedCheckin{
		UserID:              user,
		VenueID:             "venue-" + user,
		PreferredCategory:   prefCategory,
		PreferredTimeBucket: prefBucket,
		CentroidLatitude:    lat,
		CentroidLongitude:   lon,
	}
}

func mockEnriched() []models.EnrichedCheckin {
	return []models.EnrichedCheckin{
		enrichedRow("U1", "Bar", "Evening", 40.7128, -74.0060),
		enrichedRow("U2", "Cafe", "Morning", 40.7306, -73.9352),
		enrichedRow("U3", "Bar", "Evening", 40.7158, -74.0020),
		enrichedRow("U4", "Restaurant", "Afternoon", 40.7290, -73.9910),
	}
}

func TestRows(t *testing.T) {
	t.Run("one row per user sorted by id", func(t *testing.T) {
		data := append(mockEnriched(), enrichedRow("U1", "Bar", "Evening", 40.7128, -74.0060))
		rows := Rows(data)
		if len(rows) != 4 {
			t.Fatalf("expected 4 profile rows, got %d", len(rows))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i-1].UserID >= rows[i].UserID {
				t.Fatalf("rows not sorted by user id: %s before %s", rows[i-1].UserID, rows[i].UserID)
			}
		}
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		if rows := Rows(nil); len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})
}

func TestBuild(t *testing.T) {
	set := Build(mockEnriched())

	t.Run("covers the observed vocabulary", func(t *testing.T) {
		want := []string{
			"pref_category=Bar", "pref_category=Cafe", "pref_category=Restaurant",
			"pref_bucket=Afternoon", "pref_bucket=Evening", "pref_bucket=Morning",
			"centroid_lat", "centroid_lon",
		}
		if len(set.Columns) != len(want) {
			t.Fatalf("expected %d columns, got %d: %v", len(want), len(set.Columns), set.Columns)
		}
		for i, col := range want {
			if set.Columns[i] != col {
				t.Errorf("column %d: expected %s, got %s", i, col, set.Columns[i])
			}
		}
	})

	t.Run("one-hot encodes preferences", func(t *testing.T) {
		vec, ok := set.Vector("U1")
		if !ok {
			t.Fatal("U1 missing from profile set")
		}
		if vec[0] != 1 { // pref_category=Bar
			t.Error("expected Bar indicator set for U1")
		}
		if vec[1] != 0 || vec[2] != 0 {
			t.Error("expected only one category indicator set for U1")
		}
		if vec[4] != 1 { // pref_bucket=Evening
			t.Error("expected Evening indicator set for U1")
		}
	})

	t.Run("min-max normalizes coordinates to [0,1]", func(t *testing.T) {
		for i, vec := range set.Vectors {
			lat := vec[len(vec)-2]
			lon := vec[len(vec)-1]
			if lat < 0 || lat > 1 || lon < 0 || lon > 1 {
				t.Errorf("user %s has unnormalized coords (%f, %f)", set.UserIDs[i], lat, lon)
			}
		}

		// U1 holds the min latitude and min longitude of the mock data.
		vec, _ := set.Vector("U1")
		if vec[len(vec)-2] != 0 || vec[len(vec)-1] != 0 {
			t.Errorf("expected U1 at the normalization origin, got (%f, %f)", vec[len(vec)-2], vec[len(vec)-1])
		}
	})

	t.Run("empty input yields an empty set", func(t *testing.T) {
		set := Build(nil)
		if !set.Empty() {
			t.Fatal("expected empty profile set")
		}
	})
}
