package enrich

import (
	"time"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/spatial"
)

// UTCTimeLayout is the fixed textual timestamp format of the raw dataset,
// e.g. "Tue Apr 03 18:00:09 +0000 2012"
const UTCTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// The public taxonomy dump is missing the Ferry category referenced by the
// check-in data; a synthetic entry is patched in before the join so those
// rows keep a broader category.
const (
	ferryCategoryID    = "4e51a0c0bd41d3446defbb2e"
	ferryCategoryName  = "Ferry"
	ferryCategoryLabel = "Travel and Transportation > Ferry"
)

// Enrich cleans the raw check-ins and derives the full feature set: broader
// category from the taxonomy, temporal features, per-user preferences and
// centroid, and per-venue popularity.
//
// Rows that are exact duplicates, have missing required fields, or carry an
// unparseable timestamp are excluded rather than surfaced as errors. If a
// non-empty input loses every row this way the invariants downstream depend
// on cannot hold, and a ValidationError is returned instead.
func Enrich(raw []models.CheckinRecord, taxonomy []models.Category) ([]models.EnrichedCheckin, error) {
	cleaned := clean(raw)
	if len(raw) > 0 && len(cleaned) == 0 {
		return nil, &models.ValidationError{Message: "enrichment excluded every input row"}
	}
	if len(cleaned) == 0 {
		return []models.EnrichedCheckin{}, nil
	}

	broaderByID := broaderCategories(taxonomy)

	data := make([]models.EnrichedCheckin, 0, len(cleaned))
	for _, r := range cleaned {
		local, ok := localTime(r)
		if !ok {
			continue
		}

		e := models.EnrichedCheckin{
			UserID:          r.UserID,
			VenueID:         r.VenueID,
			VenueCategoryID: r.VenueCategoryID,
			CategoryName:    r.CategoryName,
			Latitude:        r.Latitude,
			Longitude:       r.Longitude,
			LocalTime:       local,
			BroaderCategory: broaderByID[r.VenueCategoryID],
		}

		e.DayOfWeek = local.Weekday().String()
		e.IsWeekend = local.Weekday() == time.Saturday || local.Weekday() == time.Sunday
		e.Hour = local.Hour()
		e.TimeBucket = models.TimeBucketForHour(e.Hour)

		data = append(data, e)
	}

	if len(data) == 0 {
		return nil, &models.ValidationError{Message: "no check-in carried a parseable timestamp"}
	}

	attachUserPreferences(data)
	attachVenuePopularity(data)
	attachGeographicFeatures(data)

	return data, nil
}

// clean removes exact-duplicate rows and rows with missing required fields,
// preserving first-occurrence order
func clean(raw []models.CheckinRecord) []models.CheckinRecord {
	seen := make(map[models.CheckinRecord]struct{}, len(raw))
	cleaned := make([]models.CheckinRecord, 0, len(raw))

	for _, r := range raw {
		if r.UserID == "" || r.VenueID == "" || r.VenueCategoryID == "" ||
			r.CategoryName == "" || r.UTCTime == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		cleaned = append(cleaned, r)
	}
	return cleaned
}

// localTime parses the row's UTC timestamp and applies its offset, producing
// a timezone-naive local time. Rows that fail to parse are dropped, never
// coerced to a default.
func localTime(r models.CheckinRecord) (time.Time, bool) {
	utc, err := time.Parse(UTCTimeLayout, r.UTCTime)
	if err != nil {
		return time.Time{}, false
	}
	local := utc.UTC().Add(time.Duration(r.TimezoneOffset) * time.Minute)
	return local, true
}

// broaderCategories builds the category id -> broader category lookup,
// patching in the synthetic Ferry entry when absent. The broader category is
// the first segment of the hierarchical label.
func broaderCategories(taxonomy []models.Category) map[string]string {
	hasFerry := false
	for _, c := range taxonomy {
		if c.ID == ferryCategoryID {
			hasFerry = true
			break
		}
	}
	if !hasFerry {
		taxonomy = append(taxonomy, models.Category{
			ID:    ferryCategoryID,
			Name:  ferryCategoryName,
			Label: ferryCategoryLabel,
		})
	}

	broaderByID := make(map[string]string, len(taxonomy))
	for _, c := range taxonomy {
		broaderByID[c.ID] = broaderSegment(c.Label)
	}
	return broaderByID
}

// attachGeographicFeatures computes each user's centroid location and the
// great-circle distance from every check-in to its user's centroid
func attachGeographicFeatures(data []models.EnrichedCheckin) {
	lats := make(map[string][]float64)
	lons := make(map[string][]float64)
	for _, e := range data {
		lats[e.UserID] = append(lats[e.UserID], e.Latitude)
		lons[e.UserID] = append(lons[e.UserID], e.Longitude)
	}

	type center struct{ lat, lon float64 }
	centers := make(map[string]center, len(lats))
	for user := range lats {
		lat, lon, _ := spatial.Centroid(lats[user], lons[user])
		centers[user] = center{lat, lon}
	}

	for i := range data {
		c := centers[data[i].UserID]
		data[i].CentroidLatitude = c.lat
		data[i].CentroidLongitude = c.lon
		data[i].DistanceFromCenter = spatial.HaversineDistanceKm(
			c.lat, c.lon, data[i].Latitude, data[i].Longitude)
	}
}
