// Package profile projects enriched check-ins into fixed-dimension numeric
// user vectors suitable for similarity computation.
package profile

import (
	"sort"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/stats"
)

// Column name prefixes of the one-hot vocabulary
const (
	categoryColumnPrefix = "pref_category="
	bucketColumnPrefix   = "pref_bucket="
	latitudeColumn       = "centroid_lat"
	longitudeColumn      = "centroid_lon"
)

// Rows deduplicates the enriched data to one profile row per user, ordered by
// user id
func Rows(data []models.EnrichedCheckin) []models.UserProfile {
	byUser := make(map[string]models.UserProfile)
	for _, e := range data {
		if _, ok := byUser[e.UserID]; ok {
			continue
		}
		byUser[e.UserID] = models.UserProfile{
			UserID:              e.UserID,
			PreferredCategory:   e.PreferredCategory,
			PreferredTimeBucket: e.PreferredTimeBucket,
			CentroidLatitude:    e.CentroidLatitude,
			CentroidLongitude:   e.CentroidLongitude,
		}
	}

	rows := make([]models.UserProfile, 0, len(byUser))
	for _, p := range byUser {
		rows = append(rows, p)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows
}

// Build encodes one numeric vector per user: one-hot columns over the
// vocabulary of preferred categories and time buckets observed in this input,
// plus the centroid coordinates min-max normalized to [0,1] across users.
//
// The column set is fixed at build time from the observed values, sorted
// lexicographically. Normalization bounds come from this call's input, so
// vectors from different builds are not comparable. Empty input yields an
// empty set, not an error.
func Build(data []models.EnrichedCheckin) *models.ProfileSet {
	rows := Rows(data)
	if len(rows) == 0 {
		return &models.ProfileSet{}
	}

	categories := vocabulary(rows, func(p models.UserProfile) string { return p.PreferredCategory })
	buckets := vocabulary(rows, func(p models.UserProfile) string { return p.PreferredTimeBucket })

	columns := make([]string, 0, len(categories)+len(buckets)+2)
	categoryIdx := make(map[string]int, len(categories))
	for _, v := range categories {
		categoryIdx[v] = len(columns)
		columns = append(columns, categoryColumnPrefix+v)
	}
	bucketIdx := make(map[string]int, len(buckets))
	for _, v := range buckets {
		bucketIdx[v] = len(columns)
		columns = append(columns, bucketColumnPrefix+v)
	}
	latCol := len(columns)
	columns = append(columns, latitudeColumn)
	lonCol := len(columns)
	columns = append(columns, longitudeColumn)

	lats := make([]float64, len(rows))
	lons := make([]float64, len(rows))
	for i, p := range rows {
		lats[i] = p.CentroidLatitude
		lons[i] = p.CentroidLongitude
	}
	normLats := stats.MinMaxScale(lats)
	normLons := stats.MinMaxScale(lons)

	set := &models.ProfileSet{
		UserIDs: make([]string, len(rows)),
		Columns: columns,
		Vectors: make([][]float64, len(rows)),
	}
	for i, p := range rows {
		vec := make([]float64, len(columns))
		// A value outside the vocabulary contributes nothing.
		if idx, ok := categoryIdx[p.PreferredCategory]; ok {
			vec[idx] = 1
		}
		if idx, ok := bucketIdx[p.PreferredTimeBucket]; ok {
			vec[idx] = 1
		}
		vec[latCol] = normLats[i]
		vec[lonCol] = normLons[i]

		set.UserIDs[i] = p.UserID
		set.Vectors[i] = vec
	}
	return set
}

// vocabulary collects the sorted unique values of one categorical field
func vocabulary(rows []models.UserProfile, field func(models.UserProfile) string) []string {
	seen := make(map[string]struct{})
	for _, p := range rows {
		seen[field(p)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
