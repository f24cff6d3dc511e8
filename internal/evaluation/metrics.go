// Package evaluation provides offline quality metrics computed over the
// recommendation engines' outputs. It is a pure consumer of the core
// operations and holds no state.
package evaluation

import (
	"strings"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/spatial"
	"github.com/kaa44111/Location-Recommendation-System/internal/stats"
)

// Precision returns the fraction of recommendations whose category matches
// the requested category, case-insensitively. An empty result scores 0.
func Precision(recs []models.Recommendation, category string) float64 {
	if len(recs) == 0 {
		return 0
	}
	matched := 0
	for _, r := range recs {
		if strings.EqualFold(r.CategoryName, category) {
			matched++
		}
	}
	return float64(matched) / float64(len(recs))
}

// Diversity returns the ratio of unique venues among the recommendations.
// An empty result scores 0.
func Diversity(recs []models.Recommendation) float64 {
	if len(recs) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		unique[r.VenueID] = struct{}{}
	}
	return float64(len(unique)) / float64(len(recs))
}

// AverageSimilarity returns the mean similarity score of a neighbor ranking
func AverageSimilarity(neighbors []models.SimilarUser) float64 {
	scores := make([]float64, len(neighbors))
	for i, n := range neighbors {
		scores[i] = n.Score
	}
	return stats.Mean(scores)
}

// PreferenceOverlap returns the mean number of (category, time bucket) pairs
// each neighbor shares with the target user's observed check-in behavior
func PreferenceOverlap(data []models.EnrichedCheckin, userID string, neighborIDs []string) float64 {
	if len(neighborIDs) == 0 {
		return 0
	}

	pairs := func(id string) map[[2]string]struct{} {
		set := make(map[[2]string]struct{})
		for _, e := range data {
			if e.UserID == id {
				set[[2]string{e.CategoryName, e.TimeBucket}] = struct{}{}
			}
		}
		return set
	}

	target := pairs(userID)
	overlaps := make([]float64, len(neighborIDs))
	for i, id := range neighborIDs {
		count := 0
		for pair := range pairs(id) {
			if _, shared := target[pair]; shared {
				count++
			}
		}
		overlaps[i] = float64(count)
	}
	return stats.Mean(overlaps)
}

// MeetingSpread returns, for each recommended venue, the mean great-circle
// distance in kilometers from the group's selected check-ins to that venue
func MeetingSpread(selected []models.SelectedCheckin, venues []models.NearestVenue) []float64 {
	spreads := make([]float64, len(venues))
	for i, v := range venues {
		distances := make([]float64, len(selected))
		for j, s := range selected {
			distances[j] = spatial.HaversineDistanceKm(s.Latitude, s.Longitude, v.Latitude, v.Longitude)
		}
		spreads[i] = stats.Mean(distances)
	}
	return spreads
}
