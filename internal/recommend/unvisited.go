// Package recommend implements the category-based venue recommender and the
// group meeting-point engine over the enriched check-in dataset.
package recommend

import (
	"sort"
	"strings"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

// Unvisited recommends up to topK venues the user has not visited, drawn from
// the broader category of the requested category name.
//
// Category matching is a case-insensitive exact match; a name with no match
// anywhere in the dataset surfaces a CategoryNotFoundError, and an unknown
// user id surfaces a UserNotFoundError. An empty candidate pool after
// filtering is a legitimate empty result, not an error.
//
// Candidates are deduplicated to one row per venue, first occurrence winning,
// and scored popularity / (1 + distance from the check-in's user centroid).
// The descending sort is stable, so ordering among equal scores follows
// first occurrence and is deterministic.
func Unvisited(userID, categoryName string, data []models.EnrichedCheckin, topK int) ([]models.Recommendation, error) {
	broader := ""
	matched := false
	for _, e := range data {
		if strings.EqualFold(e.CategoryName, categoryName) {
			broader = e.BroaderCategory
			matched = true
			break
		}
	}
	if !matched {
		return nil, &models.CategoryNotFoundError{Category: categoryName}
	}

	visited := make(map[string]struct{})
	userSeen := false
	for _, e := range data {
		if e.UserID == userID {
			userSeen = true
			visited[e.VenueID] = struct{}{}
		}
	}
	if !userSeen {
		return nil, &models.UserNotFoundError{UserID: userID}
	}

	// Rows the taxonomy could not label have no broader category and never
	// form a candidate pool.
	recs := []models.Recommendation{}
	if broader == "" {
		return recs, nil
	}

	seenVenues := make(map[string]struct{})
	for _, e := range data {
		if e.BroaderCategory != broader {
			continue
		}
		if _, dup := seenVenues[e.VenueID]; dup {
			continue
		}
		seenVenues[e.VenueID] = struct{}{}
		if _, was := visited[e.VenueID]; was {
			continue
		}
		recs = append(recs, models.Recommendation{
			VenueID:      e.VenueID,
			CategoryName: e.CategoryName,
			Score:        e.PopularityScore / (1 + e.DistanceFromCenter),
			Latitude:     e.Latitude,
			Longitude:    e.Longitude,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	if topK >= 0 && topK < len(recs) {
		recs = recs[:topK]
	}
	return recs, nil
}
