package enrich

import (
	"sort"
	"strings"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

// broaderSegment extracts the top-level segment of a hierarchical category
// label such as "Dining and Drinking > Bar"
func broaderSegment(label string) string {
	if label == "" {
		return ""
	}
	segment, _, _ := strings.Cut(label, " > ")
	return strings.TrimSpace(segment)
}

// topByKey returns, for every group, the value with the highest occurrence
// count. Ties break to the lexicographically smallest value so the result
// does not depend on map iteration order.
func topByKey(counts map[string]map[string]int) map[string]string {
	top := make(map[string]string, len(counts))
	for group, values := range counts {
		type entry struct {
			value string
			count int
		}
		entries := make([]entry, 0, len(values))
		for v, n := range values {
			entries = append(entries, entry{v, n})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			return entries[i].value < entries[j].value
		})
		top[group] = entries[0].value
	}
	return top
}

// attachUserPreferences computes each user's most-visited category and
// most-frequent time bucket and writes them onto every one of their rows
func attachUserPreferences(data []models.EnrichedCheckin) {
	categoryCounts := make(map[string]map[string]int)
	bucketCounts := make(map[string]map[string]int)

	for _, e := range data {
		if categoryCounts[e.UserID] == nil {
			categoryCounts[e.UserID] = make(map[string]int)
			bucketCounts[e.UserID] = make(map[string]int)
		}
		categoryCounts[e.UserID][e.CategoryName]++
		bucketCounts[e.UserID][e.TimeBucket]++
	}

	preferredCategory := topByKey(categoryCounts)
	preferredBucket := topByKey(bucketCounts)

	for i := range data {
		data[i].PreferredCategory = preferredCategory[data[i].UserID]
		data[i].PreferredTimeBucket = preferredBucket[data[i].UserID]
	}
}

// attachVenuePopularity computes per-venue visit totals, the popularity score
// normalized by the busiest venue, and each venue's busiest time bucket
func attachVenuePopularity(data []models.EnrichedCheckin) {
	visits := make(map[string]int)
	bucketCounts := make(map[string]map[string]int)

	for _, e := range data {
		visits[e.VenueID]++
		if bucketCounts[e.VenueID] == nil {
			bucketCounts[e.VenueID] = make(map[string]int)
		}
		bucketCounts[e.VenueID][e.TimeBucket]++
	}

	maxVisits := 0
	for _, n := range visits {
		if n > maxVisits {
			maxVisits = n
		}
	}

	busiest := topByKey(bucketCounts)

	for i := range data {
		n := visits[data[i].VenueID]
		data[i].TotalVisits = n
		data[i].PopularityScore = float64(n) / float64(maxVisits)
		data[i].BusyTimeBucket = busiest[data[i].VenueID]
	}
}
