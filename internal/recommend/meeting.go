package recommend

import (
	"math/rand"
	"time"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/spatial"
)

// MeetingPlace picks one check-in uniformly at random for each requested
// user, takes the planar mean of the picks as the group centroid, and returns
// the k distinct venues nearest to it by Euclidean distance in (lat, lon)
// degree space, distances attached and sorted ascending.
//
// A requested user with no check-ins is silently skipped; if every requested
// user is absent there is nothing to center on and a ValidationError is
// returned. When k exceeds the number of distinct venues, all venues are
// returned rather than failing. Pass a seeded rng for reproducible sampling;
// nil uses an unseeded time-based source.
func MeetingPlace(userIDs []string, data []models.EnrichedCheckin, k int, rng *rand.Rand) (*models.MeetingPlace, error) {
	if k < 1 {
		return nil, &models.ValidationError{Message: "k must be at least 1"}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	selected := selectRandomCheckins(userIDs, data, rng)
	if len(selected) == 0 {
		return nil, &models.ValidationError{Message: "none of the requested users has a check-in"}
	}

	lats := make([]float64, len(selected))
	lons := make([]float64, len(selected))
	for i, s := range selected {
		lats[i] = s.Latitude
		lons[i] = s.Longitude
	}
	centralLat, centralLon, _ := spatial.Centroid(lats, lons)

	return &models.MeetingPlace{
		SelectedCheckins: selected,
		CentralLatitude:  centralLat,
		CentralLongitude: centralLon,
		NearestVenues:    nearestVenues(centralLat, centralLon, data, k),
	}, nil
}

// selectRandomCheckins picks one check-in uniformly at random per requested
// user, in request order. Duplicate requested ids collapse to one pick.
func selectRandomCheckins(userIDs []string, data []models.EnrichedCheckin, rng *rand.Rand) []models.SelectedCheckin {
	byUser := make(map[string][]int)
	for i, e := range data {
		byUser[e.UserID] = append(byUser[e.UserID], i)
	}

	requested := make(map[string]struct{}, len(userIDs))
	selected := make([]models.SelectedCheckin, 0, len(userIDs))
	for _, id := range userIDs {
		if _, dup := requested[id]; dup {
			continue
		}
		requested[id] = struct{}{}

		rows := byUser[id]
		if len(rows) == 0 {
			continue
		}
		e := data[rows[rng.Intn(len(rows))]]
		selected = append(selected, models.SelectedCheckin{
			UserID:    e.UserID,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
		})
	}
	return selected
}

// nearestVenues deduplicates venues by id (first occurrence wins) and runs
// the nearest-neighbor search around the centroid
func nearestVenues(lat, lon float64, data []models.EnrichedCheckin, k int) []models.NearestVenue {
	seen := make(map[string]struct{})
	points := make([]spatial.Point, 0)
	for i, e := range data {
		if _, dup := seen[e.VenueID]; dup {
			continue
		}
		seen[e.VenueID] = struct{}{}
		points = append(points, spatial.Point{Index: i, Latitude: e.Latitude, Longitude: e.Longitude})
	}

	neighbors := spatial.NearestNeighbors(points, lat, lon, k)
	venues := make([]models.NearestVenue, len(neighbors))
	for i, n := range neighbors {
		e := data[n.Index]
		venues[i] = models.NearestVenue{
			VenueID:             e.VenueID,
			CategoryName:        e.CategoryName,
			Latitude:            e.Latitude,
			Longitude:           e.Longitude,
			DistanceFromCentral: n.Distance,
		}
	}
	return venues
}
