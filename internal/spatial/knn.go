package spatial

import "sort"

// Point represents an indexed coordinate pair for nearest-neighbor search
type Point struct {
	Index     int
	Latitude  float64
	Longitude float64
}

// Neighbor represents one nearest-neighbor result
type Neighbor struct {
	Index    int
	Distance float64
}

// NearestNeighbors returns the k points closest to (lat, lon) under Euclidean
// distance in degree space, sorted by distance ascending. Fewer than k points
// yields all of them. Equal distances keep input order, so results are
// deterministic for a fixed input.
func NearestNeighbors(points []Point, lat, lon float64, k int) []Neighbor {
	if k <= 0 || len(points) == 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(points))
	for _, p := range points {
		neighbors = append(neighbors, Neighbor{
			Index:    p.Index,
			Distance: EuclideanDistance(lat, lon, p.Latitude, p.Longitude),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}
