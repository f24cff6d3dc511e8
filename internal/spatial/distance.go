package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points in
// meters using spherical geometry
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// HaversineDistanceKm calculates the great-circle distance in kilometers
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// EuclideanDistance calculates the planar distance between two points directly
// in (latitude, longitude) degree space. Not a geodesic distance; used where
// the ranking only needs a consistent metric, not physical units.
func EuclideanDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Centroid calculates the arithmetic mean of a set of coordinates. This is a
// naive planar mean, not a geodesic centroid; callers accept the distortion
// for city-scale point sets. Returns false when the input is empty.
func Centroid(lats, lons []float64) (float64, float64, bool) {
	if len(lats) == 0 || len(lats) != len(lons) {
		return 0, 0, false
	}

	var sumLat, sumLon float64
	for i := range lats {
		sumLat += lats[i]
		sumLon += lons[i]
	}
	n := float64(len(lats))
	return sumLat / n, sumLon / n, true
}
