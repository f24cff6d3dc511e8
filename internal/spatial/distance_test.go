package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		if d := HaversineDistance(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("New York to Los Angeles", func(t *testing.T) {
		// Roughly 3936 km great-circle.
		d := HaversineDistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
		if math.Abs(d-3936) > 40 {
			t.Errorf("expected about 3936 km, got %f", d)
		}
	})

	t.Run("meters and kilometers agree", func(t *testing.T) {
		m := HaversineDistance(40.7, -74.0, 40.8, -74.1)
		km := HaversineDistanceKm(40.7, -74.0, 40.8, -74.1)
		if math.Abs(m/1000-km) > 1e-9 {
			t.Errorf("unit mismatch: %f m vs %f km", m, km)
		}
	})
}

func TestEuclideanDistance(t *testing.T) {
	if d := EuclideanDistance(0, 0, 3, 4); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
	if d := EuclideanDistance(1, 1, 1, 1); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestCentroid(t *testing.T) {
	t.Run("mean of coordinates", func(t *testing.T) {
		lat, lon, ok := Centroid([]float64{40, 42}, []float64{-74, -72})
		if !ok {
			t.Fatal("expected a centroid")
		}
		if lat != 41 || lon != -73 {
			t.Errorf("expected (41, -73), got (%f, %f)", lat, lon)
		}
	})

	t.Run("empty input has no centroid", func(t *testing.T) {
		if _, _, ok := Centroid(nil, nil); ok {
			t.Fatal("expected no centroid for empty input")
		}
	})
}

func TestNearestNeighbors(t *testing.T) {
	points := []Point{
		{Index: 0, Latitude: 0, Longitude: 0},
		{Index: 1, Latitude: 1, Longitude: 0},
		{Index: 2, Latitude: 5, Longitude: 5},
	}

	t.Run("returns the k closest sorted ascending", func(t *testing.T) {
		neighbors := NearestNeighbors(points, 0.1, 0, 2)
		if len(neighbors) != 2 {
			t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
		}
		if neighbors[0].Index != 0 || neighbors[1].Index != 1 {
			t.Errorf("unexpected neighbor order: %+v", neighbors)
		}
		if neighbors[0].Distance > neighbors[1].Distance {
			t.Error("neighbors not sorted by distance")
		}
	})

	t.Run("k beyond the point count returns everything", func(t *testing.T) {
		if n := NearestNeighbors(points, 0, 0, 99); len(n) != 3 {
			t.Fatalf("expected 3 neighbors, got %d", len(n))
		}
	})

	t.Run("no points yields no neighbors", func(t *testing.T) {
		if n := NearestNeighbors(nil, 0, 0, 3); n != nil {
			t.Fatalf("expected nil, got %v", n)
		}
	})
}
