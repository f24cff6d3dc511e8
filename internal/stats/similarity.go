package stats

import "math"

// Dot calculates the dot product of two equal-length vectors
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm calculates the Euclidean (L2) norm of a vector
func Norm(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Cosine calculates the cosine similarity of two equal-length vectors.
// The similarity of a zero vector with anything is defined as 0 instead of
// surfacing a division by zero.
func Cosine(a, b []float64) float64 {
	na := Norm(a)
	nb := Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
