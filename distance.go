package fcm

import "gonum.org/v1/gonum/floats"

// EuclideanMetric computes the Euclidean (L2) distance.
// ReducedDistance returns squared Euclidean distance (skips sqrt).
type EuclideanMetric struct{}

// Distance panics if len(a) != len(b).
func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func (EuclideanMetric) ReducedDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("fcm: vector length mismatch")
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between a and b.
// Both vectors must have the same length; a mismatch panics.
func Distance(a, b []float64) float64 {
	return EuclideanMetric{}.Distance(a, b)
}
