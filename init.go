package fcm

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// InitMethod selects how initial centroids are drawn.
type InitMethod string

const (
	// InitUnit draws every coordinate uniformly from [0, 1).
	InitUnit InitMethod = "unit"

	// InitBounds draws every coordinate uniformly from that dimension's
	// [min, max] range over the data set.
	InitBounds InitMethod = "bounds"
)

// InitializeCentroids returns c centroids of dimension d with each
// coordinate drawn uniformly from [0, 1).
//
// This ignores where the data actually lives; for data far from the unit
// cube see [InitializeCentroidsInBounds].
func InitializeCentroids(c, d int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, c)
	for i := range centroids {
		centroids[i] = make([]float64, d)
		for j := range centroids[i] {
			centroids[i][j] = rng.Float64()
		}
	}
	return centroids
}

// InitializeCentroidsInBounds returns c centroids with each coordinate drawn
// uniformly within the per-dimension bounding box of data.
// data must be non-empty and rectangular.
func InitializeCentroidsInBounds(data [][]float64, c int, rng *rand.Rand) [][]float64 {
	lo, hi := bounds(data)
	centroids := make([][]float64, c)
	for i := range centroids {
		centroids[i] = make([]float64, len(lo))
		for j := range centroids[i] {
			centroids[i][j] = lo[j] + rng.Float64()*(hi[j]-lo[j])
		}
	}
	return centroids
}

// bounds returns the per-dimension minimum and maximum of data.
func bounds(data [][]float64) (lo, hi []float64) {
	dims := len(data[0])
	lo = make([]float64, dims)
	hi = make([]float64, dims)
	column := make([]float64, len(data))
	for j := 0; j < dims; j++ {
		for k, p := range data {
			column[k] = p[j]
		}
		lo[j] = floats.Min(column)
		hi[j] = floats.Max(column)
	}
	return lo, hi
}

// seedCentroids dispatches on method.
func seedCentroids(method InitMethod, data [][]float64, c int, rng *rand.Rand) [][]float64 {
	if method == InitBounds {
		return InitializeCentroidsInBounds(data, c, rng)
	}
	return InitializeCentroids(c, len(data[0]), rng)
}
