package fcm

import "gonum.org/v1/gonum/mat"

// Predict returns the membership degree of point in each cluster described
// by centroids, using the same rule as [UpdateMembership]. point must have
// the centroids' dimension.
func Predict(point []float64, centroids [][]float64, m float64) []float64 {
	col := make([]float64, len(centroids))
	pointMembership(point, centroids, 2/(m-1), make([]float64, len(centroids)), col)
	return col
}

// Labels defuzzifies a C×N membership matrix: each point gets the index of
// its highest-membership cluster. The lowest index wins ties.
func Labels(u *mat.Dense) []int {
	c, n := u.Dims()
	labels := make([]int, n)
	for k := 0; k < n; k++ {
		best := 0
		for i := 1; i < c; i++ {
			if u.At(i, k) > u.At(best, k) {
				best = i
			}
		}
		labels[k] = best
	}
	return labels
}
