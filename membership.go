package fcm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// UpdateMembership computes the C×N fuzzy membership matrix for data given
// the current centroids and fuzziness m. Entry (i, k) is the degree to
// which point k belongs to cluster i:
//
//	u(i,k) = 1 / Σ_j (‖x_k − v_i‖ / ‖x_k − v_j‖)^(2/(m−1))
//
// A point that coincides exactly with one or more centroids skips the ratio
// formula: its membership is split evenly among the coincident centroids and
// is zero everywhere else.
//
// m must be > 1 and every point must have the centroids' dimension; neither
// is checked here (see [Fit] and [Cluster]).
func UpdateMembership(data, centroids [][]float64, m float64) *mat.Dense {
	c, n := len(centroids), len(data)
	u := mat.NewDense(c, n, nil)
	fillMembership(u, data, centroids, m, 0, n)
	return u
}

// fillMembership writes columns [start, end) of u.
func fillMembership(u *mat.Dense, data, centroids [][]float64, m float64, start, end int) {
	c := len(centroids)
	dist := make([]float64, c)
	col := make([]float64, c)
	exponent := 2 / (m - 1)
	for k := start; k < end; k++ {
		pointMembership(data[k], centroids, exponent, dist, col)
		for i := 0; i < c; i++ {
			u.Set(i, k, col[i])
		}
	}
}

// pointMembership computes one column of the membership matrix into col.
// dist is scratch space of length len(centroids).
func pointMembership(point []float64, centroids [][]float64, exponent float64, dist, col []float64) {
	coincident := 0
	for i, v := range centroids {
		dist[i] = Distance(point, v)
		if dist[i] == 0 {
			coincident++
		}
	}

	if coincident > 0 {
		share := 1 / float64(coincident)
		for i := range col {
			if dist[i] == 0 {
				col[i] = share
			} else {
				col[i] = 0
			}
		}
		return
	}

	for i := range col {
		var denom float64
		for j := range dist {
			denom += math.Pow(dist[i]/dist[j], exponent)
		}
		col[i] = 1 / denom
	}
}
