package fcm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// UpdateCentroids recomputes every centroid as the membership-weighted mean
// of the data:
//
//	v_i = Σ_k u(i,k)^m x_k / Σ_k u(i,k)^m
//
// Centroids are returned in the row order of u. Returns ErrEmptyData if
// data is empty and ErrZeroWeight if some row of u has no mass.
func UpdateCentroids(data [][]float64, u *mat.Dense, m float64) ([][]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	c, _ := u.Dims()
	centroids := make([][]float64, c)
	if err := fillCentroids(centroids, data, u, m, 0, c); err != nil {
		return nil, err
	}
	return centroids, nil
}

// fillCentroids writes centroids [start, end).
func fillCentroids(centroids, data [][]float64, u *mat.Dense, m float64, start, end int) error {
	weights := make([]float64, len(data))
	diff := make([]float64, len(data[0]))
	for i := start; i < end; i++ {
		// Weights are scaled by the row maximum so u^m cannot underflow for
		// large m; the mean is unchanged by a common factor.
		row := u.RawRowView(i)
		umax := floats.Max(row)
		if !(umax > 0) {
			return fmt.Errorf("%w (cluster %d)", ErrZeroWeight, i)
		}
		for k, uik := range row {
			weights[k] = math.Pow(uik/umax, m)
		}
		total := floats.Sum(weights)
		if !(total > 0) {
			return fmt.Errorf("%w (cluster %d)", ErrZeroWeight, i)
		}

		// Offsets from the first point keep a centroid of identical points exact.
		origin := data[0]
		v := append([]float64(nil), origin...)
		for k, p := range data {
			if weights[k] == 0 {
				continue
			}
			floats.SubTo(diff, p, origin)
			floats.AddScaled(v, weights[k]/total, diff)
		}
		centroids[i] = v
	}
	return nil
}
