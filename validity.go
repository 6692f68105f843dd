package fcm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PartitionEntropy returns the normalized partition entropy of a C×N
// membership matrix:
//
//	H = −(1/N) Σ_i Σ_k u(i,k) ln u(i,k) / ln C
//
// Zero memberships contribute 0 (the limit of x ln x). The result lies in
// [0, 1]: 0 for a crisp partition, 1 when every point is split evenly.
// Matrices with fewer than two rows return 0.
func PartitionEntropy(u *mat.Dense) float64 {
	c, n := u.Dims()
	if c < 2 || n == 0 {
		return 0
	}
	var s float64
	for i := 0; i < c; i++ {
		for _, x := range u.RawRowView(i) {
			if x > 0 {
				s += x * math.Log(x)
			}
		}
	}
	return -s / (float64(n) * math.Log(float64(c)))
}

// PartitionCoefficient returns (1/N) Σ_i Σ_k u(i,k)², which lies in
// [1/C, 1] and is 1 for a crisp partition.
func PartitionCoefficient(u *mat.Dense) float64 {
	_, n := u.Dims()
	if n == 0 {
		return 0
	}
	return mat.Sum(mulElem(u, u)) / float64(n)
}

func mulElem(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.MulElem(a, b)
	return &out
}

// Cost returns the Fuzzy C-Means objective
//
//	J = Σ_k Σ_i u(i,k)^m ‖x_k − v_i‖²
//
// for data, centroids and the C×N membership matrix u.
func Cost(data, centroids [][]float64, u *mat.Dense, m float64) float64 {
	var metric EuclideanMetric
	var s float64
	for k, p := range data {
		for i, v := range centroids {
			s += math.Pow(u.At(i, k), m) * metric.ReducedDistance(p, v)
		}
	}
	return s
}
