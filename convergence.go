package fcm

// HasConverged reports whether every centroid moved by at most threshold
// between two consecutive iterations. Centroids are matched by index.
// Sets of different sizes never count as converged.
func HasConverged(prev, next [][]float64, threshold float64) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if Distance(prev[i], next[i]) > threshold {
			return false
		}
	}
	return true
}
