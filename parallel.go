package fcm

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// UpdateMembershipParallel computes the membership matrix using multiple
// goroutines. Points are split into contiguous ranges, one per worker; each
// column of the matrix is written by exactly one goroutine.
// Falls back to sequential UpdateMembership if numWorkers <= 1.
//
// The result is bitwise identical to UpdateMembership.
func UpdateMembershipParallel(data, centroids [][]float64, m float64, numWorkers int) *mat.Dense {
	n := len(data)
	if numWorkers <= 1 || n <= 1 {
		return UpdateMembership(data, centroids, m)
	}

	u := mat.NewDense(len(centroids), n, nil)

	var wg sync.WaitGroup
	forEachRange(n, numWorkers, func(start, end int) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fillMembership(u, data, centroids, m, start, end)
		}()
	})

	wg.Wait()
	return u
}

// UpdateCentroidsParallel recomputes centroids using multiple goroutines.
// Clusters are split into contiguous ranges; each centroid is written by
// exactly one goroutine. Falls back to sequential UpdateCentroids if
// numWorkers <= 1.
func UpdateCentroidsParallel(data [][]float64, u *mat.Dense, m float64, numWorkers int) ([][]float64, error) {
	c, _ := u.Dims()
	if numWorkers <= 1 || c <= 1 {
		return UpdateCentroids(data, u, m)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	centroids := make([][]float64, c)
	errs := make([]error, numWorkers)

	var wg sync.WaitGroup
	w := 0
	forEachRange(c, numWorkers, func(start, end int) {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			errs[slot] = fillCentroids(centroids, data, u, m, start, end)
		}(w)
		w++
	})

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return centroids, nil
}

// forEachRange splits [0, n) into at most numWorkers contiguous ranges and
// calls fn for each non-empty one.
func forEachRange(n, numWorkers int, fn func(start, end int)) {
	perWorker := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		if start >= n {
			break
		}
		end := min(start+perWorker, n)
		fn(start, end)
	}
}
