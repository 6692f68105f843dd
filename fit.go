package fcm

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Status reports how a clustering run ended.
type Status string

const (
	// StatusConverged means every centroid moved by at most the threshold
	// in the final iteration.
	StatusConverged Status = "converged"

	// StatusBudgetExhausted means MaxIterations cycles ran without meeting
	// the threshold. The run still carries the latest centroids and
	// membership.
	StatusBudgetExhausted Status = "budget_exhausted"
)

// Run is the outcome of one clustering loop for a fixed cluster count.
type Run struct {
	// Clusters is the number of clusters C.
	Clusters int

	// Centroids holds the C final centroids.
	Centroids [][]float64

	// Membership is the C×N membership matrix of the final iteration.
	Membership *mat.Dense

	// Iterations is the number of update cycles performed.
	Iterations int

	// Status tells whether the loop converged or ran out of iterations.
	Status Status
}

// Converged reports whether the run met the convergence threshold.
func (r *Run) Converged() bool { return r.Status == StatusConverged }

// Fit runs the clustering loop on data starting from the given centroids.
// The number of clusters is len(initial). initial is not modified.
//
// Each cycle recomputes the membership matrix from the current centroids,
// recomputes the centroids from that matrix and compares old against new.
// Running out of iterations is not an error: check Run.Status.
func Fit(ctx context.Context, data, initial [][]float64, cfg Config) (*Run, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateData(data); err != nil {
		return nil, err
	}
	if err := validateCentroids(initial, len(data), len(data[0])); err != nil {
		return nil, err
	}

	centroids := make([][]float64, len(initial))
	for i, v := range initial {
		centroids[i] = append([]float64(nil), v...)
	}
	return fit(ctx, data, centroids, cfg, cfg.Workers)
}

// FitClusters seeds c centroids using cfg.Init and cfg.Seed, then runs the
// clustering loop.
func FitClusters(ctx context.Context, data [][]float64, c int, cfg Config) (*Run, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateData(data); err != nil {
		return nil, err
	}
	if c < 2 {
		return nil, fmt.Errorf("fcm: number of clusters must be >= 2, got %d", c)
	}
	if len(data) < c {
		return nil, fmt.Errorf("%w: %d points, %d clusters", ErrTooFewPoints, len(data), c)
	}
	return fitSeeded(ctx, data, c, cfg, cfg.Workers)
}

// fitSeeded seeds centroids for c clusters from a source derived from
// cfg.Seed and c, so every cluster count draws independently of the others.
func fitSeeded(ctx context.Context, data [][]float64, c int, cfg Config, workers int) (*Run, error) {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(c)))
	centroids := seedCentroids(cfg.Init, data, c, rng)
	return fit(ctx, data, centroids, cfg, workers)
}

// fit assumes validated inputs and owns centroids.
func fit(ctx context.Context, data, centroids [][]float64, cfg Config, workers int) (*Run, error) {
	var u *mat.Dense
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fcm: clustering with %d clusters stopped after %d iterations: %w",
				len(centroids), iter-1, err)
		}

		u = UpdateMembershipParallel(data, centroids, cfg.Fuzziness, workers)
		next, err := UpdateCentroidsParallel(data, u, cfg.Fuzziness, workers)
		if err != nil {
			return nil, err
		}

		prev := centroids
		centroids = next
		if HasConverged(prev, next, cfg.Threshold) {
			return &Run{
				Clusters:   len(centroids),
				Centroids:  centroids,
				Membership: u,
				Iterations: iter,
				Status:     StatusConverged,
			}, nil
		}
	}

	return &Run{
		Clusters:   len(centroids),
		Centroids:  centroids,
		Membership: u,
		Iterations: cfg.MaxIterations,
		Status:     StatusBudgetExhausted,
	}, nil
}
