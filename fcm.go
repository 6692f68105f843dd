package fcm

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Config controls Fuzzy C-Means clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Fuzziness is the exponent m applied to membership degrees. Values
	// close to 1 approach hard clustering; larger values produce flatter
	// memberships. Must be > 1. Default: 5. Values very close to 1 can
	// leave a cluster with no membership at all, which fails with
	// ErrZeroWeight.
	Fuzziness float64

	// MaxIterations caps the update cycles of a single run. A run that
	// reaches the cap ends with StatusBudgetExhausted. Must be >= 1.
	// Default: 100.
	MaxIterations int

	// Threshold is the largest centroid displacement between two
	// iterations that still counts as converged. Must be > 0.
	// Default: 0.001.
	Threshold float64

	// MinClusters and MaxClusters bound the candidate cluster counts swept
	// by Cluster, inclusive. MinClusters must be >= 2 and MaxClusters must
	// be >= MinClusters. Default: 2 and 10.
	MinClusters int
	MaxClusters int

	// Init selects how starting centroids are drawn. Default: InitUnit.
	Init InitMethod

	// Seed feeds the random source used for initialization. A sweep seeds
	// cluster count c with Seed+c, so results are reproducible for a fixed
	// Seed regardless of Workers. Default: 0.
	Seed int64

	// Workers bounds the goroutines used by Cluster and Fit. Cluster runs
	// up to Workers candidate counts at once and splits the remainder
	// across each run's membership and centroid phases.
	// 0 means use runtime.NumCPU(). Must be >= 0. Default: 0 (auto).
	Workers int

	// Logger receives per-candidate debug events and the selection.
	// nil disables logging.
	Logger *zerolog.Logger
}

// Candidate scores one cluster count of a sweep.
type Candidate struct {
	Clusters   int     `json:"clusters"`
	Entropy    float64 `json:"entropy"`
	Iterations int     `json:"iterations"`
	Status     Status  `json:"status"`
}

// Result contains the output of a Fuzzy C-Means sweep.
type Result struct {
	// Clusters is the selected cluster count (minimum partition entropy).
	Clusters int

	// Centroids holds the selected run's centroids.
	Centroids [][]float64

	// Membership is the selected run's C×N membership matrix.
	Membership *mat.Dense

	// Labels assigns each point to its highest-membership cluster.
	Labels []int

	// Cost is Σ_k Σ_i u(i,k)^m ‖x_k − v_i‖² for the selected run.
	Cost float64

	// Entropy is the normalized partition entropy of the selected run, in [0, 1].
	Entropy float64

	// PartitionCoefficient is (1/N) Σ u², in [1/C, 1].
	PartitionCoefficient float64

	// Iterations and Status describe how the selected run ended.
	Iterations int
	Status     Status

	// Fuzziness is the exponent the result was computed with.
	Fuzziness float64

	// Candidates lists every swept cluster count in ascending order.
	Candidates []Candidate
}

// Converged reports whether the selected run met the convergence threshold.
func (r *Result) Converged() bool { return r.Status == StatusConverged }

// Predict returns the membership of point in each of the result's clusters.
func (r *Result) Predict(point []float64) []float64 {
	return Predict(point, r.Centroids, r.Fuzziness)
}

// DefaultConfig returns a Config with the reference parameters.
func DefaultConfig() Config {
	return Config{
		Fuzziness:     5,
		MaxIterations: 100,
		Threshold:     0.001,
		MinClusters:   2,
		MaxClusters:   10,
		Init:          InitUnit,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if math.IsNaN(cfg.Fuzziness) || math.IsInf(cfg.Fuzziness, 0) || cfg.Fuzziness <= 1 {
		return fmt.Errorf("fcm: Fuzziness must be a finite value > 1, got %v", cfg.Fuzziness)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("fcm: MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}
	if math.IsNaN(cfg.Threshold) || cfg.Threshold <= 0 {
		return fmt.Errorf("fcm: Threshold must be > 0, got %v", cfg.Threshold)
	}
	if cfg.MinClusters < 2 {
		return fmt.Errorf("fcm: MinClusters must be >= 2, got %d", cfg.MinClusters)
	}
	if cfg.MaxClusters < cfg.MinClusters {
		return fmt.Errorf("fcm: MaxClusters (%d) must be >= MinClusters (%d)", cfg.MaxClusters, cfg.MinClusters)
	}
	switch cfg.Init {
	case InitUnit, InitBounds:
		// valid
	default:
		return fmt.Errorf("fcm: invalid Init %q", cfg.Init)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("fcm: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields that have a safe default.
// Numeric parameters are never defaulted: a zero Fuzziness is an error.
func applyDefaults(cfg *Config) {
	if cfg.Init == "" {
		cfg.Init = InitUnit
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
}

// validateData checks that data is non-empty, rectangular and finite.
func validateData(data [][]float64) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	dims := len(data[0])
	if dims == 0 {
		return fmt.Errorf("%w: points have no coordinates", ErrDimensionMismatch)
	}
	for k, p := range data {
		if len(p) != dims {
			return fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, k, len(p), dims)
		}
		for j, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: point %d coordinate %d is %v", ErrNonFinite, k, j, x)
			}
		}
	}
	return nil
}

// validateCentroids checks initial centroids against n points of dimension dims.
func validateCentroids(centroids [][]float64, n, dims int) error {
	if len(centroids) < 2 {
		return fmt.Errorf("fcm: number of clusters must be >= 2, got %d", len(centroids))
	}
	if n < len(centroids) {
		return fmt.Errorf("%w: %d points, %d clusters", ErrTooFewPoints, n, len(centroids))
	}
	for i, v := range centroids {
		if len(v) != dims {
			return fmt.Errorf("%w: centroid %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(v), dims)
		}
		for j, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: centroid %d coordinate %d is %v", ErrNonFinite, i, j, x)
			}
		}
	}
	return nil
}

// Cluster sweeps every cluster count in [cfg.MinClusters, cfg.MaxClusters],
// fits each one and returns the count with the lowest partition entropy,
// together with its centroids, membership matrix and cost.
// Ties go to the smaller count.
//
// Returns an error if the config or data is invalid, if there are fewer
// points than cfg.MaxClusters, or if ctx is cancelled. Candidates that run
// out of iterations still take part in the selection; their Status says so.
func Cluster(ctx context.Context, data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateData(data); err != nil {
		return nil, err
	}
	if len(data) < cfg.MaxClusters {
		return nil, fmt.Errorf("%w: %d points, MaxClusters %d", ErrTooFewPoints, len(data), cfg.MaxClusters)
	}

	count := cfg.MaxClusters - cfg.MinClusters + 1
	sweepWorkers := min(cfg.Workers, count)
	runWorkers := max(1, cfg.Workers/sweepWorkers)

	runs := make([]*Run, count)
	candidates := make([]Candidate, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepWorkers)

	for idx := 0; idx < count; idx++ {
		idx := idx
		c := cfg.MinClusters + idx
		g.Go(func() error {
			run, err := fitSeeded(gctx, data, c, cfg, runWorkers)
			if err != nil {
				return err
			}
			entropy := PartitionEntropy(run.Membership)
			runs[idx] = run
			candidates[idx] = Candidate{
				Clusters:   c,
				Entropy:    entropy,
				Iterations: run.Iterations,
				Status:     run.Status,
			}
			cfg.Logger.Debug().
				Int("clusters", c).
				Float64("entropy", entropy).
				Int("iterations", run.Iterations).
				Str("status", string(run.Status)).
				Msg("candidate fitted")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for idx := 1; idx < count; idx++ {
		if candidates[idx].Entropy < candidates[best].Entropy {
			best = idx
		}
	}

	run := runs[best]
	res := &Result{
		Clusters:             run.Clusters,
		Centroids:            run.Centroids,
		Membership:           run.Membership,
		Labels:               Labels(run.Membership),
		Cost:                 Cost(data, run.Centroids, run.Membership, cfg.Fuzziness),
		Entropy:              candidates[best].Entropy,
		PartitionCoefficient: PartitionCoefficient(run.Membership),
		Iterations:           run.Iterations,
		Status:               run.Status,
		Fuzziness:            cfg.Fuzziness,
		Candidates:           candidates,
	}

	cfg.Logger.Info().
		Int("clusters", res.Clusters).
		Float64("entropy", res.Entropy).
		Float64("cost", res.Cost).
		Bool("converged", res.Converged()).
		Msg("cluster count selected")

	return res, nil
}
