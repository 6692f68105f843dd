// Package fcm implements Fuzzy C-Means (FCM) clustering.
//
// Unlike hard clustering, FCM gives every point a membership degree in
// [0, 1] in every cluster; a point's memberships sum to 1. Centroids and
// memberships are updated alternately until no centroid moves by more than
// a threshold or an iteration budget runs out.
//
// Basic usage:
//
//	cfg := fcm.DefaultConfig()
//	cfg.Fuzziness = 2
//	result, err := fcm.Cluster(ctx, data, cfg)
//	// result.Clusters is the cluster count with the lowest partition entropy
//	// result.Membership.At(i, k) is how strongly point k belongs to cluster i
//	// result.Labels[k] is point k's highest-membership cluster
//	// result.Converged() reports whether the winning run met the threshold
//
// To fit a single cluster count:
//
//	run, err := fcm.FitClusters(ctx, data, 3, cfg)
//
// or, with explicit starting centroids:
//
//	run, err := fcm.Fit(ctx, data, initial, cfg)
//
// # Model selection
//
// Cluster fits every count in [Config.MinClusters, Config.MaxClusters]
// concurrently and keeps the one whose membership matrix has the lowest
// normalized partition entropy. Each count is seeded from Config.Seed plus
// the count, so a sweep is reproducible for a fixed seed.
//
// # Non-convergence
//
// A run that exhausts Config.MaxIterations is returned normally with
// Status StatusBudgetExhausted. It is not an error; callers that need a
// converged result should check Run.Converged or Result.Converged.
package fcm
