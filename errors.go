package fcm

import "errors"

var (
	// ErrEmptyData is returned when the data set holds no points.
	ErrEmptyData = errors.New("fcm: empty data set")

	// ErrDimensionMismatch is returned when points or centroids disagree on D.
	ErrDimensionMismatch = errors.New("fcm: dimension mismatch")

	// ErrTooFewPoints is returned when there are fewer points than clusters.
	ErrTooFewPoints = errors.New("fcm: fewer data points than clusters")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("fcm: non-finite coordinate")

	// ErrZeroWeight is returned when a cluster has no membership mass.
	ErrZeroWeight = errors.New("fcm: cluster has zero total membership weight")
)
