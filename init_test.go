package fcm

import (
	"math/rand"
	"testing"
)

func TestInitializeCentroids_UnitCube(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	centroids := InitializeCentroids(5, 3, rng)
	if len(centroids) != 5 {
		t.Fatalf("expected 5 centroids, got %d", len(centroids))
	}
	for i, v := range centroids {
		if len(v) != 3 {
			t.Fatalf("centroid %d: expected dimension 3, got %d", i, len(v))
		}
		for j, x := range v {
			if x < 0 || x >= 1 {
				t.Errorf("centroid %d coordinate %d = %v outside [0, 1)", i, j, x)
			}
		}
	}
}

func TestInitializeCentroids_Reproducible(t *testing.T) {
	a := InitializeCentroids(4, 2, rand.New(rand.NewSource(7)))
	b := InitializeCentroids(4, 2, rand.New(rand.NewSource(7)))
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("centroid %d coordinate %d differs: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestInitializeCentroidsInBounds(t *testing.T) {
	data := [][]float64{{-5, 100}, {5, 200}, {0, 150}}
	rng := rand.New(rand.NewSource(42))
	centroids := InitializeCentroidsInBounds(data, 10, rng)
	if len(centroids) != 10 {
		t.Fatalf("expected 10 centroids, got %d", len(centroids))
	}
	for i, v := range centroids {
		if v[0] < -5 || v[0] > 5 {
			t.Errorf("centroid %d x = %v outside [-5, 5]", i, v[0])
		}
		if v[1] < 100 || v[1] > 200 {
			t.Errorf("centroid %d y = %v outside [100, 200]", i, v[1])
		}
	}
}

func TestInitializeCentroidsInBounds_FlatDimension(t *testing.T) {
	data := [][]float64{{1, 7}, {2, 7}, {3, 7}}
	centroids := InitializeCentroidsInBounds(data, 3, rand.New(rand.NewSource(1)))
	for i, v := range centroids {
		if v[1] != 7 {
			t.Errorf("centroid %d: flat dimension should stay at 7, got %v", i, v[1])
		}
	}
}
