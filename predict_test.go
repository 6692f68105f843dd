package fcm

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPredict_MatchesUpdateMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := randomData(rng, 20, 2, 10)
	centroids := randomData(rng, 3, 2, 10)
	u := UpdateMembership(data, centroids, 2)

	for k, p := range data {
		got := Predict(p, centroids, 2)
		for i := range centroids {
			if got[i] != u.At(i, k) {
				t.Errorf("point %d cluster %d: Predict %v, UpdateMembership %v", k, i, got[i], u.At(i, k))
			}
		}
	}
}

func TestPredict_OnCentroid(t *testing.T) {
	got := Predict([]float64{5, 5}, [][]float64{{0, 0}, {5, 5}}, 2)
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("expected [0 1], got %v", got)
	}
}

func TestLabels(t *testing.T) {
	u := mat.NewDense(3, 4, []float64{
		0.7, 0.1, 0.2, 0.4,
		0.2, 0.8, 0.2, 0.4,
		0.1, 0.1, 0.6, 0.2,
	})
	want := []int{0, 1, 2, 0}
	got := Labels(u)
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("label[%d]: got %d, want %d", k, got[k], want[k])
		}
	}
}

func TestResultPredict(t *testing.T) {
	res := &Result{
		Centroids: [][]float64{{0, 0.5}, {10, 0.5}},
		Fuzziness: 2,
	}
	got := res.Predict([]float64{1, 0.5})
	if got[0] <= 0.9 {
		t.Errorf("expected point near the first centroid to favor it, got %v", got)
	}
	if !almostEqual(got[0]+got[1], 1, floatTol) {
		t.Errorf("memberships should sum to 1, got %v", got)
	}
}
