package fcm

import (
	"math"
	"math/rand"
	"testing"
)

func TestUpdateMembership_HandComputed(t *testing.T) {
	// d = 1 and 2, m = 2 so the exponent is 2:
	// u0 = 1/(1 + (1/2)^2) = 0.8, u1 = 1/((2/1)^2 + 1) = 0.2
	data := [][]float64{{1, 0}}
	centroids := [][]float64{{0, 0}, {3, 0}}

	u := UpdateMembership(data, centroids, 2)

	if r, c := u.Dims(); r != 2 || c != 1 {
		t.Fatalf("expected 2x1 matrix, got %dx%d", r, c)
	}
	if !almostEqual(u.At(0, 0), 0.8, floatTol) {
		t.Errorf("u(0,0): expected 0.8, got %v", u.At(0, 0))
	}
	if !almostEqual(u.At(1, 0), 0.2, floatTol) {
		t.Errorf("u(1,0): expected 0.2, got %v", u.At(1, 0))
	}
}

func TestUpdateMembership_ColumnsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := randomData(rng, 50, 3, 10)
	centroids := randomData(rng, 4, 3, 10)

	for _, m := range []float64{1.5, 2, 5, 20} {
		u := UpdateMembership(data, centroids, m)
		for k := range data {
			var sum float64
			for i := range centroids {
				x := u.At(i, k)
				if x < 0 || x > 1 {
					t.Errorf("m=%v: u(%d,%d) = %v outside [0, 1]", m, i, k, x)
				}
				sum += x
			}
			if !almostEqual(sum, 1, 1e-12) {
				t.Errorf("m=%v: column %d sums to %v", m, k, sum)
			}
		}
	}
}

func TestUpdateMembership_CentroidOnPoint(t *testing.T) {
	data := [][]float64{{1, 1}, {5, 5}}
	centroids := [][]float64{{2, 2}, {1, 1}, {9, 9}}

	u := UpdateMembership(data, centroids, 2)

	want := []float64{0, 1, 0}
	for i, w := range want {
		if u.At(i, 0) != w {
			t.Errorf("u(%d,0): expected exactly %v, got %v", i, w, u.At(i, 0))
		}
	}
	for i := range centroids {
		if math.IsNaN(u.At(i, 1)) {
			t.Errorf("u(%d,1) is NaN", i)
		}
	}
}

func TestUpdateMembership_SeveralCentroidsOnPoint(t *testing.T) {
	data := [][]float64{{1, 1}}
	centroids := [][]float64{{1, 1}, {4, 4}, {1, 1}, {1, 1}}

	u := UpdateMembership(data, centroids, 2)

	want := []float64{1.0 / 3, 0, 1.0 / 3, 1.0 / 3}
	for i, w := range want {
		if u.At(i, 0) != w {
			t.Errorf("u(%d,0): expected %v, got %v", i, w, u.At(i, 0))
		}
	}
}

func TestUpdateMembership_EquidistantIsUniform(t *testing.T) {
	data := [][]float64{{0, 0}}
	centroids := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	u := UpdateMembership(data, centroids, 3)

	for i := range centroids {
		if !almostEqual(u.At(i, 0), 0.25, floatTol) {
			t.Errorf("u(%d,0): expected 0.25, got %v", i, u.At(i, 0))
		}
	}
}

func TestUpdateMembership_LargerFuzzinessIsFlatter(t *testing.T) {
	data := [][]float64{{1, 0}}
	centroids := [][]float64{{0, 0}, {3, 0}}

	crisp := UpdateMembership(data, centroids, 1.5).At(0, 0)
	soft := UpdateMembership(data, centroids, 2).At(0, 0)
	flat := UpdateMembership(data, centroids, 10).At(0, 0)

	if !(crisp > soft && soft > flat && flat > 0.5) {
		t.Errorf("expected membership of nearer cluster to fall toward 0.5 as m grows: %v, %v, %v",
			crisp, soft, flat)
	}
}

func TestUpdateMembership_FuzzinessNearOne(t *testing.T) {
	// 2/(m-1) = 40 pushes ratios toward 0 and +Inf; the result must stay finite.
	rng := rand.New(rand.NewSource(3))
	data := randomData(rng, 20, 2, 100)
	centroids := randomData(rng, 3, 2, 100)

	u := UpdateMembership(data, centroids, 1.05)

	for k := range data {
		var sum float64
		for i := range centroids {
			x := u.At(i, k)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Fatalf("u(%d,%d) is not finite: %v", i, k, x)
			}
			sum += x
		}
		if !almostEqual(sum, 1, 1e-9) {
			t.Errorf("column %d sums to %v", k, sum)
		}
	}
}
