package fcm

import "testing"

func TestHasConverged(t *testing.T) {
	tests := []struct {
		name      string
		prev      [][]float64
		next      [][]float64
		threshold float64
		want      bool
	}{
		{"identical", [][]float64{{1, 1}, {2, 2}}, [][]float64{{1, 1}, {2, 2}}, 0.001, true},
		{"within threshold", [][]float64{{0, 0}, {5, 5}}, [][]float64{{0.0005, 0}, {5, 5.0009}}, 0.001, true},
		{"exactly at threshold", [][]float64{{0, 0}}, [][]float64{{0.001, 0}}, 0.001, true},
		{"one centroid moved", [][]float64{{0, 0}, {5, 5}}, [][]float64{{0, 0}, {5, 5.1}}, 0.001, false},
		{"matched by index", [][]float64{{0, 0}, {5, 5}}, [][]float64{{5, 5}, {0, 0}}, 0.001, false},
		{"different counts", [][]float64{{0, 0}}, [][]float64{{0, 0}, {1, 1}}, 0.001, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConverged(tt.prev, tt.next, tt.threshold); got != tt.want {
				t.Errorf("HasConverged = %v, want %v", got, tt.want)
			}
		})
	}
}
