package service

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSparse(t *testing.T) {
	a := map[int]float64{0: 0.6, 2: 0.8}
	b := map[int]float64{0: 1.0}
	if got := cosineSparse(a, b); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("cosineSparse = %v, want 0.6", got)
	}

	if got := cosineSparse(a, map[int]float64{}); got != 0 {
		t.Errorf("empty vector should score 0, got %v", got)
	}

	disjoint := map[int]float64{5: 1.0}
	if got := cosineSparse(a, disjoint); got != 0 {
		t.Errorf("disjoint vectors should score 0, got %v", got)
	}
}
