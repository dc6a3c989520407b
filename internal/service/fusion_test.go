package service

import (
	"math"
	"testing"

	"github.com/lennart/cinemood/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect []float64
	}{
		{
			name:   "spreads to unit range",
			input:  []float64{2, 4, 6},
			expect: []float64{0, 0.5, 1},
		},
		{
			name:   "constant signal yields all zeros",
			input:  []float64{3.3, 3.3, 3.3},
			expect: []float64{0, 0, 0},
		},
		{
			name:   "single value yields zero",
			input:  []float64{42},
			expect: []float64{0},
		},
		{
			name:   "empty input",
			input:  nil,
			expect: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %d values, got %d", len(tt.expect), len(got))
			}
			for i := range got {
				if math.IsNaN(got[i]) {
					t.Fatalf("value %d is NaN", i)
				}
				if math.Abs(got[i]-tt.expect[i]) > 1e-9 {
					t.Errorf("value %d: expected %v, got %v", i, tt.expect[i], got[i])
				}
			}
		})
	}
}

func TestFuseRange(t *testing.T) {
	weights := domain.DefaultWeights()
	signals := Signals{
		Semantic:   []float64{0.9, 0.1, 0.5},
		Lexical:    []float64{0.2, 0.8, 0.4},
		Affect:     []float64{0.5, 0.25, 0.9},
		Popularity: []float64{120, 15, 48},
		Rating:     []float64{8.1, 6.4, 7.2},
	}

	fused, err := Fuse(signals, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fused) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(fused))
	}

	for i, score := range fused {
		if score < 0 || score > weights.Sum() {
			t.Errorf("score %d out of range [0, %v]: %v", i, weights.Sum(), score)
		}
	}
}

func TestFuseConstantSignals(t *testing.T) {
	signals := Signals{
		Semantic:   []float64{0.5, 0.5},
		Lexical:    []float64{0.3, 0.3},
		Affect:     []float64{0.25, 0.25},
		Popularity: []float64{10, 10},
		Rating:     []float64{7, 7},
	}

	fused, err := Fuse(signals, domain.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, score := range fused {
		if score != 0 {
			t.Errorf("expected all-zero fused scores for constant signals, got %v at %d", score, i)
		}
	}
}

func TestFuseLengthMismatch(t *testing.T) {
	signals := Signals{
		Semantic:   []float64{0.5, 0.5},
		Lexical:    []float64{0.3},
		Affect:     []float64{0.25, 0.25},
		Popularity: []float64{10, 10},
		Rating:     []float64{7, 7},
	}

	if _, err := Fuse(signals, domain.DefaultWeights()); err == nil {
		t.Fatal("expected error for mismatched signal lengths")
	}
}
