package calculator

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 0.5, 0},
		{"single", []float64{7}, 0.9, 7},
		{"median even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median odd", []float64{1, 2, 3}, 0.5, 2},
		{"p10 interpolated", []float64{10, 20, 30, 40, 50}, 0.1, 14},
		{"p90 interpolated", []float64{10, 20, 30, 40, 50}, 0.9, 46},
		{"p0", []float64{10, 20, 30}, 0, 10},
		{"p100", []float64{10, 20, 30}, 1, 30},
	}
	for _, tt := range tests {
		if got := Percentile(tt.sorted, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): got %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}
