package telemetry

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
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeFrameStats(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p50, p90, p99 := ComputeFrameStats(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if std <= 0 {
		t.Errorf("std = %v, want > 0", std)
	}
	if math.Abs(p50-5.5) > 0.01 {
		t.Errorf("p50 = %v, want ~5.5", p50)
	}
	if math.Abs(p90-9.1) > 0.01 {
		t.Errorf("p90 = %v, want ~9.1", p90)
	}
	if p99 < p90 || p99 > 10 {
		t.Errorf("p99 = %v, want in [p90, 10]", p99)
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, std, p50, p90, p99 := ComputeFrameStats([]float64{})

	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 || p99 != 0 {
		t.Error("empty slice should return all zeros")
	}
}
