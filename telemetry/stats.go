package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes one stats window. Serialized to CSV by the output
// manager, logged via slog in headless runs.
type WindowStats struct {
	WindowEnd     int32   `csv:"window_end_frame"`
	Frames        int     `csv:"frames"`
	Stars         int     `csv:"stars"`
	Clouds        int     `csv:"clouds"`
	Regenerations int     `csv:"regenerations"`
	ForceFrames   int     `csv:"force_active_frames"`
	FrameMeanMS   float64 `csv:"frame_mean_ms"`
	FrameStdMS    float64 `csv:"frame_std_ms"`
	FrameP50MS    float64 `csv:"frame_p50_ms"`
	FrameP90MS    float64 `csv:"frame_p90_ms"`
	FrameP99MS    float64 `csv:"frame_p99_ms"`
}

// Percentile returns the p-quantile (p in [0,1]) of a sorted slice using
// linear interpolation between ranks.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	rank := p * float64(n-1)
	lo := int(rank)
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// ComputeFrameStats returns mean, standard deviation, and the 50th/90th/99th
// percentiles of a slice of frame durations. The input is sorted in place.
func ComputeFrameStats(values []float64) (mean, std, p50, p90, p99 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}

	sort.Float64s(values)
	return mean, std, Percentile(values, 0.5), Percentile(values, 0.9), Percentile(values, 0.99)
}
