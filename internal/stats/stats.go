// Package stats provides the descriptive statistics used by feature
// extraction. Every function returns 0 for empty input instead of NaN.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EntropyBins is the fixed number of equal-width histogram bins used by Entropy.
const EntropyBins = 10

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Variance returns the population variance (divides by n).
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopVariance(values, nil)
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Entropy returns the Shannon entropy in bits of values discretised into
// EntropyBins equal-width bins spanning [min, max]. A zero range collapses to 0.
// NaN and infinite samples are ignored; a range that overflows float64 also
// collapses to 0.
func Entropy(values []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if isFinite(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	if !isFinite(span) || span <= 0 {
		return 0
	}

	counts := make([]float64, EntropyBins)
	n := 0
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		bin := int((v - lo) / span * EntropyBins)
		switch {
		case bin < 0:
			bin = 0
		case bin >= EntropyBins:
			bin = EntropyBins - 1 // max lands in the last bin
		}
		counts[bin]++
		n++
	}

	floats.Scale(1/float64(n), counts)
	return stat.Entropy(counts) / math.Ln2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
