package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation (n-1 denominator).
// Returns 0 for fewer than 2 observations.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	// The mean of identical values can round to a nearby float, leaving a
	// spurious nonzero deviation sum. A constant series has exactly zero
	// dispersion, so check for it before touching the mean.
	constant := true
	for _, v := range values[1:] {
		if v != values[0] {
			constant = false
			break
		}
	}
	if constant {
		return 0.0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Percentile returns the p-th percentile (0-100) using linear interpolation
// between order statistics. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// Skewness returns the sample skewness, or 0 when variance is zero or the
// sample is too small.
func Skewness(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	mean := Mean(values)
	std := StdDev(values)
	if std == 0 {
		return 0.0
	}
	sumCubed := 0.0
	for _, v := range values {
		d := (v - mean) / std
		sumCubed += d * d * d
	}
	return sumCubed / float64(len(values))
}

// Covariance returns the sample covariance of two equal-length slices.
// Returns 0 for fewer than 2 pairs.
func Covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0.0
	}
	meanX := Mean(x)
	meanY := Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(len(x)-1)
}

// Variance returns the sample variance (n-1 denominator).
func Variance(values []float64) float64 {
	std := StdDev(values)
	return std * std
}
