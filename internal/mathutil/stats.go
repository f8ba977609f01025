package mathutil

import (
	"fmt"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// StatOption configures Variance and StdDev.
type StatOption func(*statOptions)

type statOptions struct {
	population bool
}

// Population divides by n instead of n-1, dropping the two-observation
// minimum of the sample statistics.
func Population() StatOption {
	return func(o *statOptions) { o.population = true }
}

// Mean returns the arithmetic mean of a non-empty real-valued sequence.
func Mean(data any) (float64, error) {
	xs, err := realSequence(data)
	if err != nil {
		return 0, err
	}
	return stat.Mean(xs, nil), nil
}

// Median returns the value separating the lower and upper halves of the
// sorted sequence; even-length input yields the mean of the two middle
// elements.
func Median(data any) (float64, error) {
	xs, err := realSequence(data)
	if err != nil {
		return 0, err
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Mode returns every value attaining the maximum frequency, sorted
// ascending. The result is always a slice, one element when the mode is
// unique; ties are broken only by the sort, never by occurrence order.
func Mode(data any) ([]float64, error) {
	xs, err := realSequence(data)
	if err != nil {
		return nil, err
	}
	freq := make(map[float64]int, len(xs))
	maxCount := 0
	for _, x := range xs {
		freq[x]++
		if freq[x] > maxCount {
			maxCount = freq[x]
		}
	}
	modes := make([]float64, 0, 1)
	for x, count := range freq {
		if count == maxCount {
			modes = append(modes, x)
		}
	}
	sort.Float64s(modes)
	return modes, nil
}

// Variance returns the sample variance of data (sum of squared deviations
// over n-1), or the population variance (over n) with the Population
// option. Sample variance is undefined for a single observation and fails
// with ErrInsufficientData.
func Variance(data any, opts ...StatOption) (float64, error) {
	var o statOptions
	for _, opt := range opts {
		opt(&o)
	}
	xs, err := realSequence(data)
	if err != nil {
		return 0, err
	}
	n := len(xs)
	if !o.population && n < 2 {
		return 0, fmt.Errorf("%w: sample variance requires at least two observations; got %d", ErrInsufficientData, n)
	}
	if n == 1 {
		return 0, nil
	}
	sample := stat.Variance(xs, nil)
	if o.population {
		// Exact rescale from the unbiased estimator.
		return sample * float64(n-1) / float64(n), nil
	}
	return sample, nil
}

// StdDev returns the square root of the corresponding variance, with the
// same sample-size constraint as Variance.
func StdDev(data any, opts ...StatOption) (float64, error) {
	v, err := Variance(data, opts...)
	if err != nil {
		return 0, err
	}
	return gomath.Sqrt(v), nil
}

func realSequence(data any) ([]float64, error) {
	seq, err := Sequence(data, "data")
	if err != nil {
		return nil, err
	}
	return reals(seq, "data")
}
