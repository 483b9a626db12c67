package lib

import "math"

// AverageInt64 compute statistical mean, variance and
// standard-deviation for a stream of int64 samples.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval, av.init = sample, true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Min return minimum of all samples.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return maximum of all samples.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Samples return total number of samples added.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Sum return sum of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return arithmetic mean of all samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance of all samples.
func (av *AverageInt64) Variance() int64 {
	if av.n == 0 {
		return 0
	}
	mean := float64(av.Mean())
	return int64((av.sumsq / float64(av.n)) - (mean * mean))
}

// Sd return standard-deviation of all samples.
func (av *AverageInt64) Sd() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(av.Variance())))
}

// Stats return a snapshot of samples, min, max, mean, variance
// and standard-deviation.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.Sd(),
	}
}
