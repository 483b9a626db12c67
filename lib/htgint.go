package lib

import "fmt"
import "strings"

// HistogramInt64 statistical histogram over a stream of int64
// samples bucketed into fixed width ranges between from and till.
// Samples outside the range spill into the first and last bucket.
type HistogramInt64 struct {
	AverageInt64
	histogram []int64
	from      int64
	till      int64
	width     int64
}

// NewhistogramInt64 return a new histogram from `from`, to `till`,
// with granularity of `width`.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Fullstats return a snapshot of the running average along with
// the bucketed sample counts.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	stats := h.AverageInt64.Stats()
	stats["histogram"] = h.Logstring()
	return stats
}

// Logstring format non-empty buckets as "from:count" pairs, for
// logging.
func (h *HistogramInt64) Logstring() string {
	pairs := []string{}
	for i, count := range h.histogram {
		if count == 0 {
			continue
		}
		low := h.from + int64(i-1)*h.width
		if i == 0 {
			pairs = append(pairs, fmt.Sprintf("<%v:%v", h.from, count))
		} else if i == len(h.histogram)-1 {
			pairs = append(pairs, fmt.Sprintf(">=%v:%v", h.till, count))
		} else {
			pairs = append(pairs, fmt.Sprintf("%v:%v", low, count))
		}
	}
	return "{" + strings.Join(pairs, ",") + "}"
}
