package lib

import "testing"

func TestAverageInt64(t *testing.T) {
	av := &AverageInt64{}
	if av.Mean() != 0 || av.Variance() != 0 || av.Sd() != 0 {
		t.Errorf("unexpected non-zero stats")
	}
	for i := int64(1); i <= 100; i++ {
		av.Add(i)
	}
	if av.Samples() != 100 {
		t.Errorf("unexpected %v", av.Samples())
	}
	if av.Min() != 1 || av.Max() != 100 {
		t.Errorf("unexpected %v %v", av.Min(), av.Max())
	}
	if av.Sum() != 5050 {
		t.Errorf("unexpected %v", av.Sum())
	}
	if av.Mean() != 50 {
		t.Errorf("unexpected %v", av.Mean())
	}
	if x := av.Variance(); x != 883 {
		t.Errorf("unexpected %v", x)
	}
	if x := av.Sd(); x != 29 {
		t.Errorf("unexpected %v", x)
	}
	stats := av.Stats()
	if x := stats["samples"].(int64); x != 100 {
		t.Errorf("unexpected %v", x)
	}
}

func TestHistogramInt64(t *testing.T) {
	h := NewhistogramInt64(1, 100, 10)
	for i := int64(-10); i <= 110; i++ {
		h.Add(i)
	}
	if h.Min() != -10 || h.Max() != 110 {
		t.Errorf("unexpected %v %v", h.Min(), h.Max())
	}
	stats := h.Fullstats()
	if x := stats["samples"].(int64); x != 121 {
		t.Errorf("unexpected %v", x)
	}
	logstr := stats["histogram"].(string)
	if len(logstr) == 0 || logstr[0] != '{' {
		t.Errorf("unexpected %v", logstr)
	}
}
