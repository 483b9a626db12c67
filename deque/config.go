package deque

import s "github.com/bnclabs/gosettings"

// Defaultsettings for deque instance.
//
// "split.minimum" (float64, default: 9.9),
//		Lower bound on the split threshold, buckets smaller than
//		this never split regardless of the deque size.
//
// "split.factor" (float64, default: 2.89),
//		A bucket holding more than split.factor * sqrt(n) elements
//		after an insert is split into two buckets of about the same
//		size.
//
// "new.factor" (float64, default: 1.98),
//		Pushing at either end starts a fresh bucket when the edge
//		bucket already holds more than new.factor * sqrt(n)
//		elements.
//
// "merge.factor" (float64, default: 0.48),
//		Two adjacent buckets jointly holding less than
//		merge.factor * sqrt(n) elements after an erase are merged
//		into one.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"split.minimum": float64(9.9),
		"split.factor":  float64(2.89),
		"new.factor":    float64(1.98),
		"merge.factor":  float64(0.48),
	}
}

func (dq *Deque[T]) readsettings(setts s.Settings) {
	dq.minsplit = setts.Float64("split.minimum")
	dq.splitfactor = setts.Float64("split.factor")
	dq.newfactor = setts.Float64("new.factor")
	dq.mergefactor = setts.Float64("merge.factor")
}
