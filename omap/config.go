package omap

import s "github.com/bnclabs/gosettings"

// Defaultsettings for omap instance.
//
// "freelist.size" (int64, default: 64),
//		Maximum number of erased nodes recycled for subsequent
//		inserts, instead of leaving them to the garbage collector.
//
// "insertdepth.till" (int64, default: 64),
//		Upper bound, in levels, for the insert-depth histogram
//		published via Stats().
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"freelist.size":    int64(64),
		"insertdepth.till": int64(64),
	}
}

func (m *Map[K, V]) readsettings(setts s.Settings) {
	m.flsize = setts.Int64("freelist.size")
	m.depthtill = setts.Int64("insertdepth.till")
}
