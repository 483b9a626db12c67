package omap

import humanize "github.com/dustin/go-humanize"

// Stats implement api.Container interface, return a snapshot of
// operational counters along with the insert-depth histogram.
func (m *Map[K, V]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":       m.n_count,
		"n_inserts":     m.n_inserts,
		"n_dups":        m.n_dups,
		"n_deletes":     m.n_deletes,
		"n_lookups":     m.n_lookups,
		"n_clones":      m.n_clones,
		"n_frees":       m.n_frees,
		"n_nodes":       m.n_nodes,
		"freelist.size": int64(len(m.freelist)),
		"h_insertdepth": m.h_insertdepth.Fullstats(),
	}
}

// Log vital statistics for this map instance.
func (m *Map[K, V]) Log() {
	fmsg := "%v count %v {inserts:%v dups:%v deletes:%v lookups:%v}\n"
	infof(
		fmsg, m.logprefix, humanize.Comma(m.n_count),
		humanize.Comma(m.n_inserts), humanize.Comma(m.n_dups),
		humanize.Comma(m.n_deletes), humanize.Comma(m.n_lookups))
	fmsg = "%v nodes {allocated:%v freed:%v pooled:%v}\n"
	infof(
		fmsg, m.logprefix, humanize.Comma(m.n_nodes),
		humanize.Comma(m.n_frees), humanize.Comma(int64(len(m.freelist))))
	infof("%v insertdepth %v\n", m.logprefix, m.h_insertdepth.Logstring())
}
