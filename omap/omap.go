package omap

import "cmp"
import "fmt"

import "github.com/bnclabs/gocontainer/api"
import "github.com/bnclabs/gocontainer/lib"
import s "github.com/bnclabs/gosettings"

// Less is the natural strict weak order over ordered key types,
// the usual comparator argument to New.
func Less[K cmp.Ordered](a, b K) bool {
	return a < b
}

// Map manage a single instance of in-memory ordered map. Map owns
// every node it holds, external references to node internals are
// exposed only as key/value pairs through iterators.
type Map[K, V any] struct {
	// stats
	n_count   int64
	n_inserts int64
	n_dups    int64
	n_deletes int64
	n_lookups int64
	n_clones  int64
	n_frees   int64
	n_nodes   int64

	h_insertdepth *lib.HistogramInt64

	name      string
	less      func(a, b K) bool
	root      *node[K, V]
	head      *node[K, V] // head.next is the first element
	tail      *node[K, V] // tail.prev is the last element, End() is tail
	freelist  []*node[K, V]
	setts     s.Settings
	logprefix string
	dead      bool

	// settings
	flsize    int64
	depthtill int64
}

// New instance of in-memory ordered map sorted under less, a
// strict weak order over keys: less(a, b) iff a strictly precedes
// b, key equivalence is !less(a, b) && !less(b, a). Use omap.Less
// for the natural order of the key type.
func New[K, V any](
	name string, less func(a, b K) bool, setts s.Settings) *Map[K, V] {

	m := &Map[K, V]{name: name, less: less}
	m.logprefix = fmt.Sprintf("OMAP [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)
	m.setts = setts

	m.head, m.tail = &node[K, V]{}, &node[K, V]{}
	m.head.next, m.tail.prev = m.tail, m.head
	m.freelist = make([]*node[K, V], 0, m.flsize)

	m.h_insertdepth = lib.NewhistogramInt64(1, m.depthtill, 4)

	infof("%v started ...\n", m.logprefix)
	return m
}

//---- api.Container interface

// ID implement api.Container interface.
func (m *Map[K, V]) ID() string {
	return m.name
}

// Count implement api.Container interface, return number of
// key/value pairs held.
func (m *Map[K, V]) Count() int64 {
	return m.n_count
}

// Empty implement api.Container interface.
func (m *Map[K, V]) Empty() bool {
	return m.n_count == 0
}

// Clear implement api.Container interface, remove every pair and
// restore the empty-map invariant. All outstanding iterators into
// this map become invalid.
func (m *Map[K, V]) Clear() {
	cur := m.head.next
	for cur != m.tail {
		next := cur.next
		m.freenode(cur)
		cur = next
	}
	m.head.next, m.tail.prev = m.tail, m.head
	m.root, m.n_count = nil, 0
}

//---- reads

// Find return an iterator to the pair holding key, End() if key is
// absent.
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	m.n_lookups++
	if nd := m.search(key); nd != nil {
		return &Iterator[K, V]{m: m, nd: nd}
	}
	return m.End()
}

// Has return whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	m.n_lookups++
	return m.search(key) != nil
}

// Countkey return 1 if key is present else 0, keys are unique
// within the map.
func (m *Map[K, V]) Countkey(key K) int64 {
	if m.Has(key) {
		return 1
	}
	return 0
}

// At return a reference to the value stored under key, fail with
// api.ErrorKeyNotFound if key is absent.
func (m *Map[K, V]) At(key K) (*V, error) {
	m.n_lookups++
	if nd := m.search(key); nd != nil {
		return &nd.value, nil
	}
	return nil, api.ErrorKeyNotFound
}

// Begin return an iterator to the least key, same as End() when the
// map is empty.
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, nd: m.head.next}
}

// End return the one-past-the-last iterator.
func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, nd: m.tail}
}

//---- writes

// Insert a new pair {key, value}. If an equivalent key is already
// present nothing happens, the stored value is not overwritten. The
// returned iterator always refers to the node holding key, the
// boolean is true iff a new node was created.
func (m *Map[K, V]) Insert(key K, value V) (*Iterator[K, V], bool) {
	nd, created := m.insert(key, value)
	if created {
		m.n_inserts++
	} else {
		m.n_dups++
	}
	return &Iterator[K, V]{m: m, nd: nd}, created
}

// Ref return a reference to the value stored under key, inserting
// {key, zero-value} first when key is absent.
func (m *Map[K, V]) Ref(key K) *V {
	var value V
	nd, created := m.insert(key, value)
	if created {
		m.n_inserts++
	}
	return &nd.value
}

// Erase the pair referenced by it. Fail with
// api.ErrorInvalidIterator if it equals End() or belongs to a
// different map instance. Iterators to other elements stay valid,
// with one documented exception: erasing an element whose node has
// two tree children swaps payload with the in-order successor and
// destroys the successor's node, so iterators referencing either
// the erased element or that successor must be considered invalid.
func (m *Map[K, V]) Erase(it *Iterator[K, V]) error {
	if it == nil || it.m != m || it.nd == nil || it.nd == m.tail {
		return api.ErrorInvalidIterator
	}
	m.erase(it.nd)
	m.n_deletes++
	return nil
}

//---- clone and teardown

// Clone this map into a deep copy that is value-equal but pointer
// disjoint from the original. Tree shape and colors are preserved
// by a structural clone, after which the list is re-threaded by a
// single in-order pass.
func (m *Map[K, V]) Clone(name string) *Map[K, V] {
	newm := New[K, V](name, m.less, m.setts)
	newm.root = newm.clonetree(m.root, nil, left)
	newm.n_count = m.n_count
	newm.threadlist()
	m.n_clones++
	return newm
}

func (m *Map[K, V]) clonetree(
	nd, father *node[K, V], which int) *node[K, V] {

	if nd == nil {
		return nil
	}
	newnd := &node[K, V]{
		key: nd.key, value: nd.value, hue: nd.hue,
		father: father, which: which,
	}
	m.n_nodes++
	newnd.child[left] = m.clonetree(nd.child[left], newnd, left)
	newnd.child[right] = m.clonetree(nd.child[right], newnd, right)
	return newnd
}

func (m *Map[K, V]) threadlist() {
	last := m.head
	var walk func(nd *node[K, V])
	walk = func(nd *node[K, V]) {
		if nd == nil {
			return
		}
		walk(nd.child[left])
		last.next, nd.prev = nd, last
		last = nd
		walk(nd.child[right])
	}
	walk(m.root)
	last.next, m.tail.prev = m.tail, last
}

// Destroy this map instance, releasing every node.
func (m *Map[K, V]) Destroy() {
	if m.dead {
		panic("Destroy(): already dead omap instance")
	}
	m.Clear()
	m.freelist, m.setts, m.dead = nil, nil, true
	infof("%v destroyed\n", m.logprefix)
}
