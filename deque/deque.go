package deque

import "fmt"
import "math"

import "github.com/bnclabs/gocontainer/api"
import "github.com/bnclabs/gocontainer/lib"
import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

// Deque manage a single instance of in-memory sequence container
// over an unrolled doubly linked list.
type Deque[T any] struct {
	// stats
	n_count   int64
	n_inserts int64
	n_deletes int64
	n_gets    int64
	n_splits  int64
	n_merges  int64

	name      string
	head      *bucket[T] // sentinel, head.next is the first bucket
	tail      *bucket[T] // sentinel, tail.prev is the last bucket
	setts     s.Settings
	logprefix string
	dead      bool

	// settings
	minsplit    float64
	splitfactor float64
	newfactor   float64
	mergefactor float64
}

// New instance of in-memory sequence container.
func New[T any](name string, setts s.Settings) *Deque[T] {
	dq := &Deque[T]{name: name}
	dq.logprefix = fmt.Sprintf("DEQE [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	dq.readsettings(setts)
	dq.setts = setts

	dq.head, dq.tail = newbucket[T](), newbucket[T]()
	dq.head.next, dq.tail.prev = dq.tail, dq.head

	infof("%v started ...\n", dq.logprefix)
	return dq
}

// split / new / merge thresholds, all scaling with sqrt(n).

func (dq *Deque[T]) splitpara() float64 {
	return math.Max(dq.minsplit, dq.splitfactor*math.Sqrt(float64(dq.n_count)))
}

func (dq *Deque[T]) newpara() float64 {
	return math.Max(dq.minsplit, dq.newfactor*math.Sqrt(float64(dq.n_count)))
}

func (dq *Deque[T]) mergepara() float64 {
	return dq.mergefactor * math.Sqrt(float64(dq.n_count))
}

//---- api.Container interface

// ID implement api.Container interface.
func (dq *Deque[T]) ID() string {
	return dq.name
}

// Count implement api.Container interface, return number of
// elements held.
func (dq *Deque[T]) Count() int64 {
	return dq.n_count
}

// Empty implement api.Container interface.
func (dq *Deque[T]) Empty() bool {
	return dq.n_count == 0
}

// Clear implement api.Container interface, remove every element.
// All outstanding iterators into this deque become invalid.
func (dq *Deque[T]) Clear() {
	dq.head.next, dq.tail.prev = dq.tail, dq.head
	dq.n_count = 0
}

//---- reads

// At return the element at index pos, fail with
// api.ErrorOutofbound when pos is outside [0, count).
func (dq *Deque[T]) At(pos int64) (value T, err error) {
	nd, err := dq.locate(pos)
	if err != nil {
		return value, err
	}
	return nd.value, nil
}

// SetAt overwrite the element at index pos.
func (dq *Deque[T]) SetAt(pos int64, value T) error {
	nd, err := dq.locate(pos)
	if err != nil {
		return err
	}
	nd.value = value
	return nil
}

// locate walk bucket by bucket to the one covering pos, then node
// by node within it, O(sqrt n).
func (dq *Deque[T]) locate(pos int64) (*bnode[T], error) {
	dq.n_gets++
	if pos < 0 || pos >= dq.n_count {
		return nil, api.ErrorOutofbound
	}
	bk, cur := dq.head.next, int64(0)
	for cur+bk.size <= pos {
		cur += bk.size
		bk = bk.next
	}
	nd := bk.head.next
	for cur < pos {
		cur++
		nd = nd.next
	}
	return nd, nil
}

// Front return the first element, fail with
// api.ErrorEmptyContainer when the deque is empty.
func (dq *Deque[T]) Front() (value T, err error) {
	if dq.n_count == 0 {
		return value, api.ErrorEmptyContainer
	}
	return dq.head.next.head.next.value, nil
}

// Back return the last element, fail with api.ErrorEmptyContainer
// when the deque is empty.
func (dq *Deque[T]) Back() (value T, err error) {
	if dq.n_count == 0 {
		return value, api.ErrorEmptyContainer
	}
	return dq.tail.prev.tail.prev.value, nil
}

// Begin return an iterator to the first element, same as End()
// when the deque is empty.
func (dq *Deque[T]) Begin() *Iterator[T] {
	return &Iterator[T]{dq: dq, bk: dq.head.next, nd: dq.head.next.head.next}
}

// End return the one-past-the-last iterator.
func (dq *Deque[T]) End() *Iterator[T] {
	return &Iterator[T]{dq: dq, bk: dq.tail, nd: dq.tail.head.next}
}

//---- writes

// PushBack append value, starting a fresh bucket when the last
// bucket is outgrown.
func (dq *Deque[T]) PushBack(value T) {
	dq.n_count++
	dq.n_inserts++
	if dq.n_count == 1 || float64(dq.tail.prev.size) > dq.newpara() {
		newbk := newbucket[T]()
		nd := &bnode[T]{value: value}
		newbk.head.next, newbk.tail.prev = nd, nd
		nd.prev, nd.next = newbk.head, newbk.tail
		dq.tail.prev.next = newbk
		newbk.prev, newbk.next = dq.tail.prev, dq.tail
		dq.tail.prev = newbk
		newbk.size = 1
		return
	}
	last := dq.tail.prev
	last.size++
	nd := &bnode[T]{value: value}
	nd.prev, nd.next = last.tail.prev, last.tail
	last.tail.prev.next = nd
	last.tail.prev = nd
}

// PushFront prepend value, starting a fresh bucket when the first
// bucket is outgrown.
func (dq *Deque[T]) PushFront(value T) {
	dq.n_count++
	dq.n_inserts++
	if dq.n_count == 1 || float64(dq.head.next.size) > dq.newpara() {
		newbk := newbucket[T]()
		nd := &bnode[T]{value: value}
		newbk.head.next, newbk.tail.prev = nd, nd
		nd.prev, nd.next = newbk.head, newbk.tail
		dq.head.next.prev = newbk
		newbk.next, newbk.prev = dq.head.next, dq.head
		dq.head.next = newbk
		newbk.size = 1
		return
	}
	first := dq.head.next
	first.size++
	nd := &bnode[T]{value: value}
	nd.prev, nd.next = first.head, first.head.next
	first.head.next.prev = nd
	first.head.next = nd
}

// PopBack remove the last element, fail with
// api.ErrorEmptyContainer when the deque is empty.
func (dq *Deque[T]) PopBack() error {
	if dq.n_count == 0 {
		return api.ErrorEmptyContainer
	}
	dq.n_count--
	dq.n_deletes++
	last := dq.tail.prev
	last.size--
	if last.size == 0 {
		last.prev.next = last.next
		last.next.prev = last.prev
		return nil
	}
	nd := last.tail.prev
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	return nil
}

// PopFront remove the first element, fail with
// api.ErrorEmptyContainer when the deque is empty.
func (dq *Deque[T]) PopFront() error {
	if dq.n_count == 0 {
		return api.ErrorEmptyContainer
	}
	dq.n_count--
	dq.n_deletes++
	first := dq.head.next
	first.size--
	if first.size == 0 {
		first.prev.next = first.next
		first.next.prev = first.prev
		return nil
	}
	nd := first.head.next
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	return nil
}

// Insert value just before the position referenced by it, return
// an iterator to the inserted element. The target bucket splits in
// half when it outgrows the split threshold.
func (dq *Deque[T]) Insert(it *Iterator[T], value T) (*Iterator[T], error) {
	if it == nil || it.dq != dq || it.nd == nil {
		return nil, api.ErrorInvalidIterator
	}
	if it.Equal(dq.End()) {
		dq.PushBack(value)
		last := dq.tail.prev
		return &Iterator[T]{dq: dq, bk: last, nd: last.tail.prev}, nil
	}
	if it.nd.dummy {
		return nil, api.ErrorInvalidIterator
	}
	dq.n_count++
	dq.n_inserts++
	tarbk, posnd := it.bk, it.nd
	tarbk.size++
	nd := &bnode[T]{value: value}
	nd.prev, nd.next = posnd.prev, posnd
	posnd.prev.next = nd
	posnd.prev = nd
	if float64(tarbk.size) > dq.splitpara() {
		dq.n_splits++
		tarbk.splitbefore(tarbk.size >> 1)
		for cur := tarbk.head.next; cur != tarbk.tail; cur = cur.next {
			if cur == nd {
				return &Iterator[T]{dq: dq, bk: tarbk, nd: nd}, nil
			}
		}
		return &Iterator[T]{dq: dq, bk: tarbk.next, nd: nd}, nil
	}
	return &Iterator[T]{dq: dq, bk: tarbk, nd: nd}, nil
}

// Erase the element referenced by it, return an iterator to the
// following element. Underfull neighbour buckets are merged back.
func (dq *Deque[T]) Erase(it *Iterator[T]) (*Iterator[T], error) {
	if it == nil || it.dq != dq || it.nd == nil || it.nd.dummy {
		return nil, api.ErrorInvalidIterator
	}
	dq.n_count--
	dq.n_deletes++
	tarbk, tarnd := it.bk, it.nd
	tarbk.size--
	if tarbk.size == 0 {
		next := &Iterator[T]{
			dq: dq, bk: tarbk.next, nd: tarbk.next.head.next,
		}
		tarbk.next.prev = tarbk.prev
		tarbk.prev.next = tarbk.next
		return next, nil
	}
	nextinnext := tarnd.next == tarbk.tail
	nextnd := tarnd.next
	if nextinnext {
		nextnd = tarbk.next.head.next
	}
	tarnd.next.prev = tarnd.prev
	tarnd.prev.next = tarnd.next
	if tarbk.prev != dq.head &&
		float64(tarbk.size+tarbk.prev.size) < dq.mergepara() {
		dq.n_merges++
		result := tarbk.prev
		result.mergenext()
		if nextinnext {
			return &Iterator[T]{dq: dq, bk: result.next, nd: nextnd}, nil
		}
		return &Iterator[T]{dq: dq, bk: result, nd: nextnd}, nil
	} else if tarbk.next != dq.tail &&
		float64(tarbk.size+tarbk.next.size) < dq.mergepara() {
		dq.n_merges++
		tarbk.mergenext()
		return &Iterator[T]{dq: dq, bk: tarbk, nd: nextnd}, nil
	}
	if nextinnext {
		return &Iterator[T]{dq: dq, bk: tarbk.next, nd: nextnd}, nil
	}
	return &Iterator[T]{dq: dq, bk: tarbk, nd: nextnd}, nil
}

//---- clone and teardown

// Clone this deque into a deep copy, bucket by bucket.
func (dq *Deque[T]) Clone(name string) *Deque[T] {
	newdq := New[T](name, dq.setts)
	newdq.n_count = dq.n_count
	for bk := dq.head.next; bk != dq.tail; bk = bk.next {
		newbk := bk.clone()
		newdq.tail.prev.next = newbk
		newbk.prev = newdq.tail.prev
		newbk.next = newdq.tail
		newdq.tail.prev = newbk
	}
	return newdq
}

// Destroy this deque instance.
func (dq *Deque[T]) Destroy() {
	if dq.dead {
		panic("Destroy(): already dead deque instance")
	}
	dq.Clear()
	dq.setts, dq.dead = nil, true
	infof("%v destroyed\n", dq.logprefix)
}

// Validate implement api.Container interface. Walk every bucket
// and panic on broken links, empty live buckets or a count
// mismatch.
func (dq *Deque[T]) Validate() {
	total := int64(0)
	lastbk := dq.head
	for bk := dq.head.next; bk != dq.tail; bk = bk.next {
		if bk.prev != lastbk {
			panic("Validate(): broken bucket prev link")
		}
		if bk.size == 0 {
			panic("Validate(): empty live bucket")
		}
		n, lastnd := int64(0), bk.head
		for nd := bk.head.next; nd != bk.tail; nd = nd.next {
			if nd.prev != lastnd {
				panic("Validate(): broken node prev link")
			}
			if nd.dummy {
				panic("Validate(): dummy node inside bucket")
			}
			lastnd, n = nd, n+1
		}
		if bk.tail.prev != lastnd {
			panic("Validate(): broken bucket tail link")
		}
		if n != bk.size {
			fmsg := "Validate(): bucket size %v holds %v nodes"
			panic(fmt.Errorf(fmsg, bk.size, n))
		}
		lastbk, total = bk, total+bk.size
	}
	if dq.tail.prev != lastbk {
		panic("Validate(): broken tail link")
	}
	if total != dq.n_count {
		fmsg := "Validate(): count mismatch buckets:%v n_count:%v"
		panic(fmt.Errorf(fmsg, total, dq.n_count))
	}
}

// Stats implement api.Container interface, include a distribution
// of live bucket sizes.
func (dq *Deque[T]) Stats() map[string]interface{} {
	av, buckets := &lib.AverageInt64{}, int64(0)
	for bk := dq.head.next; bk != dq.tail; bk = bk.next {
		av.Add(bk.size)
		buckets++
	}
	return map[string]interface{}{
		"n_count":    dq.n_count,
		"n_inserts":  dq.n_inserts,
		"n_deletes":  dq.n_deletes,
		"n_gets":     dq.n_gets,
		"n_splits":   dq.n_splits,
		"n_merges":   dq.n_merges,
		"n_buckets":  buckets,
		"bucketsize": av.Stats(),
	}
}

// Log vital statistics for this deque instance.
func (dq *Deque[T]) Log() {
	stats := dq.Stats()
	fmsg := "%v count %v over %v buckets {splits:%v merges:%v}\n"
	infof(
		fmsg, dq.logprefix, humanize.Comma(dq.n_count),
		humanize.Comma(stats["n_buckets"].(int64)),
		humanize.Comma(dq.n_splits), humanize.Comma(dq.n_merges))
}
