// Package pq implement an in-memory mergeable priority queue over
// a leftist heap.
//
//   - Push, Pop and destructive Merge in O(log n) time.
//   - Top return the greatest element under the supplied order, as
//     with sort-before-pop semantics of a max-heap.
//
// Instances are not safe for concurrent use, applications shall
// serialize access.
package pq

import "cmp"
import "fmt"

import "github.com/bnclabs/gocontainer/api"
import humanize "github.com/dustin/go-humanize"

// Less is the natural strict weak order over ordered element
// types, the usual comparator argument to New.
func Less[T cmp.Ordered](a, b T) bool {
	return a < b
}

// lnode is a node in the leftist heap. rank is the distance to the
// nearest free child slot along the right spine.
type lnode[T any] struct {
	left, right *lnode[T]
	value       T
	rank        int64
}

// join two leftist subtrees into one, keeping the heap order and
// the leftist property rank(left) >= rank(right).
func join[T any](less func(a, b T) bool, a, b *lnode[T]) *lnode[T] {
	if b == nil {
		return a
	}
	if a == nil {
		return b
	}
	if less(a.value, b.value) { // a keeps the greater value on top
		a, b = b, a
	}
	a.right = join(less, a.right, b)
	if a.left == nil || a.left.rank < a.right.rank {
		a.left, a.right = a.right, a.left
	}
	if a.right == nil {
		a.rank = 0
	} else {
		a.rank = a.right.rank + 1
	}
	return a
}

// Queue manage a single instance of in-memory mergeable priority
// queue.
type Queue[T any] struct {
	// stats
	n_count  int64
	n_pushes int64
	n_pops   int64
	n_merges int64

	name string
	less func(a, b T) bool
	root *lnode[T]
}

// New instance of in-memory priority queue ordered under less, a
// strict weak order over elements. Top yields the greatest element
// under that order. Use pq.Less for the natural order of the
// element type.
func New[T any](name string, less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{name: name, less: less}
}

//---- api.Container interface

// ID implement api.Container interface.
func (q *Queue[T]) ID() string {
	return q.name
}

// Count implement api.Container interface, return number of
// elements held.
func (q *Queue[T]) Count() int64 {
	return q.n_count
}

// Empty implement api.Container interface.
func (q *Queue[T]) Empty() bool {
	return q.n_count == 0
}

// Clear implement api.Container interface, remove every element.
func (q *Queue[T]) Clear() {
	q.root, q.n_count = nil, 0
}

//---- operations

// Top return the greatest element, fail with
// api.ErrorEmptyContainer when the queue is empty.
func (q *Queue[T]) Top() (value T, err error) {
	if q.n_count == 0 {
		return value, api.ErrorEmptyContainer
	}
	return q.root.value, nil
}

// Push value into the queue.
func (q *Queue[T]) Push(value T) {
	q.root = join(q.less, q.root, &lnode[T]{value: value})
	q.n_count++
	q.n_pushes++
}

// Pop remove the greatest element, fail with
// api.ErrorEmptyContainer when the queue is empty.
func (q *Queue[T]) Pop() error {
	if q.n_count == 0 {
		return api.ErrorEmptyContainer
	}
	q.root = join(q.less, q.root.left, q.root.right)
	q.n_count--
	q.n_pops++
	return nil
}

// Merge another queue into this one in O(log n) time. The other
// queue is drained and left empty, both queues must share an
// equivalent order.
func (q *Queue[T]) Merge(other *Queue[T]) {
	q.n_count += other.n_count
	other.n_count = 0

	q.root = join(q.less, q.root, other.root)
	other.root = nil
	q.n_merges++
}

// Clone this queue into a deep copy that is value-equal but
// pointer disjoint from the original.
func (q *Queue[T]) Clone(name string) *Queue[T] {
	newq := New[T](name, q.less)
	newq.root = clonetree(q.root)
	newq.n_count = q.n_count
	return newq
}

func clonetree[T any](nd *lnode[T]) *lnode[T] {
	if nd == nil {
		return nil
	}
	return &lnode[T]{
		value: nd.value, rank: nd.rank,
		left: clonetree(nd.left), right: clonetree(nd.right),
	}
}

// Validate implement api.Container interface. Walk the heap and
// panic on any violation of the heap order, the leftist rank
// property or the element count.
func (q *Queue[T]) Validate() {
	if count := q.validatetree(q.root); count != q.n_count {
		fmsg := "Validate(): count mismatch heap:%v n_count:%v"
		panic(fmt.Errorf(fmsg, count, q.n_count))
	}
}

func (q *Queue[T]) validatetree(nd *lnode[T]) int64 {
	if nd == nil {
		return 0
	}
	for _, c := range []*lnode[T]{nd.left, nd.right} {
		if c != nil && q.less(nd.value, c.value) {
			panic("Validate(): heap order violated")
		}
	}
	lrank, rrank := int64(-1), int64(-1)
	if nd.left != nil {
		lrank = nd.left.rank
	}
	if nd.right != nil {
		rrank = nd.right.rank
	}
	if lrank < rrank {
		panic("Validate(): leftist property violated")
	}
	if nd.rank != rrank+1 {
		fmsg := "Validate(): rank %v against right child %v"
		panic(fmt.Errorf(fmsg, nd.rank, rrank))
	}
	return 1 + q.validatetree(nd.left) + q.validatetree(nd.right)
}

// Stats implement api.Container interface.
func (q *Queue[T]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":  q.n_count,
		"n_pushes": q.n_pushes,
		"n_pops":   q.n_pops,
		"n_merges": q.n_merges,
	}
}

// Logstring for this queue instance.
func (q *Queue[T]) Logstring() string {
	fmsg := "PRQU [%s] count %v {pushes:%v pops:%v merges:%v}"
	return fmt.Sprintf(
		fmsg, q.name, humanize.Comma(q.n_count),
		humanize.Comma(q.n_pushes), humanize.Comma(q.n_pops),
		humanize.Comma(q.n_merges))
}
