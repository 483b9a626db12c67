package deque

import "github.com/bnclabs/gocontainer/api"

// Iterator is a bidirectional cursor over a Deque. Single steps
// are O(1) amortized, Advance and Distance are O(sqrt n). The zero
// value is invalid, obtain iterators from Begin, End or Insert.
// Iterators do not survive splits, merges or erasures around their
// element.
type Iterator[T any] struct {
	dq *Deque[T]
	bk *bucket[T]
	nd *bnode[T]
}

// Next step to the following element, hopping into the next bucket
// at a bucket boundary. Stepping past End fails with
// api.ErrorInvalidIterator.
func (it *Iterator[T]) Next() error {
	if it.nd == nil || it.Equal(it.dq.End()) {
		return api.ErrorInvalidIterator
	}
	it.nd = it.nd.next
	if it.nd == it.bk.tail {
		it.bk = it.bk.next
		it.nd = it.bk.head.next
	}
	return nil
}

// Prev step to the preceding element. Stepping before Begin fails
// with api.ErrorInvalidIterator.
func (it *Iterator[T]) Prev() error {
	if it.nd == nil || it.Equal(it.dq.Begin()) {
		return api.ErrorInvalidIterator
	}
	it.nd = it.nd.prev
	if it.nd == it.bk.head {
		it.bk = it.bk.prev
		it.nd = it.bk.tail.prev
	}
	return nil
}

// Value under the cursor. Dereferencing End or a zero iterator
// fails with api.ErrorInvalidIterator.
func (it *Iterator[T]) Value() (value T, err error) {
	if it.nd == nil || it.nd.dummy {
		return value, api.ErrorInvalidIterator
	}
	return it.nd.value, nil
}

// SetValue overwrite the element under the cursor. Same failure
// contract as Value.
func (it *Iterator[T]) SetValue(value T) error {
	if it.nd == nil || it.nd.dummy {
		return api.ErrorInvalidIterator
	}
	it.nd.value = value
	return nil
}

// Equal is true iff both iterators reference the same node.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return other != nil && it.nd == other.nd
}

// Advance move the cursor n elements forward, or backward for
// negative n, in O(sqrt n) skipping whole buckets. Fail with
// api.ErrorInvalidIterator when the move exceeds End or Begin,
// leaving the cursor untouched.
func (it *Iterator[T]) Advance(n int64) error {
	if it.nd == nil {
		return api.ErrorInvalidIterator
	}
	if n > 0 && it.Equal(it.dq.End()) {
		return api.ErrorInvalidIterator
	}
	var bk *bucket[T]
	var nd *bnode[T]
	var err error
	if n < 0 {
		bk, nd, err = it.retreat(-n)
	} else {
		bk, nd, err = it.advance(n)
	}
	if err != nil {
		return err
	}
	it.bk, it.nd = bk, nd
	return nil
}

func (it *Iterator[T]) advance(n int64) (*bucket[T], *bnode[T], error) {
	bk, nd, diff := it.bk, it.nd, int64(0)
	for diff < n && nd.next != bk.tail {
		diff++
		nd = nd.next
	}
	if diff == n {
		return bk, nd, nil
	}
	diff++
	bk = bk.next
	for diff+bk.size <= n && bk.size != 0 {
		diff += bk.size
		bk = bk.next
	}
	if bk.size == 0 && diff != n {
		return nil, nil, api.ErrorInvalidIterator
	}
	nd = bk.head.next
	for diff < n {
		diff++
		nd = nd.next
	}
	return bk, nd, nil
}

func (it *Iterator[T]) retreat(n int64) (*bucket[T], *bnode[T], error) {
	bk, nd, diff := it.bk, it.nd, int64(0)
	for diff < n && nd.prev != bk.head {
		diff++
		nd = nd.prev
	}
	if diff == n {
		return bk, nd, nil
	}
	diff++
	bk = bk.prev
	for diff+bk.size <= n && bk.size != 0 {
		diff += bk.size
		bk = bk.prev
	}
	if bk.size == 0 {
		// landed on the head sentinel, before Begin
		return nil, nil, api.ErrorInvalidIterator
	}
	nd = bk.tail.prev
	for diff < n {
		diff++
		nd = nd.prev
	}
	return bk, nd, nil
}

// pos return the index of the cursor within the deque, O(sqrt n).
func (it *Iterator[T]) pos() int64 {
	n := int64(0)
	for nd := it.nd; nd.prev != it.bk.head; nd = nd.prev {
		n++
	}
	for bk := it.bk; bk.prev != it.dq.head; bk = bk.prev {
		n += bk.prev.size
	}
	return n
}

// Distance return how many elements it is ahead of other, negative
// when behind. Fail with api.ErrorInvalidIterator when the two
// cursors belong to different deque instances.
func (it *Iterator[T]) Distance(other *Iterator[T]) (int64, error) {
	if other == nil || it.dq != other.dq {
		return 0, api.ErrorInvalidIterator
	}
	return it.pos() - other.pos(), nil
}
