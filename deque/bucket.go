package deque

// bnode is a unit in a bucket holding a single element. Bucket
// sentinels are flagged dummy and never hold a value.
type bnode[T any] struct {
	prev, next *bnode[T]
	value      T
	dummy      bool
}

// bucket is a unit in the deque, a doubly linked list of bnodes
// bracketed by dummy head/tail sentinels.
type bucket[T any] struct {
	prev, next *bucket[T]
	head, tail *bnode[T]
	size       int64
}

func newbucket[T any]() *bucket[T] {
	bk := &bucket[T]{
		head: &bnode[T]{dummy: true}, tail: &bnode[T]{dummy: true},
	}
	bk.head.next, bk.tail.prev = bk.tail, bk.head
	return bk
}

// splitbefore split this bucket after its first pos elements, the
// remainder moves into a fresh bucket spliced right after this one.
func (bk *bucket[T]) splitbefore(pos int64) {
	newlast := bk.head
	for i := int64(0); i < pos; i++ {
		newlast = newlast.next
	}
	newfirst := newlast.next

	newbk := newbucket[T]()
	newbk.next, newbk.prev = bk.next, bk
	bk.next.prev = newbk
	bk.next = newbk

	newbk.tail.prev = bk.tail.prev
	bk.tail.prev.next = newbk.tail
	newbk.head.next = newfirst
	newfirst.prev = newbk.head

	bk.tail.prev = newlast
	newlast.next = bk.tail

	newbk.size = bk.size - pos
	bk.size = pos
}

// mergenext absorb the following bucket into this one.
func (bk *bucket[T]) mergenext() {
	oldtail, oldhead := bk.tail, bk.next.head
	oldtail.prev.next = oldhead.next
	oldhead.next.prev = oldtail.prev
	bk.tail = bk.next.tail

	bk.size += bk.next.size

	oldbk := bk.next
	oldbk.next.prev = bk
	bk.next = oldbk.next
}

// clone this bucket, element by element.
func (bk *bucket[T]) clone() *bucket[T] {
	newbk := newbucket[T]()
	newbk.size = bk.size
	for nd := bk.head.next; nd != bk.tail; nd = nd.next {
		newnd := &bnode[T]{value: nd.value}
		newbk.tail.prev.next = newnd
		newnd.prev = newbk.tail.prev
		newnd.next = newbk.tail
		newbk.tail.prev = newnd
	}
	return newbk
}
