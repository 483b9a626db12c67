package omap

import "github.com/bnclabs/gocontainer/api"

// Iterator is a bidirectional cursor over a Map, backed by the
// order-list, every step is an O(1) pointer follow and never walks
// the tree. The zero value is invalid, obtain iterators from Begin,
// End, Find or Insert. An iterator stays valid across insertions
// and across erasures of other elements, it is invalidated exactly
// when the node it references is destroyed.
type Iterator[K, V any] struct {
	m  *Map[K, V]
	nd *node[K, V]
}

// Next step to the in-order successor. Stepping past End fails
// with api.ErrorInvalidIterator.
func (it *Iterator[K, V]) Next() error {
	if it.nd == nil || it.nd == it.m.tail {
		return api.ErrorInvalidIterator
	}
	it.nd = it.nd.next
	return nil
}

// Prev step to the in-order predecessor. Stepping before Begin
// fails with api.ErrorInvalidIterator.
func (it *Iterator[K, V]) Prev() error {
	if it.nd == nil || it.nd == it.m.head.next {
		return api.ErrorInvalidIterator
	}
	it.nd = it.nd.prev
	return nil
}

// Key under the cursor. Dereferencing End or a zero iterator fails
// with api.ErrorInvalidIterator.
func (it *Iterator[K, V]) Key() (K, error) {
	if it.nd == nil || it.nd == it.m.tail {
		var key K
		return key, api.ErrorInvalidIterator
	}
	return it.nd.key, nil
}

// Value under the cursor. Same failure contract as Key.
func (it *Iterator[K, V]) Value() (V, error) {
	if it.nd == nil || it.nd == it.m.tail {
		var value V
		return value, api.ErrorInvalidIterator
	}
	return it.nd.value, nil
}

// SetValue overwrite the value under the cursor. Same failure
// contract as Key.
func (it *Iterator[K, V]) SetValue(value V) error {
	if it.nd == nil || it.nd == it.m.tail {
		return api.ErrorInvalidIterator
	}
	it.nd.value = value
	return nil
}

// Equal is true iff both iterators reference the same node.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return other != nil && it.nd == other.nd
}

// Readonly narrow this iterator into a read-only view. The
// narrowing is one-directional, a ConstIterator cannot be widened
// back.
func (it *Iterator[K, V]) Readonly() *ConstIterator[K, V] {
	return &ConstIterator[K, V]{it: Iterator[K, V]{m: it.m, nd: it.nd}}
}

// ConstIterator is the read-only counterpart of Iterator, with the
// same navigation and failure contract but no mutation surface.
type ConstIterator[K, V any] struct {
	it Iterator[K, V]
}

// Next step to the in-order successor.
func (cit *ConstIterator[K, V]) Next() error {
	return cit.it.Next()
}

// Prev step to the in-order predecessor.
func (cit *ConstIterator[K, V]) Prev() error {
	return cit.it.Prev()
}

// Key under the cursor.
func (cit *ConstIterator[K, V]) Key() (K, error) {
	return cit.it.Key()
}

// Value under the cursor.
func (cit *ConstIterator[K, V]) Value() (V, error) {
	return cit.it.Value()
}

// Equal is true iff both iterators reference the same node.
func (cit *ConstIterator[K, V]) Equal(other *ConstIterator[K, V]) bool {
	return other != nil && cit.it.nd == other.it.nd
}
