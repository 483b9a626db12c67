// Package omap implement an in-memory ordered map from unique keys
// to values, sorted under a caller supplied total order.
//
//   - Point lookup, insert and erase in O(log n) time.
//   - Successor / predecessor step in O(1) time.
//   - Each key shall be unique within the map sample-set.
//   - Bidirectional iterators that survive unrelated mutations.
//
// The internal structure is a red-black tree threaded with a doubly
// linked list over the same nodes, the list order always matching
// the tree's in-order sequence. Iterators read only the list and
// never walk the tree.
//
// Instances are not safe for concurrent use, applications shall
// serialize access or partition by key.
package omap
