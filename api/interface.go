// Package api define error values and common contracts for
// gocontainer data structures.
package api

// Container interface implemented by every gocontainer data
// structure - omap.Map, deque.Deque and pq.Queue.
type Container interface {
	// ID return the name supplied while creating this container.
	ID() string

	// Count return number of elements held by this container.
	Count() int64

	// Empty return true iff this container holds no elements.
	Empty() bool

	// Clear remove all elements, restoring the empty-container
	// invariant. Outstanding iterators into this container become
	// invalid.
	Clear()

	// Validate walk the container and panic on any violation of
	// its structural invariants. Meant for tests and debugging.
	Validate()

	// Stats return a snapshot of operational statistics.
	Stats() map[string]interface{}
}
