// Package deque implement an in-memory sequence container over an
// unrolled doubly linked list, a list of buckets where each bucket
// holds around sqrt(n) elements.
//
//   - Push and pop at either end in amortized O(1) time.
//   - Random access, insert and erase anywhere in O(sqrt n) time.
//   - Buckets split when they outgrow the split threshold and
//     adjacent underfull buckets merge back, both thresholds scale
//     with sqrt(n).
//
// Instances are not safe for concurrent use, applications shall
// serialize access.
package deque
