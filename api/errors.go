package api

import "errors"

// ErrorKeyNotFound say key is not found in the container, returned
// by bounds checked accessors like omap.At.
var ErrorKeyNotFound = errors.New("keyNotFound")

// ErrorInvalidIterator say iterator is nil, exhausted, or belongs
// to a different container instance.
var ErrorInvalidIterator = errors.New("invalidIterator")

// ErrorEmptyContainer say operation needs at least one element.
var ErrorEmptyContainer = errors.New("emptyContainer")

// ErrorOutofbound say supplied index is outside [0, count).
var ErrorOutofbound = errors.New("outofbound")
