package typed

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrPositionOutOfBounds is raised (as a panic) when a Position outside of [0, Count()) is accessed.
	ErrPositionOutOfBounds = errors.New("position out of bounds")

	// ErrCapacityExceeded is raised (as a panic) when a Collection would hold more entities than its Position type can
	// count.
	ErrCapacityExceeded = errors.New("collection capacity exceeded")

	// ErrNilEntity is raised (as a panic) when a nil entity is handed to a Collection.
	ErrNilEntity = errors.New("nil entity")

	// ErrUnorderedRaw is raised (as a panic) when two distinct raw values of a type without an order are compared.
	ErrUnorderedRaw = errors.New("raw value is not ordered")
)
