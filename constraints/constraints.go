package constraints

// Unsigned is a constraint that permits any unsigned integer type. It is the only raw representation a Position
// may use.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ordered is a constraint that permits any ordered type: any type
// that supports the operators < <= >= >.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | Unsigned | ~float32 | ~float64 | ~string
}

// Comparable is implemented by types that define their own total order. Compare returns a negative number if the
// receiver sorts before other, zero if both are equal and a positive number otherwise.
type Comparable[T any] interface {
	Compare(other T) int
}
