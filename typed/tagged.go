// Package typed provides identifiers and positions that are bound to the domain they belong to. Values of different
// domains can not be compared, converted into each other or passed to the wrong lookup, even if they share the same
// raw representation.
package typed

import (
	"encoding/json"
	"fmt"
)

// Tagged is a Raw value that belongs to the domain named by Tag. The Tag is never stored, it only distinguishes the
// types: Tagged[Dog, uint64] and Tagged[Duck, uint64] are unrelated types for the compiler.
//
// The zero value wraps the zero value of Raw.
type Tagged[Tag any, Raw comparable] struct {
	// tag makes the underlying struct types differ per Tag so that explicit conversions across domains are rejected
	// as well.
	tag [0]*Tag
	raw Raw
}

// NewTagged wraps the given raw value.
func NewTagged[Tag any, Raw comparable](raw Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{raw: raw}
}

// Get returns the raw value.
func (t Tagged[Tag, Raw]) Get() Raw {
	return t.raw
}

// Set replaces the raw value.
func (t *Tagged[Tag, Raw]) Set(raw Raw) {
	t.raw = raw
}

// Compare returns a negative number if t sorts before other, zero if both are equal and a positive number otherwise.
func (t Tagged[Tag, Raw]) Compare(other Tagged[Tag, Raw]) int {
	return compareRaw(t.raw, other.raw)
}

// Equal returns true if both values wrap the same raw value.
func (t Tagged[Tag, Raw]) Equal(other Tagged[Tag, Raw]) bool {
	return t.raw == other.raw
}

// Less returns true if t sorts before other.
func (t Tagged[Tag, Raw]) Less(other Tagged[Tag, Raw]) bool {
	return t.Compare(other) < 0
}

// IsZero returns true if the raw value is the zero value of Raw.
func (t Tagged[Tag, Raw]) IsZero() bool {
	var zero Raw

	return t.raw == zero
}

func (t Tagged[Tag, Raw]) String() string {
	return fmt.Sprint(t.raw)
}

// MarshalJSON encodes the raw value.
func (t Tagged[Tag, Raw]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.raw)
}

// UnmarshalJSON decodes the raw value.
func (t *Tagged[Tag, Raw]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.raw)
}
