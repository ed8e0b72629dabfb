package typed

import (
	"encoding/json"
	"strconv"

	"github.com/iotaledger/typed.go/constraints"
	"github.com/iotaledger/typed.go/lo"
)

// Position is the unsigned, dense index of an element within the container named by Tag. It shares the
// representation of Tagged and adds the arithmetic a loop over a container needs. All arithmetic wraps around exactly
// like the arithmetic of Raw does.
type Position[Tag any, Raw constraints.Unsigned] Tagged[Tag, Raw]

// NewPosition returns the Position with the given raw value.
func NewPosition[Tag any, Raw constraints.Unsigned](raw Raw) Position[Tag, Raw] {
	return Position[Tag, Raw]{raw: raw}
}

// Get returns the raw value.
func (p Position[Tag, Raw]) Get() Raw {
	return p.raw
}

// Set replaces the raw value.
func (p *Position[Tag, Raw]) Set(raw Raw) {
	p.raw = raw
}

// Tagged returns the Position as a plain Tagged value of the same domain.
func (p Position[Tag, Raw]) Tagged() Tagged[Tag, Raw] {
	return Tagged[Tag, Raw](p)
}

// Compare returns -1, 0 or 1 if p is smaller, equal or greater than other.
func (p Position[Tag, Raw]) Compare(other Position[Tag, Raw]) int {
	return lo.Comparator(p.raw, other.raw)
}

// Less returns true if p is smaller than other.
func (p Position[Tag, Raw]) Less(other Position[Tag, Raw]) bool {
	return p.raw < other.raw
}

// Add returns p + other.
func (p Position[Tag, Raw]) Add(other Position[Tag, Raw]) Position[Tag, Raw] {
	return p.AddRaw(other.raw)
}

// AddRaw returns p + delta.
func (p Position[Tag, Raw]) AddRaw(delta Raw) Position[Tag, Raw] {
	return Position[Tag, Raw]{raw: p.raw + delta}
}

// Sub returns p - other.
func (p Position[Tag, Raw]) Sub(other Position[Tag, Raw]) Position[Tag, Raw] {
	return p.SubRaw(other.raw)
}

// SubRaw returns p - delta.
func (p Position[Tag, Raw]) SubRaw(delta Raw) Position[Tag, Raw] {
	return Position[Tag, Raw]{raw: p.raw - delta}
}

// Inc increments p and returns the incremented value.
func (p *Position[Tag, Raw]) Inc() Position[Tag, Raw] {
	p.raw++

	return *p
}

// PostInc increments p and returns the value it had before.
func (p *Position[Tag, Raw]) PostInc() (previous Position[Tag, Raw]) {
	previous = *p
	p.raw++

	return previous
}

// Dec decrements p and returns the decremented value.
func (p *Position[Tag, Raw]) Dec() Position[Tag, Raw] {
	p.raw--

	return *p
}

// PostDec decrements p and returns the value it had before.
func (p *Position[Tag, Raw]) PostDec() (previous Position[Tag, Raw]) {
	previous = *p
	p.raw--

	return previous
}

func (p Position[Tag, Raw]) String() string {
	return strconv.FormatUint(uint64(p.raw), 10)
}

// MarshalJSON encodes the raw value.
func (p Position[Tag, Raw]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// UnmarshalJSON decodes the raw value.
func (p *Position[Tag, Raw]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.raw)
}
