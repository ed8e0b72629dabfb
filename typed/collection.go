package typed

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/typed.go/constraints"
	"github.com/iotaledger/typed.go/stringify"
)

// Collection is an insertion ordered store of identifiable entities. Every identifier is present at most once and the
// entities are addressable by a dense Position in [0, Count()) that is tagged with the type of the Collection, so
// positions of two different collection types can not be mixed up.
//
// The Collection owns its entities: the pointers it hands out alias its storage. Positions are not stable, removing
// the entity at position p moves every later entity one position down. Positions (and iterations) obtained before a
// call to Add, AddPtr, Emplace, Remove or Clear must not be relied upon afterwards.
//
// By default, lookups by identifier scan the entities. A Collection created by NewIndexedCollection additionally
// keeps a red-black tree from identifier to entity which makes Find logarithmic and ForEachByID free of sorting.
//
// The zero value is an empty, non-indexed Collection ready to use. A Collection is not safe for concurrent use.
type Collection[E Identifiable[E, IDRaw], IDRaw comparable, PositionRaw constraints.Unsigned] struct {
	entities []*E
	index    *redblacktree.Tree
}

// NewCollection returns an empty Collection that finds entities by scanning.
func NewCollection[E Identifiable[E, IDRaw], IDRaw comparable, PositionRaw constraints.Unsigned]() *Collection[E, IDRaw, PositionRaw] {
	return new(Collection[E, IDRaw, PositionRaw])
}

// NewIndexedCollection returns an empty Collection that maintains an identifier index.
func NewIndexedCollection[E Identifiable[E, IDRaw], IDRaw comparable, PositionRaw constraints.Unsigned]() *Collection[E, IDRaw, PositionRaw] {
	return &Collection[E, IDRaw, PositionRaw]{
		index: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return a.(ID[E, IDRaw]).Compare(b.(ID[E, IDRaw]))
		}),
	}
}

// Position returns the Position of this collection type with the given raw value.
func (c *Collection[E, IDRaw, PositionRaw]) Position(raw PositionRaw) Position[Collection[E, IDRaw, PositionRaw], PositionRaw] {
	return NewPosition[Collection[E, IDRaw, PositionRaw]](raw)
}

// Size returns the number of entities.
func (c *Collection[E, IDRaw, PositionRaw]) Size() Position[Collection[E, IDRaw, PositionRaw], PositionRaw] {
	return c.Position(PositionRaw(len(c.entities)))
}

// Count returns the number of entities (same as Size).
func (c *Collection[E, IDRaw, PositionRaw]) Count() Position[Collection[E, IDRaw, PositionRaw], PositionRaw] {
	return c.Size()
}

// IsEmpty returns true if the Collection holds no entities.
func (c *Collection[E, IDRaw, PositionRaw]) IsEmpty() bool {
	return len(c.entities) == 0
}

// IsIndexed returns true if the Collection maintains an identifier index.
func (c *Collection[E, IDRaw, PositionRaw]) IsIndexed() bool {
	return c.index != nil
}

// Add stores a copy of the given entity unless an entity with the same identifier exists already. It returns the
// stored entity (the existing one in case of a duplicate) and whether the entity was inserted.
func (c *Collection[E, IDRaw, PositionRaw]) Add(entity E) (stored *E, inserted bool) {
	return c.AddPtr(&entity)
}

// AddPtr takes ownership of the given entity unless an entity with the same identifier exists already. In that case
// the existing entity is returned and the Collection does not retain the argument.
func (c *Collection[E, IDRaw, PositionRaw]) AddPtr(entity *E) (stored *E, inserted bool) {
	if entity == nil {
		panic(ErrNilEntity)
	}

	id := (*entity).ID()
	if existing, exists := c.Find(id); exists {
		return existing, false
	}

	if maxCount := ^PositionRaw(0); uint64(len(c.entities)) >= uint64(maxCount) {
		panic(errors.Wrapf(ErrCapacityExceeded, "a collection with positions up to %d can not hold more than %d entities", maxCount, maxCount))
	}

	c.entities = append(c.entities, entity)
	if c.index != nil {
		c.index.Put(id, entity)
	}

	return entity, true
}

// Emplace constructs an entity and adds it like AddPtr does.
func (c *Collection[E, IDRaw, PositionRaw]) Emplace(construct func() E) (stored *E, inserted bool) {
	entity := construct()

	return c.AddPtr(&entity)
}

// At returns the entity at the given position. It panics with ErrPositionOutOfBounds if the position is not smaller
// than Count().
func (c *Collection[E, IDRaw, PositionRaw]) At(position Position[Collection[E, IDRaw, PositionRaw], PositionRaw]) *E {
	entity, exists := c.Get(position)
	if !exists {
		panic(errors.Wrapf(ErrPositionOutOfBounds, "position %d is not within [0, %d)", position.Get(), len(c.entities)))
	}

	return entity
}

// Get returns the entity at the given position and whether the position is valid.
func (c *Collection[E, IDRaw, PositionRaw]) Get(position Position[Collection[E, IDRaw, PositionRaw], PositionRaw]) (entity *E, exists bool) {
	if uint64(position.Get()) >= uint64(len(c.entities)) {
		return nil, false
	}

	return c.entities[position.Get()], true
}

// Find returns the entity with the given identifier and whether it exists.
func (c *Collection[E, IDRaw, PositionRaw]) Find(id ID[E, IDRaw]) (entity *E, exists bool) {
	if c.index != nil {
		value, found := c.index.Get(id)
		if !found {
			return nil, false
		}

		return value.(*E), true
	}

	if index := c.scan(id); index >= 0 {
		return c.entities[index], true
	}

	return nil, false
}

// Has returns true if an entity with the given identifier exists.
func (c *Collection[E, IDRaw, PositionRaw]) Has(id ID[E, IDRaw]) bool {
	_, exists := c.Find(id)

	return exists
}

// PositionOf returns the current position of the entity with the given identifier and whether it exists.
func (c *Collection[E, IDRaw, PositionRaw]) PositionOf(id ID[E, IDRaw]) (position Position[Collection[E, IDRaw, PositionRaw], PositionRaw], exists bool) {
	index := c.indexOf(id)
	if index < 0 {
		return position, false
	}

	return c.Position(PositionRaw(index)), true
}

// Remove detaches the entity with the given identifier and hands it back to the caller. Every entity behind it moves
// one position down. If no entity has the identifier, the Collection is left unchanged.
func (c *Collection[E, IDRaw, PositionRaw]) Remove(id ID[E, IDRaw]) (removed *E, exists bool) {
	index := c.indexOf(id)
	if index < 0 {
		return nil, false
	}

	removed = c.entities[index]
	c.entities = slices.Delete(c.entities, index, index+1)
	if c.index != nil {
		c.index.Remove(id)
	}

	return removed, true
}

// Clear releases all entities.
func (c *Collection[E, IDRaw, PositionRaw]) Clear() {
	clear(c.entities)
	c.entities = c.entities[:0]
	if c.index != nil {
		c.index.Clear()
	}
}

// ForEach calls the consumer for every entity in position order. The iteration is aborted if the consumer returns
// false. The consumer must not modify the Collection.
func (c *Collection[E, IDRaw, PositionRaw]) ForEach(consumer func(position Position[Collection[E, IDRaw, PositionRaw], PositionRaw], entity *E) bool) bool {
	for index, entity := range c.entities {
		if !consumer(c.Position(PositionRaw(index)), entity) {
			return false
		}
	}

	return true
}

// ForEachByID calls the consumer for every entity in identifier order. The iteration is aborted if the consumer
// returns false. The consumer must not modify the Collection.
func (c *Collection[E, IDRaw, PositionRaw]) ForEachByID(consumer func(entity *E) bool) bool {
	if c.index != nil {
		for iterator := c.index.Iterator(); iterator.Next(); {
			if !consumer(iterator.Value().(*E)) {
				return false
			}
		}

		return true
	}

	sorted := slices.Clone(c.entities)
	slices.SortFunc(sorted, func(a, b *E) int {
		return CompareIdentifiable[E, IDRaw](*a, *b)
	})

	for _, entity := range sorted {
		if !consumer(entity) {
			return false
		}
	}

	return true
}

// Entities returns the entities in position order. The slice is a copy, the entities are not.
func (c *Collection[E, IDRaw, PositionRaw]) Entities() []*E {
	return slices.Clone(c.entities)
}

func (c *Collection[E, IDRaw, PositionRaw]) String() string {
	builder := stringify.NewStructBuilder("Collection")
	c.ForEach(func(position Position[Collection[E, IDRaw, PositionRaw], PositionRaw], entity *E) bool {
		builder.AddField(stringify.NewStructField(position.String(), *entity))

		return true
	})

	return builder.String()
}

// indexOf returns the slice index of the entity with the given identifier or -1.
func (c *Collection[E, IDRaw, PositionRaw]) indexOf(id ID[E, IDRaw]) int {
	if c.index == nil {
		return c.scan(id)
	}

	entity, exists := c.Find(id)
	if !exists {
		return -1
	}

	return slices.Index(c.entities, entity)
}

func (c *Collection[E, IDRaw, PositionRaw]) scan(id ID[E, IDRaw]) int {
	return slices.IndexFunc(c.entities, func(entity *E) bool {
		return (*entity).ID() == id
	})
}
