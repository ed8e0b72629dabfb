package typed

// ID is the identifier of an entity of type Tag. It is a Tagged value whose domain is the entity type itself, so the
// identifiers of two entity types never mix.
type ID[Tag any, Raw comparable] = Tagged[Tag, Raw]

// NewID returns the identifier wrapping the given raw value.
func NewID[Tag any, Raw comparable](raw Raw) ID[Tag, Raw] {
	return NewTagged[Tag](raw)
}

// Identifiable is implemented by entities that carry an identifier of their own type.
type Identifiable[Tag any, Raw comparable] interface {
	ID() ID[Tag, Raw]
}

// Identity adds an immutable identifier to the entity type it is embedded in:
//
//	type Dog struct {
//		typed.Identity[Dog, uint64]
//	}
//
// The identifier is fixed at construction. Changing it means removing the entity from its Collection and adding a
// new one.
type Identity[Tag any, Raw comparable] struct {
	id ID[Tag, Raw]
}

// NewIdentity returns an Identity with the identifier wrapping the given raw value.
func NewIdentity[Tag any, Raw comparable](raw Raw) Identity[Tag, Raw] {
	return Identity[Tag, Raw]{id: NewID[Tag](raw)}
}

// IdentityOf returns an Identity with the given identifier.
func IdentityOf[Tag any, Raw comparable](id ID[Tag, Raw]) Identity[Tag, Raw] {
	return Identity[Tag, Raw]{id: id}
}

// ID returns the identifier.
func (i Identity[Tag, Raw]) ID() ID[Tag, Raw] {
	return i.id
}

// CompareIdentifiable orders two entities by their identifiers.
func CompareIdentifiable[E Identifiable[E, Raw], Raw comparable](a, b E) int {
	return a.ID().Compare(b.ID())
}

// EqualIdentifiable returns true if both entities have the same identifier.
func EqualIdentifiable[E Identifiable[E, Raw], Raw comparable](a, b E) bool {
	return a.ID() == b.ID()
}
