package core

// Entity is a unique identifier for an entity
// Zero is never allocated and marks "no entity"
type Entity uint64

// NoEntity is the sentinel for an absent entity reference
const NoEntity Entity = 0

// Valid reports whether the id refers to an allocated entity slot
func (e Entity) Valid() bool {
	return e != NoEntity
}
