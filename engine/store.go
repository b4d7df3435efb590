package engine

import (
	"sync"

	"github.com/lixenwraith/vi-mesh/core"
)

type storeEntry[T any] struct {
	value   T
	added   Tick
	changed Tick
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration; every write records
// the world tick so systems can query what changed since their last run
type Store[T any] struct {
	mu         sync.RWMutex
	ticks      TickSource
	components map[core.Entity]*storeEntry[T]
	entities   []core.Entity // Array of entities that have this component
	onRemove   []func(core.Entity, T)
}

// NewStore creates a new component store for type T
func NewStore[T any](ticks TickSource) *Store[T] {
	return &Store[T]{
		ticks:      ticks,
		components: make(map[core.Entity]*storeEntry[T]),
		entities:   make([]core.Entity, 0, 64),
	}
}

func (s *Store[T]) now() Tick {
	if s.ticks == nil {
		return 0
	}
	return s.ticks.CurrentTick()
}

// Set inserts or replaces a component, marking it changed
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tick := s.now()
	if entry, exists := s.components[e]; exists {
		entry.value = val
		entry.changed = tick
		return
	}
	s.components[e] = &storeEntry[T]{value: val, added: tick, changed: tick}
	s.entities = append(s.entities, e)
}

// Get retrieves a component for an entity
// Slices inside T alias the stored value; write through Mutate
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.components[e]; ok {
		return entry.value, true
	}
	var zero T
	return zero, false
}

// Mutate applies fn to the stored component in place and marks it changed
// The write itself is the change signal, values are never compared
// Returns false if the entity has no component
func (s *Store[T]) Mutate(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&entry.value)
	entry.changed = s.now()
	return true
}

// Remove deletes a component from an entity and runs removal hooks
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	entry, exists := s.components[e]
	if !exists {
		s.mu.Unlock()
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
	hooks := s.onRemove
	s.mu.Unlock()

	// Hooks run unlocked so they may touch this store
	for _, hook := range hooks {
		hook(e, entry.value)
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components without running hooks
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]*storeEntry[T])
	s.entities = make([]core.Entity, 0, 64)
}

// OnRemove registers a hook called after a component is removed
func (s *Store[T]) OnRemove(fn func(core.Entity, T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRemove = append(s.onRemove, fn)
}

// AddedSince returns entities whose component was inserted after since
func (s *Store[T]) AddedSince(since Tick) []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []core.Entity
	for _, e := range s.entities {
		if s.components[e].added.IsNewerThan(since) {
			result = append(result, e)
		}
	}
	return result
}

// ChangedSince returns entities whose component was written after since
// Insertion counts as a write
func (s *Store[T]) ChangedSince(since Tick) []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []core.Entity
	for _, e := range s.entities {
		if s.components[e].changed.IsNewerThan(since) {
			result = append(result, e)
		}
	}
	return result
}

// ChangedTick returns the tick of the last write to e's component
func (s *Store[T]) ChangedTick(e core.Entity) (Tick, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.components[e]; ok {
		return entry.changed, true
	}
	return 0, false
}
