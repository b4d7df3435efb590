package engine

import (
	"cmp"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	tick         atomic.Uint64

	// Global ResourceStore
	Resources *ResourceStore

	// Typed stores for the components this module defines
	Components ComponentStore

	storeMu   sync.Mutex
	stores    map[reflect.Type]AnyStore
	allStores []QueryableStore

	systems     []*systemSlot
	updateMutex sync.Mutex
	clock       func() time.Time
}

// NewWorld creates a new ECS world with the core resources registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
		systems:      make([]*systemSlot, 0),
		clock:        time.Now,
	}
	w.tick.Store(1)

	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, &LogResource{Logger: discardLogger()})
	AddResource(w.Resources, asset.NewLibrary())

	w.Components = GetComponentStore(w)
	return w
}

// GetStore returns the world's store for T, creating it on first use
func GetStore[T any](w *World) *Store[T] {
	w.storeMu.Lock()
	defer w.storeMu.Unlock()

	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T](w)
	w.stores[t] = s
	w.allStores = append(w.allStores, s)
	return s
}

// CurrentTick returns the tick stamped on writes made now
func (w *World) CurrentTick() Tick {
	return Tick(w.tick.Load())
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Alive reports whether the entity holds at least one component
func (w *World) Alive(e core.Entity) bool {
	w.storeMu.Lock()
	stores := w.allStores
	w.storeMu.Unlock()

	for _, s := range stores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// removeFromAllStores strips every component of e
func (w *World) removeFromAllStores(e core.Entity) {
	w.storeMu.Lock()
	stores := slices.Clone(w.allStores)
	w.storeMu.Unlock()

	for _, s := range stores {
		s.Remove(e)
	}
}

// Clear removes all entities and components from the world
// Components are removed per entity so OnRemove hooks release their assets;
// ticks keep counting, so system watermarks stay valid for new entities
func (w *World) Clear() {
	w.storeMu.Lock()
	stores := slices.Clone(w.allStores)
	w.storeMu.Unlock()

	for _, s := range stores {
		for _, e := range s.All() {
			w.removeFromAllStores(e)
		}
	}
	for _, s := range stores {
		s.Clear()
	}

	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()
}

// AddSystem adds a system to the world and sorts by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, &systemSlot{system: system})

	slices.SortStableFunc(w.systems, func(a, b *systemSlot) int {
		return cmp.Compare(a.system.Priority(), b.system.Priority())
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	for i, slot := range w.systems {
		result[i] = slot.system
	}
	return result
}

// RunSafe executes a function while holding the world's update lock
// External writers (input, gizmo) use it to stay off a running frame
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs one frame: all systems sequentially in priority order
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	w.mu.RLock()
	slots := make([]*systemSlot, len(w.systems))
	copy(slots, w.systems)
	w.mu.RUnlock()

	MustGetResource[*TimeResource](w.Resources).advance(w.clock())

	for _, slot := range slots {
		// Fresh tick per run: writes made inside the system are newer than
		// every earlier watermark but not newer than its own
		run := Tick(w.tick.Add(1))
		slot.system.Update(slot.lastRun)
		slot.lastRun = run
		// Writes between runs (external input) land after this watermark
		w.tick.Add(1)
	}
}
