package asset

import (
	"errors"
	"fmt"
	"sync"
)

// ErrStaleHandle is returned when a handle refers to a released or never-issued slot
var ErrStaleHandle = errors.New("stale asset handle")

// Handle references an asset slot
// The generation guards against reuse of a released slot
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether the handle was ever issued
// A valid handle may still be stale, check with Assets.Contains
func (h Handle) Valid() bool {
	return h.gen != 0
}

func (h Handle) String() string {
	if !h.Valid() {
		return "asset(nil)"
	}
	return fmt.Sprintf("asset(%d#%d)", h.index, h.gen)
}

type slot[T any] struct {
	gen   uint32
	live  bool
	value T
}

// Assets is a generational slot store for one asset type
// Values are mutated in place through Mutate; handles survive until Remove
type Assets[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []uint32
	count int
}

// NewAssets creates an empty asset store
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{
		slots: make([]slot[T], 0, 16),
	}
}

// Add stores value and returns its handle
func (a *Assets[T]) Add(value T) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	s.live = true
	s.value = value
	a.count++

	return Handle{index: idx, gen: s.gen}
}

// lookup returns the live slot for h, caller holds the lock
func (a *Assets[T]) lookup(h Handle) *slot[T] {
	if !h.Valid() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}

// Contains reports whether h refers to a live asset
func (a *Assets[T]) Contains(h Handle) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lookup(h) != nil
}

// View runs fn with read access to the asset
// Returns false if the handle is stale
func (a *Assets[T]) View(h Handle, fn func(*T)) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := a.lookup(h)
	if s == nil {
		return false
	}
	fn(&s.value)
	return true
}

// Mutate runs fn with write access to the asset
// Returns false if the handle is stale
func (a *Assets[T]) Mutate(h Handle, fn func(*T)) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.lookup(h)
	if s == nil {
		return false
	}
	fn(&s.value)
	return true
}

// Remove releases the asset, invalidating every copy of h
func (a *Assets[T]) Remove(h Handle) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.lookup(h)
	if s == nil {
		return fmt.Errorf("remove %s: %w", h, ErrStaleHandle)
	}

	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.count--
	return nil
}

// Len returns the number of live assets
func (a *Assets[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}
