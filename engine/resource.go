package engine

import (
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/vi-mesh/asset"
)

// ResourceStore is a thread-safe container for global resources
// It allows systems to access shared data (Time, Log, Assets) without
// coupling to the caller that owns the world
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource, keyed by its dynamic type
// Pointers are recommended so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, Log) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// TimeResource wraps frame data for systems
// Updated by World.Update at the start of a frame
type TimeResource struct {
	// FrameNumber is the current frame count, starting at 1
	FrameNumber int64

	// DeltaTime is the duration since the previous frame
	DeltaTime time.Duration

	last time.Time
}

func (tr *TimeResource) advance(now time.Time) {
	if !tr.last.IsZero() {
		tr.DeltaTime = now.Sub(tr.last)
	}
	tr.last = now
	tr.FrameNumber++
}

// LogResource carries the structured logger shared by systems
type LogResource struct {
	Logger *slog.Logger
}

// discardLogger drops every record
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Resource provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type Resource struct {
	Time     *TimeResource
	Log      *LogResource
	Assets   *asset.Library
	Interact *asset.InteractAssets // nil until interaction assets are initialized
}

// GetResourceStore populates Resource from the world's resource store
// Call once during system construction; pointers remain valid for application lifetime
func GetResourceStore(w *World) Resource {
	res := Resource{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Log:    MustGetResource[*LogResource](w.Resources),
		Assets: MustGetResource[*asset.Library](w.Resources),
	}
	if ia, ok := GetResource[*asset.InteractAssets](w.Resources); ok {
		res.Interact = ia
	}
	return res
}
