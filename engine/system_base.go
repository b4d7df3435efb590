package engine

import "log/slog"

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetResourceStore(w),
		Component: w.Components,
	}
}

// Logger returns the world logger tagged with the system name
func (b SystemBase) Logger(system string) *slog.Logger {
	return b.Resource.Log.Logger.With("system", system)
}
