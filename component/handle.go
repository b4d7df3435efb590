package component

import "github.com/lixenwraith/vi-mesh/core"

// VertexHandleComponent marks a draggable child standing for one vertex
type VertexHandleComponent struct {
	VertexID uint32 // Immutable after spawn
}

// ParentComponent provides O(1) owner resolution from a child entity
// Weak: resolution goes through the stores and may fail
type ParentComponent struct {
	Entity core.Entity
}

// ChildrenComponent resides on the owner; children are destroyed with it
type ChildrenComponent struct {
	Entities []core.Entity
}
