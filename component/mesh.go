package component

import "github.com/go-gl/mathgl/mgl32"

// MeshComponent is the authoritative triangle mesh of an entity
// Positions are ground-plane (x, y) pairs; the vertex count never changes
// after creation, only the position values do
type MeshComponent struct {
	Positions []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices
func (m *MeshComponent) VertexCount() int {
	return len(m.Positions)
}

// NewMeshComponent copies positions and indices into a fresh component
func NewMeshComponent(positions []mgl32.Vec2, indices []uint32) MeshComponent {
	m := MeshComponent{
		Positions: make([]mgl32.Vec2, len(positions)),
		Indices:   make([]uint32, len(indices)),
	}
	copy(m.Positions, positions)
	copy(m.Indices, indices)
	return m
}

// EditableComponent opts a mesh entity into per-vertex drag handles
type EditableComponent struct{}
