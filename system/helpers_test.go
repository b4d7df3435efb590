package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
)

// newInteractWorld creates a test world with the overlay registered
func newInteractWorld(t *testing.T) (*engine.World, *InteractMesh) {
	t.Helper()
	w := engine.NewTestWorld(t)
	return w, RegisterInteractMesh(w)
}

type meshOpts struct {
	editable bool
	display  bool
}

// spawnMesh creates a mesh entity with the requested markers
func spawnMesh(w *engine.World, positions []mgl32.Vec2, opts meshOpts) core.Entity {
	c := w.Components
	e := w.CreateEntity()
	indices := make([]uint32, 0, len(positions))
	for i := range positions {
		indices = append(indices, uint32(i))
	}
	c.Mesh.Set(e, component.NewMeshComponent(positions, indices))
	if opts.editable {
		c.Editable.Set(e, component.EditableComponent{})
	}
	if opts.display {
		c.Display.Set(e, component.DisplayComponent{})
	}
	return e
}

// handlesOf maps vertex id to handle entity
func handlesOf(t *testing.T, w *engine.World, mesh core.Entity) map[uint32]core.Entity {
	t.Helper()
	c := w.Components
	children, ok := c.Children.Get(mesh)
	if !ok {
		return map[uint32]core.Entity{}
	}
	result := make(map[uint32]core.Entity, len(children.Entities))
	for _, h := range children.Entities {
		v, ok := c.VertexHandle.Get(h)
		require.True(t, ok, "child %d is not a vertex handle", h)
		_, dup := result[v.VertexID]
		require.False(t, dup, "duplicate handle for vertex %d", v.VertexID)
		result[v.VertexID] = h
	}
	return result
}

// dragHandle stands in for the external gizmo: one transform write
func dragHandle(w *engine.World, h core.Entity, ground mgl32.Vec2, height float32) bool {
	return w.Components.Transform.Mutate(h, func(tr *component.TransformComponent) {
		tr.Translation = mgl32.Vec3{ground.X(), height, ground.Y()}
	})
}

func meshPositions(t *testing.T, w *engine.World, e core.Entity) []mgl32.Vec2 {
	t.Helper()
	m, ok := w.Components.Mesh.Get(e)
	require.True(t, ok)
	out := make([]mgl32.Vec2, len(m.Positions))
	copy(out, m.Positions)
	return out
}

func bufferPositions(t *testing.T, w *engine.World, e core.Entity) []mgl32.Vec3 {
	t.Helper()
	d, ok := w.Components.Display.Get(e)
	require.True(t, ok)
	require.True(t, d.Built)

	lib := engine.MustGetResource[*asset.Library](w.Resources)
	var out []mgl32.Vec3
	require.True(t, lib.Meshes.View(d.Buffer, func(rm *asset.RenderMesh) {
		out = make([]mgl32.Vec3, len(rm.Positions))
		copy(out, rm.Positions)
	}))
	return out
}

var triangle = []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}
