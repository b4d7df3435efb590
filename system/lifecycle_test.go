package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/engine"
)

func TestLifecycle_DestroyRemovesHandlesAndBuffer(t *testing.T) {
	w, _ := newInteractWorld(t)
	c := w.Components
	mesh := spawnMesh(w, triangle, meshOpts{display: true, editable: true})
	w.Update()

	handles := handlesOf(t, w, mesh)
	require.Len(t, handles, 3)
	d, _ := c.Display.Get(mesh)
	lib := engine.MustGetResource[*asset.Library](w.Resources)
	require.True(t, lib.Meshes.Contains(d.Buffer))

	w.DestroyEntity(mesh)

	assert.False(t, w.Alive(mesh))
	for id, h := range handles {
		assert.False(t, w.Alive(h), "handle for vertex %d survived", id)
		assert.False(t, dragHandle(w, h, mgl32.Vec2{1, 1}, 0), "destroyed handle accepted a drag")
	}
	assert.False(t, lib.Meshes.Contains(d.Buffer), "render buffer not released")
	assert.Equal(t, 0, c.VertexHandle.Count())

	assert.NotPanics(t, func() {
		w.Update()
		w.Update()
	})
}

func TestLifecycle_DestroyOneOfTwoMeshes(t *testing.T) {
	w, _ := newInteractWorld(t)
	a := spawnMesh(w, triangle, meshOpts{display: true, editable: true})
	b := spawnMesh(w, triangle, meshOpts{display: true, editable: true})
	w.Update()

	hb := handlesOf(t, w, b)
	w.DestroyEntity(a)

	dragHandle(w, hb[0], mgl32.Vec2{3, 3}, 0)
	w.Update()

	assert.Equal(t, mgl32.Vec2{3, 3}, meshPositions(t, w, b)[0])
	assert.Equal(t, mgl32.Vec3{3, 0, 3}, bufferPositions(t, w, b)[0])
}

func TestLifecycle_ParentDestroyedMidFrame(t *testing.T) {
	w, _ := newInteractWorld(t)
	c := w.Components
	mesh := spawnMesh(w, triangle, meshOpts{editable: true})
	w.Update()

	h := handlesOf(t, w, mesh)[0]
	dragHandle(w, h, mgl32.Vec2{5, 5}, 0)
	// Only the mesh data vanishes; the handle keeps its stale back-reference
	c.Mesh.Remove(mesh)

	assert.NotPanics(t, func() { w.Update() })
	assert.True(t, c.VertexHandle.Has(h))
}

func TestLifecycle_ZeroVertexMesh(t *testing.T) {
	w, _ := newInteractWorld(t)
	mesh := spawnMesh(w, nil, meshOpts{display: true, editable: true})

	assert.NotPanics(t, func() { w.Update() })

	assert.Empty(t, handlesOf(t, w, mesh))
	assert.Empty(t, bufferPositions(t, w, mesh))

	w.Components.Mesh.Mutate(mesh, func(*component.MeshComponent) {})
	assert.NotPanics(t, func() { w.Update() })
}

func TestLifecycle_IndependentMarkers(t *testing.T) {
	w, _ := newInteractWorld(t)
	c := w.Components

	editOnly := spawnMesh(w, triangle, meshOpts{editable: true})
	displayOnly := spawnMesh(w, triangle, meshOpts{display: true})
	neither := spawnMesh(w, triangle, meshOpts{})
	w.Update()

	assert.Len(t, handlesOf(t, w, editOnly), 3)
	assert.False(t, c.Display.Has(editOnly))

	assert.Empty(t, handlesOf(t, w, displayOnly))
	assert.Len(t, bufferPositions(t, w, displayOnly), 3)

	assert.Empty(t, handlesOf(t, w, neither))
	assert.False(t, c.Render.Has(neither))
}

func TestLifecycle_ClearReleasesBuffers(t *testing.T) {
	w, _ := newInteractWorld(t)
	lib := engine.MustGetResource[*asset.Library](w.Resources)
	spawnMesh(w, triangle, meshOpts{display: true, editable: true})
	w.Update()
	shared := lib.Meshes.Len() - 1 // Gizmo cube stays

	w.Clear()
	assert.Equal(t, shared, lib.Meshes.Len())
	assert.Zero(t, w.Components.VertexHandle.Count())

	// Watermarks survive the reset, fresh entities are still spawned
	mesh := spawnMesh(w, triangle, meshOpts{display: true, editable: true})
	w.Update()
	assert.Len(t, handlesOf(t, w, mesh), 3)
	assert.Len(t, bufferPositions(t, w, mesh), 3)
}

func TestCameraAdapter(t *testing.T) {
	w, _ := newInteractWorld(t)
	c := w.Components

	primary := w.CreateEntity()
	c.Camera.Set(primary, component.CameraComponent{})
	c.PrimaryCamera.Set(primary, component.PrimaryCameraComponent{})
	secondary := w.CreateEntity()
	c.Camera.Set(secondary, component.CameraComponent{})

	w.Update()

	assert.True(t, c.PickSource.Has(primary))
	assert.True(t, c.GizmoPickSource.Has(primary))
	assert.False(t, c.PickSource.Has(secondary))
	assert.False(t, c.GizmoPickSource.Has(secondary))

	// Edge-triggered: a removed source is not re-added on later frames
	c.PickSource.Remove(primary)
	w.Update()
	assert.False(t, c.PickSource.Has(primary))
}

func TestCameraAdapter_PromotedCamera(t *testing.T) {
	w, _ := newInteractWorld(t)
	c := w.Components

	cam := w.CreateEntity()
	c.Camera.Set(cam, component.CameraComponent{})
	w.Update()
	require.False(t, c.GizmoPickSource.Has(cam))

	c.PrimaryCamera.Set(cam, component.PrimaryCameraComponent{})
	w.Update()

	assert.True(t, c.PickSource.Has(cam))
	assert.True(t, c.GizmoPickSource.Has(cam))
}

func TestRegisterInteractMesh_Order(t *testing.T) {
	w, im := newInteractWorld(t)
	assert.Equal(t, im.Systems(), w.Systems())

	// Asset init is idempotent
	ia := InitAssets(w)
	assert.Same(t, im.HandleSpawn.Resource.Interact, ia)
}
