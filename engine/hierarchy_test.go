package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
)

func TestHierarchy_DestroyCascades(t *testing.T) {
	w := NewTestWorld(t)
	c := w.Components

	root := w.CreateEntity()
	c.Mesh.Set(root, component.MeshComponent{})

	child := w.SpawnChild(root)
	c.Transform.Set(child, component.NewTransform(mgl32.Vec3{}))
	grandchild := w.SpawnChild(child)
	c.Transform.Set(grandchild, component.NewTransform(mgl32.Vec3{}))

	w.DestroyEntity(root)

	for _, e := range []core.Entity{root, child, grandchild} {
		assert.False(t, w.Alive(e), "entity %d survived", e)
	}
}

func TestHierarchy_DestroyChildDetachesFromParent(t *testing.T) {
	w := NewTestWorld(t)
	c := w.Components

	root := w.CreateEntity()
	a := w.SpawnChild(root)
	b := w.SpawnChild(root)

	w.DestroyEntity(a)

	children, ok := c.Children.Get(root)
	require.True(t, ok)
	assert.Equal(t, []core.Entity{b}, children.Entities)
	assert.True(t, w.Alive(root))
}

func TestHierarchy_GlobalTranslation(t *testing.T) {
	w := NewTestWorld(t)
	c := w.Components

	root := w.CreateEntity()
	c.Transform.Set(root, component.NewTransform(mgl32.Vec3{10, 0, 20}))
	child := w.SpawnChild(root)
	c.Transform.Set(child, component.NewTransform(mgl32.Vec3{1, 0, 2}))

	assert.Equal(t, mgl32.Vec3{11, 0, 22}, w.GlobalTranslation(child))

	// Parent without transform contributes identity
	bare := w.CreateEntity()
	c.Mesh.Set(bare, component.MeshComponent{})
	orphan := w.SpawnChild(bare)
	c.Transform.Set(orphan, component.NewTransform(mgl32.Vec3{3, 0, 4}))
	assert.Equal(t, mgl32.Vec3{3, 0, 4}, w.GlobalTranslation(orphan))
}
