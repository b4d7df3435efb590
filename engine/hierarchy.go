package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
)

// maxHierarchyDepth bounds parent walks against accidental cycles
const maxHierarchyDepth = 64

// AddChild links child under parent
// The child gets a weak ParentComponent, the parent owns the ChildrenComponent list
func (w *World) AddChild(parent, child core.Entity) {
	w.Components.Parent.Set(child, component.ParentComponent{Entity: parent})

	if !w.Components.Children.Mutate(parent, func(c *component.ChildrenComponent) {
		c.Entities = append(c.Entities, child)
	}) {
		w.Components.Children.Set(parent, component.ChildrenComponent{Entities: []core.Entity{child}})
	}
}

// SpawnChild creates an entity already linked under parent
func (w *World) SpawnChild(parent core.Entity) core.Entity {
	child := w.CreateEntity()
	w.AddChild(parent, child)
	return child
}

// DestroyEntity removes the entity, all its descendants and every component they hold
// The entity is detached from its parent's children list first
func (w *World) DestroyEntity(e core.Entity) {
	if parent, ok := w.Components.Parent.Get(e); ok {
		w.Components.Children.Mutate(parent.Entity, func(c *component.ChildrenComponent) {
			for i, child := range c.Entities {
				if child == e {
					c.Entities = append(c.Entities[:i], c.Entities[i+1:]...)
					break
				}
			}
		})
	}
	w.destroyRecursive(e, 0)
}

func (w *World) destroyRecursive(e core.Entity, depth int) {
	if depth < maxHierarchyDepth {
		if children, ok := w.Components.Children.Get(e); ok {
			// Copy: removal hooks may rewrite the list
			kids := make([]core.Entity, len(children.Entities))
			copy(kids, children.Entities)
			for _, child := range kids {
				w.destroyRecursive(child, depth+1)
			}
		}
	}
	w.removeFromAllStores(e)
}

// GlobalTransform composes transforms from the root down to e
// Entities without a TransformComponent contribute identity
func (w *World) GlobalTransform(e core.Entity) mgl32.Mat4 {
	m := mgl32.Ident4()
	current := e
	for depth := 0; depth < maxHierarchyDepth && current.Valid(); depth++ {
		if t, ok := w.Components.Transform.Get(current); ok {
			m = t.Matrix().Mul4(m)
		}
		parent, ok := w.Components.Parent.Get(current)
		if !ok {
			break
		}
		current = parent.Entity
	}
	return m
}

// GlobalTranslation returns the world-space origin of e
func (w *World) GlobalTranslation(e core.Entity) mgl32.Vec3 {
	return w.GlobalTransform(e).Col(3).Vec3()
}
