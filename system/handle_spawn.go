package system

import (
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
	"github.com/lixenwraith/vi-mesh/vmath"
)

// HandleSpawnSystem spawns one draggable child per vertex when a mesh becomes editable
// Fires once per entity, on the frame the editable marker appears
type HandleSpawnSystem struct {
	engine.SystemBase
}

// NewHandleSpawnSystem creates the handle spawner
func NewHandleSpawnSystem(world *engine.World) *HandleSpawnSystem {
	return &HandleSpawnSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *HandleSpawnSystem) Name() string {
	return "handle_spawn"
}

func (s *HandleSpawnSystem) Priority() int {
	return parameter.PriorityHandleSpawn
}

func (s *HandleSpawnSystem) Update(since engine.Tick) {
	c := s.Component
	log := s.Logger(s.Name())

	for _, e := range c.Editable.AddedSince(since) {
		mesh, ok := c.Mesh.Get(e)
		if !ok {
			log.Debug("editable without mesh, skipped", "entity", e)
			continue
		}

		// Marker re-added after removal: handles from the first insert are still live
		if s.hasHandles(e) {
			log.Debug("editable re-added, handles kept", "entity", e)
			continue
		}

		for i, p := range mesh.Positions {
			h := s.World.SpawnChild(e)
			c.VertexHandle.Set(h, component.VertexHandleComponent{VertexID: uint32(i)})
			c.Transform.Set(h, component.NewTransform(vmath.GroundToWorld(p)))
			c.Pickable.Set(h, component.PickableComponent{})
			c.GizmoTransformable.Set(h, component.GizmoTransformableComponent{})
			if ia := s.Resource.Interact; ia != nil {
				c.Render.Set(h, component.RenderComponent{
					Mesh:     ia.GizmoMesh,
					Material: ia.GizmoMaterial,
					Visible:  true,
				})
			}
		}
		log.Debug("handles spawned", "entity", e, "count", len(mesh.Positions))
	}
}

// hasHandles reports whether e already owns vertex handles
func (s *HandleSpawnSystem) hasHandles(e core.Entity) bool {
	children, ok := s.Component.Children.Get(e)
	if !ok {
		return false
	}
	for _, child := range children.Entities {
		if s.Component.VertexHandle.Has(child) {
			return true
		}
	}
	return false
}
