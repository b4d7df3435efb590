package system

import (
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
	"github.com/lixenwraith/vi-mesh/vmath"
)

// HandleSyncSystem writes moved handle positions back into the parent mesh
type HandleSyncSystem struct {
	engine.SystemBase
}

// NewHandleSyncSystem creates the handle to mesh reconciler
func NewHandleSyncSystem(world *engine.World) *HandleSyncSystem {
	return &HandleSyncSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *HandleSyncSystem) Name() string {
	return "handle_sync"
}

func (s *HandleSyncSystem) Priority() int {
	return parameter.PriorityHandleSync
}

func (s *HandleSyncSystem) Update(since engine.Tick) {
	c := s.Component
	log := s.Logger(s.Name())

	moved := s.World.Query().
		From(c.Transform.ChangedSince(since)).
		With(c.VertexHandle).
		With(c.Parent).
		Execute()

	for _, h := range moved {
		vertex, _ := c.VertexHandle.Get(h)
		parent, _ := c.Parent.Get(h)
		transform, ok := c.Transform.Get(h)
		if !ok {
			continue
		}

		mesh, ok := c.Mesh.Get(parent.Entity)
		if !ok {
			// Parent gone mid-frame, drop silently
			log.Debug("orphaned handle, update dropped", "entity", h, "parent", parent.Entity)
			continue
		}
		if int(vertex.VertexID) >= mesh.VertexCount() {
			log.Warn("handle vertex out of range", "entity", h, "parent", parent.Entity, "vertex", vertex.VertexID)
			continue
		}

		ground := vmath.WorldToGround(transform.Translation)
		c.Mesh.Mutate(parent.Entity, func(m *component.MeshComponent) {
			m.Positions[vertex.VertexID] = ground
		})
	}
}
