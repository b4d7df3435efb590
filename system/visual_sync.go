package system

import (
	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
	"github.com/lixenwraith/vi-mesh/vmath"
)

// VisualSyncSystem rewrites render buffer positions in place after the mesh changed
type VisualSyncSystem struct {
	engine.SystemBase
}

// NewVisualSyncSystem creates the mesh to render buffer reconciler
func NewVisualSyncSystem(world *engine.World) *VisualSyncSystem {
	return &VisualSyncSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *VisualSyncSystem) Name() string {
	return "visual_sync"
}

func (s *VisualSyncSystem) Priority() int {
	return parameter.PriorityVisualSync
}

func (s *VisualSyncSystem) Update(since engine.Tick) {
	c := s.Component
	log := s.Logger(s.Name())

	changed := s.World.Query().
		From(c.Mesh.ChangedSince(since)).
		With(c.Display).
		Execute()

	for _, e := range changed {
		display, _ := c.Display.Get(e)
		if !display.Built {
			// Spawner has not run for this entity yet
			continue
		}
		mesh, ok := c.Mesh.Get(e)
		if !ok {
			continue
		}

		aligned := true
		found := s.Resource.Assets.Meshes.Mutate(display.Buffer, func(rm *asset.RenderMesh) {
			aligned = core.Assert(len(rm.Positions) == len(mesh.Positions),
				"render buffer %s has %d vertices, mesh entity %d has %d",
				display.Buffer, len(rm.Positions), e, len(mesh.Positions))
			if !aligned {
				return
			}
			for i := range rm.Positions {
				rm.Positions[i] = vmath.GroundToWorld(mesh.Positions[i])
			}
		})

		switch {
		case !found:
			log.Debug("stale render buffer, skipped", "entity", e, "buffer", display.Buffer.String())
		case !aligned:
			log.Error("render buffer misaligned, skipped", "entity", e, "buffer", display.Buffer.String())
		}
	}
}
