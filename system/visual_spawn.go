package system

import (
	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
)

// VisualSpawnSystem builds the render buffer for a mesh the first time display is requested
type VisualSpawnSystem struct {
	engine.SystemBase
}

// NewVisualSpawnSystem creates the visual mesh spawner and installs the buffer release hook
func NewVisualSpawnSystem(world *engine.World) *VisualSpawnSystem {
	s := &VisualSpawnSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Component.Display.OnRemove(s.release)
	return s
}

func (s *VisualSpawnSystem) Name() string {
	return "visual_spawn"
}

func (s *VisualSpawnSystem) Priority() int {
	return parameter.PriorityVisualSpawn
}

func (s *VisualSpawnSystem) Update(since engine.Tick) {
	c := s.Component
	log := s.Logger(s.Name())

	for _, e := range c.Display.AddedSince(since) {
		display, ok := c.Display.Get(e)
		if !ok || display.Built {
			continue
		}

		// Missing mesh is a precondition violation, no retry
		mesh, ok := c.Mesh.Get(e)
		if !ok {
			log.Debug("display without mesh, skipped", "entity", e)
			continue
		}

		buffer := s.Resource.Assets.Meshes.Add(asset.FromGroundMesh(mesh.Positions, mesh.Indices))
		c.Display.Mutate(e, func(d *component.DisplayComponent) {
			d.Buffer = buffer
			d.Built = true
		})

		var material asset.Handle
		if ia := s.Resource.Interact; ia != nil {
			material = ia.VisualMaterial
		}
		c.Render.Set(e, component.RenderComponent{
			Mesh:     buffer,
			Material: material,
			Visible:  true,
		})
		log.Debug("render buffer built", "entity", e, "buffer", buffer.String(), "vertices", mesh.VertexCount())
	}
}

// release frees the render buffer when the display reference goes away
func (s *VisualSpawnSystem) release(e core.Entity, display component.DisplayComponent) {
	if !display.Built {
		return
	}
	if err := s.Resource.Assets.Meshes.Remove(display.Buffer); err != nil {
		s.Logger(s.Name()).Debug("render buffer already released", "entity", e, "error", err)
	}
}
