package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
)

// Spawned maps scene entries to world entities
type Spawned struct {
	Camera core.Entity
	Meshes []core.Entity // Aligned with Scene.Meshes
}

// Spawn creates the scene's entities in w
// Markers are attached in the same call so spawners fire on the next frame
func Spawn(w *engine.World, s *Scene) (*Spawned, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := w.Components
	out := &Spawned{Meshes: make([]core.Entity, 0, len(s.Meshes))}

	out.Camera = w.CreateEntity()
	c.Camera.Set(out.Camera, component.CameraComponent{})
	if s.Camera.Primary {
		c.PrimaryCamera.Set(out.Camera, component.PrimaryCameraComponent{})
	}

	for _, m := range s.Meshes {
		e := w.CreateEntity()

		positions := make([]mgl32.Vec2, len(m.Positions))
		for i, p := range m.Positions {
			positions[i] = mgl32.Vec2{p[0], p[1]}
		}
		c.Mesh.Set(e, component.NewMeshComponent(positions, m.Indices))
		c.Transform.Set(e, component.NewTransform(mgl32.Vec3(m.Translation)))

		if m.Editable {
			c.Editable.Set(e, component.EditableComponent{})
		}
		if m.Display {
			c.Display.Set(e, component.DisplayComponent{})
		}
		out.Meshes = append(out.Meshes, e)
	}
	return out, nil
}

// Capture copies current mesh positions from the world back into s
// Destroyed meshes keep their last saved positions
func Capture(w *engine.World, s *Scene, spawned *Spawned) {
	for i, e := range spawned.Meshes {
		if i >= len(s.Meshes) {
			return
		}
		m, ok := w.Components.Mesh.Get(e)
		if !ok {
			continue
		}
		positions := make([][2]float32, len(m.Positions))
		for j, p := range m.Positions {
			positions[j] = [2]float32{p.X(), p.Y()}
		}
		s.Meshes[i].Positions = positions
	}
}
