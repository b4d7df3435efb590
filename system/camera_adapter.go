package system

import (
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
)

// CameraAdapterSystem gives a camera picking and gizmo sources when it becomes primary
type CameraAdapterSystem struct {
	engine.SystemBase
}

// NewCameraAdapterSystem creates the camera adapter
func NewCameraAdapterSystem(world *engine.World) *CameraAdapterSystem {
	return &CameraAdapterSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *CameraAdapterSystem) Name() string {
	return "camera_adapter"
}

func (s *CameraAdapterSystem) Priority() int {
	return parameter.PriorityCameraAdapter
}

func (s *CameraAdapterSystem) Update(since engine.Tick) {
	c := s.Component
	for _, e := range c.PrimaryCamera.AddedSince(since) {
		if !c.PickSource.Has(e) {
			c.PickSource.Set(e, component.PickSourceComponent{})
		}
		if !c.GizmoPickSource.Has(e) {
			c.GizmoPickSource.Set(e, component.GizmoPickSourceComponent{})
		}
		s.Logger(s.Name()).Debug("camera adapted", "entity", e)
	}
}
