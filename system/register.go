package system

import (
	"github.com/lixenwraith/vi-mesh/engine"
)

// InteractMesh groups the mesh-editing overlay systems registered on a world
type InteractMesh struct {
	CameraAdapter *CameraAdapterSystem
	HandleSpawn   *HandleSpawnSystem
	HandleSync    *HandleSyncSystem
	VisualSpawn   *VisualSpawnSystem
	VisualSync    *VisualSyncSystem
}

// RegisterInteractMesh initializes the overlay assets and adds its systems to the world
// Call once per world, before the first Update
func RegisterInteractMesh(w *engine.World) *InteractMesh {
	InitAssets(w)

	im := &InteractMesh{
		CameraAdapter: NewCameraAdapterSystem(w),
		HandleSpawn:   NewHandleSpawnSystem(w),
		HandleSync:    NewHandleSyncSystem(w),
		VisualSpawn:   NewVisualSpawnSystem(w),
		VisualSync:    NewVisualSyncSystem(w),
	}

	for _, s := range im.Systems() {
		w.AddSystem(s)
	}
	return im
}

// Systems lists the overlay systems in frame order
func (im *InteractMesh) Systems() []engine.System {
	return []engine.System{
		im.CameraAdapter,
		im.HandleSpawn,
		im.HandleSync,
		im.VisualSpawn,
		im.VisualSync,
	}
}
