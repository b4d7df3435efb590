package system

import (
	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
)

// InitAssets creates the shared gizmo cube and materials once per world
// Repeated calls return the already registered set
func InitAssets(w *engine.World) *asset.InteractAssets {
	if existing, ok := engine.GetResource[*asset.InteractAssets](w.Resources); ok {
		return existing
	}

	lib := engine.MustGetResource[*asset.Library](w.Resources)
	gc, vc := parameter.GizmoColor, parameter.VisualMeshColor

	ia := &asset.InteractAssets{
		GizmoMesh:      lib.Meshes.Add(asset.NewCube(parameter.GizmoCubeSize)),
		GizmoMaterial:  lib.Materials.Add(asset.NewColorMaterial(gc[0], gc[1], gc[2])),
		VisualMaterial: lib.Materials.Add(asset.NewColorMaterial(vc[0], vc[1], vc[2])),
	}
	engine.AddResource(w.Resources, ia)
	return ia
}
