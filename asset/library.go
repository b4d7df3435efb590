package asset

// Library is the rendering/asset subsystem's storage
// One instance per world, registered as a resource
type Library struct {
	Meshes    *Assets[RenderMesh]
	Materials *Assets[Material]
}

// NewLibrary creates empty mesh and material stores
func NewLibrary() *Library {
	return &Library{
		Meshes:    NewAssets[RenderMesh](),
		Materials: NewAssets[Material](),
	}
}

// InteractAssets holds the shared handles used by the mesh-editing overlay
type InteractAssets struct {
	GizmoMesh      Handle
	GizmoMaterial  Handle
	VisualMaterial Handle
}
