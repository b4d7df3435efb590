package engine

import (
	"github.com/lixenwraith/vi-mesh/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per system to eliminate runtime map lookup
type ComponentStore struct {
	// Mesh data
	Mesh     *Store[component.MeshComponent]
	Editable *Store[component.EditableComponent]
	Display  *Store[component.DisplayComponent]

	// Hierarchy
	Parent   *Store[component.ParentComponent]
	Children *Store[component.ChildrenComponent]

	// Handles
	VertexHandle       *Store[component.VertexHandleComponent]
	Transform          *Store[component.TransformComponent]
	Render             *Store[component.RenderComponent]
	Pickable           *Store[component.PickableComponent]
	GizmoTransformable *Store[component.GizmoTransformableComponent]

	// Camera
	Camera          *Store[component.CameraComponent]
	PrimaryCamera   *Store[component.PrimaryCameraComponent]
	PickSource      *Store[component.PickSourceComponent]
	GizmoPickSource *Store[component.GizmoPickSourceComponent]
}

// GetComponentStore populates ComponentStore from world
// Call once during system construction; pointer remain valid for application lifetime
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Mesh:     GetStore[component.MeshComponent](w),
		Editable: GetStore[component.EditableComponent](w),
		Display:  GetStore[component.DisplayComponent](w),

		Parent:   GetStore[component.ParentComponent](w),
		Children: GetStore[component.ChildrenComponent](w),

		VertexHandle:       GetStore[component.VertexHandleComponent](w),
		Transform:          GetStore[component.TransformComponent](w),
		Render:             GetStore[component.RenderComponent](w),
		Pickable:           GetStore[component.PickableComponent](w),
		GizmoTransformable: GetStore[component.GizmoTransformableComponent](w),

		Camera:          GetStore[component.CameraComponent](w),
		PrimaryCamera:   GetStore[component.PrimaryCameraComponent](w),
		PickSource:      GetStore[component.PickSourceComponent](w),
		GizmoPickSource: GetStore[component.GizmoPickSourceComponent](w),
	}
}
