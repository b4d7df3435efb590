package component

// PickableComponent makes an entity a hit-test target for the picking layer
type PickableComponent struct{}

// GizmoTransformableComponent lets the gizmo drag the entity's transform
type GizmoTransformableComponent struct{}

// CameraComponent marks a camera entity
type CameraComponent struct{}

// PrimaryCameraComponent marks the camera user input is resolved against
// Inserting it, on a new or an existing camera, attaches the pick sources
type PrimaryCameraComponent struct{}

// PickSourceComponent marks a camera as a picking ray source
type PickSourceComponent struct{}

// GizmoPickSourceComponent marks a camera as a gizmo interaction source
type GizmoPickSourceComponent struct{}
