package parameter

// System priorities, lower runs first
// Spawners precede the reconciler they feed; handle sync precedes visual sync
// so a drag reaches the render buffer in the same frame
const (
	PriorityCameraAdapter = 0  // Before everything, picking sources must exist for input
	PriorityHandleSpawn   = 10 // Creation boundary, before any reconciler
	PriorityHandleSync    = 20 // Handle transforms -> mesh
	PriorityVisualSpawn   = 30 // After handle sync, builds from the freshest mesh
	PriorityVisualSync    = 40 // Mesh -> render buffer
)
