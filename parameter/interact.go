package parameter

// Interaction asset tunables
const (
	GizmoCubeSize = 1.0
)

// Linear RGB material colors
var (
	GizmoColor      = [3]float32{0.99, 0.2, 0.3}
	VisualMeshColor = [3]float32{0.3, 0.99, 0.2}
)
