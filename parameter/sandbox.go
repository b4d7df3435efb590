package parameter

import "time"

// Sandbox defaults
const (
	SandboxFPS          = 30
	SandboxFrameTime    = time.Second / SandboxFPS
	SandboxDragStep     = 0.25 // World units per arrow key press
	SandboxPickRadius   = 0.75 // World units
	SandboxCellsPerUnit = 4.0  // Terminal rows per world unit at zoom 1
	SandboxZoomStep     = 1.25
	SandboxLogDir       = "logs"
	SandboxLogFile      = "vi-mesh.log"
)
