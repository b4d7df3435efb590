package component

import "github.com/lixenwraith/vi-mesh/asset"

// DisplayComponent opts a mesh entity into a live render buffer
// Buffer is set once when the buffer is first built
type DisplayComponent struct {
	Buffer asset.Handle
	Built  bool
}

// RenderComponent attaches a render mesh and material to an entity
type RenderComponent struct {
	Mesh     asset.Handle
	Material asset.Handle
	Visible  bool
}
