package asset

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/vmath"
)

// RenderMesh is the render-facing vertex buffer
// Positions are index-aligned with the source mesh vertices
type RenderMesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the buffer
func (m *RenderMesh) VertexCount() int {
	return len(m.Positions)
}

// FromGroundMesh builds a render buffer from ground-plane positions
// Heights are zero, normals face up, UVs reuse the ground coordinates
func FromGroundMesh(positions []mgl32.Vec2, indices []uint32) RenderMesh {
	m := RenderMesh{
		Positions: vmath.GroundToWorldSlice(nil, positions),
		Normals:   make([]mgl32.Vec3, len(positions)),
		UVs:       make([]mgl32.Vec2, len(positions)),
		Indices:   make([]uint32, len(indices)),
	}
	for i, p := range positions {
		m.Normals[i] = vmath.Up
		m.UVs[i] = p
	}
	copy(m.Indices, indices)
	return m
}

// cubeFaces lists each face as normal plus the two in-plane axes
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// NewCube builds an axis-aligned cube centered on the origin
// Four vertices per face so every face keeps a flat normal
func NewCube(size float32) RenderMesh {
	h := size / 2
	m := RenderMesh{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		UVs:       make([]mgl32.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}

	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := uint32(len(m.Positions))
		for _, c := range corners {
			p := n.Add(u.Mul(c.X())).Add(v.Mul(c.Y())).Mul(h)
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, n)
			m.UVs = append(m.UVs, mgl32.Vec2{(c.X() + 1) / 2, (c.Y() + 1) / 2})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
