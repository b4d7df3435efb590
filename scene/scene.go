// Package scene loads and saves mesh scene descriptions.
//
// A scene lists ground-plane meshes with their editing markers plus the
// camera. TOML and YAML encodings are supported, chosen by file extension.
package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than toml/yaml/yml
	ErrUnsupportedFormat = errors.New("unsupported scene format")

	// ErrInvalidMesh is returned when a mesh description fails validation
	ErrInvalidMesh = errors.New("invalid mesh")
)

// Scene is the on-disk description of a world
type Scene struct {
	Camera Camera `toml:"camera" yaml:"camera"`
	Meshes []Mesh `toml:"mesh" yaml:"meshes"`
}

// Camera describes the viewing camera
type Camera struct {
	Primary bool       `toml:"primary" yaml:"primary"`
	Center  [2]float32 `toml:"center" yaml:"center"`
	Zoom    float32    `toml:"zoom,omitempty" yaml:"zoom,omitempty"`
}

// Mesh describes one triangle mesh on the ground plane
type Mesh struct {
	Name        string       `toml:"name" yaml:"name"`
	Positions   [][2]float32 `toml:"positions" yaml:"positions"`
	Indices     []uint32     `toml:"indices" yaml:"indices"`
	Translation [3]float32   `toml:"translation,omitempty" yaml:"translation,omitempty"`
	Editable    bool         `toml:"editable" yaml:"editable"`
	Display     bool         `toml:"display" yaml:"display"`
}

// Validate checks triangle list shape and index bounds
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: %d indices is not a triangle list: %w", m.Name, len(m.Indices), ErrInvalidMesh)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("mesh %q: index %d at %d exceeds %d vertices: %w", m.Name, idx, i, len(m.Positions), ErrInvalidMesh)
		}
	}
	return nil
}

// Validate checks every mesh in the scene
func (s *Scene) Validate() error {
	for i := range s.Meshes {
		if err := s.Meshes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a built-in editable grid with a display-only triangle beside it
func Default() *Scene {
	const n = 4
	grid := Mesh{
		Name:     "grid",
		Editable: true,
		Display:  true,
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			grid.Positions = append(grid.Positions, [2]float32{float32(col) * 2, float32(row) * 2})
		}
	}
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			i := uint32(row*n + col)
			grid.Indices = append(grid.Indices, i, i+1, i+n, i+1, i+n+1, i+n)
		}
	}

	marker := Mesh{
		Name:        "marker",
		Positions:   [][2]float32{{0, 0}, {1.5, 0}, {0.75, 1.5}},
		Indices:     []uint32{0, 1, 2},
		Translation: [3]float32{8, 0, 0},
		Display:     true,
	}

	return &Scene{
		Camera: Camera{Primary: true, Center: [2]float32{5, 3}, Zoom: 1},
		Meshes: []Mesh{grid, marker},
	}
}
