package asset

import "github.com/go-gl/mathgl/mgl32"

// Material describes surface appearance for a render mesh
type Material struct {
	BaseColor mgl32.Vec4
}

// NewColorMaterial creates an opaque material from linear RGB
func NewColorMaterial(r, g, b float32) Material {
	return Material{BaseColor: mgl32.Vec4{r, g, b, 1}}
}

// RGB8 returns the base color quantized to 8-bit channels
func (m Material) RGB8() (r, g, b int32) {
	q := func(c float32) int32 {
		c = mgl32.Clamp(c, 0, 1)
		return int32(c*255 + 0.5)
	}
	return q(m.BaseColor.X()), q(m.BaseColor.Y()), q(m.BaseColor.Z())
}
