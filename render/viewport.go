package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/parameter"
)

// Viewport is a top-down orthographic view of the ground plane
// Terminal cells are roughly twice as tall as wide, so one row spans two columns
type Viewport struct {
	Center mgl32.Vec2
	Zoom   float32
}

// scale returns rows per world unit
func (v Viewport) scale() float32 {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return parameter.SandboxCellsPerUnit * zoom
}

// Project maps a ground point to a screen cell
// Ground +Y points up the screen
func (v Viewport) Project(p mgl32.Vec2, width, height int) (x, y int) {
	s := v.scale()
	d := p.Sub(v.Center)
	x = width/2 + int(math32.Round(d.X()*s*2))
	y = height/2 - int(math32.Round(d.Y()*s))
	return x, y
}

// Unproject maps a screen cell back to the ground point at its origin
func (v Viewport) Unproject(x, y, width, height int) mgl32.Vec2 {
	s := v.scale()
	return mgl32.Vec2{
		v.Center.X() + float32(x-width/2)/(s*2),
		v.Center.Y() - float32(y-height/2)/s,
	}
}

// Pan moves the center by a number of cells
func (v *Viewport) Pan(dx, dy int) {
	s := v.scale()
	v.Center = v.Center.Add(mgl32.Vec2{float32(dx) / (s * 2), -float32(dy) / s})
}

// ZoomBy multiplies zoom by factor, clamped to a sane range
func (v *Viewport) ZoomBy(factor float32) {
	if v.Zoom <= 0 {
		v.Zoom = 1
	}
	v.Zoom = math32.Min(math32.Max(v.Zoom*factor, 0.1), 16)
}
