// Package render draws render buffers and vertex handles onto a terminal screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mesh/asset"
	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/vmath"
)

// Surface is the subset of tcell.Screen the renderer draws to
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

const (
	edgeRune     = '·'
	vertexRune   = '+'
	handleRune   = 'o'
	selectedRune = '@'
)

// Renderer rasterizes every visible RenderComponent in the world
// Meshes are drawn first, then handles on top
type Renderer struct {
	world *engine.World
	res   engine.Resource

	Viewport Viewport
}

// NewRenderer creates a renderer for the world
func NewRenderer(world *engine.World, view Viewport) *Renderer {
	return &Renderer{
		world:    world,
		res:      engine.GetResourceStore(world),
		Viewport: view,
	}
}

// Draw clears the surface and renders the current frame
// selected is highlighted when it is a live handle; pass core.NoEntity for none
func (r *Renderer) Draw(s Surface, selected core.Entity) {
	s.Clear()
	width, height := s.Size()
	c := r.world.Components

	var handles []core.Entity
	for _, e := range c.Render.All() {
		rc, ok := c.Render.Get(e)
		if !ok || !rc.Visible {
			continue
		}
		if c.VertexHandle.Has(e) {
			handles = append(handles, e)
			continue
		}
		r.drawMesh(s, e, rc, width, height)
	}

	for _, e := range handles {
		rc, _ := c.Render.Get(e)
		ground := vmath.WorldToGround(r.world.GlobalTranslation(e))
		x, y := r.Viewport.Project(ground, width, height)
		glyph := handleRune
		if e == selected {
			glyph = selectedRune
		}
		s.SetContent(x, y, glyph, nil, r.style(rc.Material))
	}
}

func (r *Renderer) drawMesh(s Surface, e core.Entity, rc component.RenderComponent, width, height int) {
	model := r.world.GlobalTransform(e)
	style := r.style(rc.Material)

	var cells [][2]int
	r.res.Assets.Meshes.View(rc.Mesh, func(rm *asset.RenderMesh) {
		cells = make([][2]int, len(rm.Positions))
		for i, p := range rm.Positions {
			world := model.Mul4x1(p.Vec4(1)).Vec3()
			x, y := r.Viewport.Project(vmath.WorldToGround(world), width, height)
			cells[i] = [2]int{x, y}
		}
		for t := 0; t+2 < len(rm.Indices); t += 3 {
			a, b, cc := rm.Indices[t], rm.Indices[t+1], rm.Indices[t+2]
			if int(a) >= len(cells) || int(b) >= len(cells) || int(cc) >= len(cells) {
				continue
			}
			drawLine(s, cells[a], cells[b], width, height, style)
			drawLine(s, cells[b], cells[cc], width, height, style)
			drawLine(s, cells[cc], cells[a], width, height, style)
		}
	})

	for _, p := range cells {
		if inBounds(p[0], p[1], width, height) {
			s.SetContent(p[0], p[1], vertexRune, nil, style)
		}
	}
}

// style resolves the material color, falling back to the default style
func (r *Renderer) style(material asset.Handle) tcell.Style {
	style := tcell.StyleDefault
	r.res.Assets.Materials.View(material, func(m *asset.Material) {
		cr, cg, cb := m.RGB8()
		style = style.Foreground(tcell.NewRGBColor(cr, cg, cb))
	})
	return style
}

// drawLine traces a cell line via Bresenham, clipped to the surface
func drawLine(s Surface, from, to [2]int, width, height int, style tcell.Style) {
	x0, y0 := from[0], from[1]
	x1, y1 := to[0], to[1]

	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	for {
		if inBounds(x, y, width, height) {
			s.SetContent(x, y, edgeRune, nil, style)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

func inBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}
