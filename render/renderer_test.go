package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/system"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestViewport_ProjectRoundTrip(t *testing.T) {
	v := Viewport{Center: mgl32.Vec2{1, 2}, Zoom: 1}

	x, y := v.Project(v.Center, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	p := mgl32.Vec2{3, 0}
	x, y = v.Project(p, 80, 24)
	assert.Equal(t, 56, x)
	assert.Equal(t, 20, y)
	back := v.Unproject(x, y, 80, 24)
	assert.InDelta(t, p.X(), back.X(), 1e-5)
	assert.InDelta(t, p.Y(), back.Y(), 1e-5)
}

func TestViewport_ZoomClamp(t *testing.T) {
	v := Viewport{}
	v.ZoomBy(1000)
	assert.Equal(t, float32(16), v.Zoom)
	v.ZoomBy(0.00001)
	assert.InDelta(t, 0.1, v.Zoom, 1e-6)
}

func TestRenderer_DrawsMeshAndHandles(t *testing.T) {
	w := engine.NewTestWorld(t)
	system.RegisterInteractMesh(w)
	c := w.Components

	mesh := w.CreateEntity()
	c.Mesh.Set(mesh, component.NewMeshComponent(
		[]mgl32.Vec2{{0, 0}, {2, 0}, {0, 2}},
		[]uint32{0, 1, 2},
	))
	c.Editable.Set(mesh, component.EditableComponent{})
	c.Display.Set(mesh, component.DisplayComponent{})
	w.Update()

	children, ok := c.Children.Get(mesh)
	require.True(t, ok)
	require.Len(t, children.Entities, 3)

	screen := newScreen(t, 40, 20)
	view := Viewport{Center: mgl32.Vec2{1, 1}, Zoom: 1}
	r := NewRenderer(w, view)
	r.Draw(screen, children.Entities[1])

	// Handles overdraw mesh vertices
	x, y := view.Project(mgl32.Vec2{0, 0}, 40, 20)
	assert.Equal(t, handleRune, runeAt(screen, x, y))
	x, y = view.Project(mgl32.Vec2{2, 0}, 40, 20)
	assert.Equal(t, selectedRune, runeAt(screen, x, y))

	// Midpoint of the bottom edge
	x, y = view.Project(mgl32.Vec2{1, 0}, 40, 20)
	assert.Equal(t, edgeRune, runeAt(screen, x, y))
}

func TestRenderer_HiddenAndEmpty(t *testing.T) {
	w := engine.NewTestWorld(t)
	system.RegisterInteractMesh(w)
	c := w.Components

	mesh := w.CreateEntity()
	c.Mesh.Set(mesh, component.NewMeshComponent([]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}, []uint32{0, 1, 2}))
	c.Display.Set(mesh, component.DisplayComponent{})
	w.Update()

	c.Render.Mutate(mesh, func(rc *component.RenderComponent) { rc.Visible = false })

	screen := newScreen(t, 20, 10)
	NewRenderer(w, Viewport{Zoom: 1}).Draw(screen, core.NoEntity)

	screen.Show()
	cells, width, height := screen.GetContents()
	require.Equal(t, 20*10, width*height)
	for _, cell := range cells {
		if len(cell.Runes) > 0 {
			assert.Equal(t, ' ', cell.Runes[0])
		}
	}
}

func TestDrawLine_Clipped(t *testing.T) {
	screen := newScreen(t, 10, 5)
	drawLine(screen, [2]int{-5, 2}, [2]int{15, 2}, 10, 5, tcell.StyleDefault)
	for x := 0; x < 10; x++ {
		assert.Equal(t, edgeRune, runeAt(screen, x, 2))
	}
}
