package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/gizmo"
	"github.com/lixenwraith/vi-mesh/parameter"
	"github.com/lixenwraith/vi-mesh/render"
	"github.com/lixenwraith/vi-mesh/scene"
	"github.com/lixenwraith/vi-mesh/system"
	"github.com/lixenwraith/vi-mesh/vmath"
)

// sandbox ties the world, gizmo and renderer to one terminal screen
type sandbox struct {
	world    *engine.World
	screen   tcell.Screen
	gizmo    *gizmo.Gizmo
	renderer *render.Renderer
	log      *slog.Logger

	scene    *scene.Scene
	spawned  *scene.Spawned
	savePath string

	dragging bool
	status   string
}

func newSandbox(world *engine.World, screen tcell.Screen, sc *scene.Scene, savePath string) (*sandbox, error) {
	system.RegisterInteractMesh(world)

	spawned, err := scene.Spawn(world, sc)
	if err != nil {
		return nil, err
	}

	screen.EnableMouse()
	view := render.Viewport{
		Center: mgl32.Vec2(sc.Camera.Center),
		Zoom:   sc.Camera.Zoom,
	}

	return &sandbox{
		world:    world,
		screen:   screen,
		gizmo:    gizmo.New(world),
		renderer: render.NewRenderer(world, view),
		log:      engine.MustGetResource[*engine.LogResource](world.Resources).Logger.With("component", "sandbox"),
		scene:    sc,
		spawned:  spawned,
		savePath: savePath,
		status:   "tab: cycle  arrows: nudge/pan  mouse: drag  +/-: zoom  x: delete  w: save  q: quit",
	}, nil
}

func (sb *sandbox) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	// First frame spawns handles and the camera pick source
	sb.frame()

	for {
		select {
		case ev := <-events:
			if !sb.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			sb.frame()
		}
	}
}

func (sb *sandbox) frame() {
	sb.world.Update()

	selected, _ := sb.gizmo.Selected()
	sb.renderer.Draw(sb.screen, selected)
	sb.drawStatus(selected)
	sb.screen.Show()
}

// handleEvent applies one input event; returns false to quit
func (sb *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return sb.handleKey(ev)
	case *tcell.EventMouse:
		sb.handleMouse(ev)
	case *tcell.EventResize:
		sb.screen.Sync()
	}
	return true
}

func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	step := float32(parameter.SandboxDragStep)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		sb.gizmo.Cycle(1)
	case tcell.KeyBacktab:
		sb.gizmo.Cycle(-1)
	case tcell.KeyUp:
		sb.move(0, step, 0, -1)
	case tcell.KeyDown:
		sb.move(0, -step, 0, 1)
	case tcell.KeyLeft:
		sb.move(-step, 0, -2, 0)
	case tcell.KeyRight:
		sb.move(step, 0, 2, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '+', '=':
			sb.renderer.Viewport.ZoomBy(parameter.SandboxZoomStep)
		case '-':
			sb.renderer.Viewport.ZoomBy(1 / parameter.SandboxZoomStep)
		case ' ':
			sb.gizmo.Deselect()
		case 'x':
			sb.deleteSelectedMesh()
		case 'w':
			sb.save()
		}
	}
	return true
}

// move nudges the selection by a ground delta, or pans by cells with nothing selected
func (sb *sandbox) move(gx, gy float32, cx, cy int) {
	if sb.gizmo.Nudge(vmath.GroundToWorld(mgl32.Vec2{gx, gy})) {
		return
	}
	sb.renderer.Viewport.Pan(cx, cy)
}

func (sb *sandbox) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		sb.dragging = false
		return
	}

	width, height := sb.screen.Size()
	x, y := ev.Position()
	ground := sb.renderer.Viewport.Unproject(x, y, width, height)

	if !sb.dragging {
		e, err := sb.gizmo.PickNearest(ground, parameter.SandboxPickRadius)
		if err != nil || !e.Valid() {
			sb.log.Debug("pick missed", "x", x, "y", y, "error", err)
			sb.gizmo.Deselect()
			return
		}
		sb.dragging = true
	}
	sb.gizmo.DragGround(ground)
}

func (sb *sandbox) deleteSelectedMesh() {
	selected, ok := sb.gizmo.Selected()
	if !ok {
		return
	}
	parent, ok := sb.world.Components.Parent.Get(selected)
	if !ok {
		return
	}
	// Capture first so a save keeps the deleted mesh's last shape
	scene.Capture(sb.world, sb.scene, sb.spawned)
	sb.world.DestroyEntity(parent.Entity)
	sb.gizmo.Deselect()
	sb.status = fmt.Sprintf("deleted mesh %d", parent.Entity)
}

func (sb *sandbox) save() {
	scene.Capture(sb.world, sb.scene, sb.spawned)
	if err := scene.Save(sb.savePath, sb.scene); err != nil {
		sb.log.Error("save failed", "path", sb.savePath, "error", err)
		sb.status = "save failed: " + err.Error()
		return
	}
	sb.status = "saved " + sb.savePath
}

func (sb *sandbox) drawStatus(selected core.Entity) {
	line := sb.status
	if selected.Valid() {
		if h, ok := sb.world.Components.VertexHandle.Get(selected); ok {
			p := vmath.WorldToGround(sb.world.GlobalTranslation(selected))
			line = fmt.Sprintf("vertex %d (%.2f, %.2f)  %s", h.VertexID, p.X(), p.Y(), line)
		}
	}

	width, _ := sb.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		sb.screen.SetContent(col, 0, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		sb.screen.SetContent(col, 0, ' ', nil, style)
	}
}
