// Package gizmo is the drag facility driving vertex handles.
//
// It stands in for an interactive transform gizmo: a handle is picked, then
// each drag call writes the handle's local transform exactly once. The
// mesh-editing systems only read the resulting transform.
package gizmo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/vmath"
)

var (
	// ErrNoPickSource is returned when no camera carries a gizmo pick source
	ErrNoPickSource = errors.New("no gizmo pick source")

	// ErrNotTransformable is returned for entities the gizmo may not drag
	ErrNotTransformable = errors.New("entity is not gizmo transformable")
)

// Gizmo tracks the selected entity and applies drags to it
type Gizmo struct {
	world    *engine.World
	selected core.Entity
}

// New creates a gizmo bound to a world
func New(world *engine.World) *Gizmo {
	return &Gizmo{world: world}
}

// Ready reports whether a camera can drive the gizmo
func (g *Gizmo) Ready() bool {
	return g.world.Components.GizmoPickSource.Count() > 0
}

// Pick selects e for dragging
func (g *Gizmo) Pick(e core.Entity) error {
	if !g.Ready() {
		return ErrNoPickSource
	}
	c := g.world.Components
	if !c.Pickable.Has(e) || !c.GizmoTransformable.Has(e) || !c.Transform.Has(e) {
		return fmt.Errorf("pick entity %d: %w", e, ErrNotTransformable)
	}
	g.selected = e
	return nil
}

// Selected returns the current selection, if it is still alive
func (g *Gizmo) Selected() (core.Entity, bool) {
	if !g.selected.Valid() {
		return core.NoEntity, false
	}
	if !g.world.Components.Transform.Has(g.selected) {
		g.selected = core.NoEntity
		return core.NoEntity, false
	}
	return g.selected, true
}

// Deselect clears the selection
func (g *Gizmo) Deselect() {
	g.selected = core.NoEntity
}

// PickNearest selects the pickable entity closest to a ground point
// Only candidates within radius are considered
func (g *Gizmo) PickNearest(ground mgl32.Vec2, radius float32) (core.Entity, error) {
	if !g.Ready() {
		return core.NoEntity, ErrNoPickSource
	}
	c := g.world.Components
	candidates := g.world.Query().
		With(c.Pickable).
		With(c.GizmoTransformable).
		With(c.Transform).
		Execute()

	best := core.NoEntity
	bestDist := math32.Inf(1)
	for _, e := range candidates {
		p := vmath.WorldToGround(g.world.GlobalTranslation(e))
		d := p.Sub(ground).Len()
		if d <= radius && (d < bestDist || (d == bestDist && e < best)) {
			best, bestDist = e, d
		}
	}
	if !best.Valid() {
		return core.NoEntity, nil
	}
	g.selected = best
	return best, nil
}

// Cycle moves the selection to the next pickable entity in id order
// Wraps around; returns false when nothing is pickable
func (g *Gizmo) Cycle(step int) (core.Entity, bool) {
	c := g.world.Components
	candidates := g.world.Query().
		With(c.Pickable).
		With(c.GizmoTransformable).
		Execute()
	if len(candidates) == 0 || !g.Ready() {
		return core.NoEntity, false
	}
	slices.Sort(candidates)

	idx := -1
	for i, e := range candidates {
		if e == g.selected {
			idx = i
			break
		}
	}
	n := len(candidates)
	switch {
	case idx < 0 && step < 0:
		idx = n - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+step)%n + n) % n
	}
	g.selected = candidates[idx]
	return g.selected, true
}

// DragTo moves the selection so its world position lands on target
// The parent's transform is inverted so the write stays in local space
func (g *Gizmo) DragTo(target mgl32.Vec3) bool {
	e, ok := g.Selected()
	if !ok {
		return false
	}
	local := target
	if parent, ok := g.world.Components.Parent.Get(e); ok {
		inv := g.world.GlobalTransform(parent.Entity).Inv()
		local = inv.Mul4x1(target.Vec4(1)).Vec3()
	}
	return g.world.Components.Transform.Mutate(e, func(t *component.TransformComponent) {
		t.Translation = local
	})
}

// DragGround moves the selection to a ground point, keeping its height
func (g *Gizmo) DragGround(ground mgl32.Vec2) bool {
	e, ok := g.Selected()
	if !ok {
		return false
	}
	current := g.world.GlobalTranslation(e)
	target := vmath.GroundToWorld(ground)
	target[1] = current.Y()
	return g.DragTo(target)
}

// Nudge offsets the selection's local translation
func (g *Gizmo) Nudge(delta mgl32.Vec3) bool {
	e, ok := g.Selected()
	if !ok {
		return false
	}
	return g.world.Components.Transform.Mutate(e, func(t *component.TransformComponent) {
		t.Translation = t.Translation.Add(delta)
	})
}
