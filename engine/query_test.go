package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-mesh/component"
	"github.com/lixenwraith/vi-mesh/core"
)

// TestQueryBuilder verifies store intersection
func TestQueryBuilder(t *testing.T) {
	w := NewTestWorld(t)
	c := w.Components

	e1 := w.CreateEntity()
	c.Mesh.Set(e1, component.MeshComponent{})
	c.Editable.Set(e1, component.EditableComponent{})

	e2 := w.CreateEntity()
	c.Mesh.Set(e2, component.MeshComponent{})

	e3 := w.CreateEntity()
	c.Editable.Set(e3, component.EditableComponent{})

	results := w.Query().
		With(c.Mesh).
		With(c.Editable).
		Execute()
	assert.Equal(t, []core.Entity{e1}, results)

	meshResults := w.Query().With(c.Mesh).Execute()
	assert.Len(t, meshResults, 2)

	assert.Empty(t, w.Query().Execute())
}

// TestQueryBuilder_From verifies candidate seeding keeps order and filters
func TestQueryBuilder_From(t *testing.T) {
	w := NewTestWorld(t)
	c := w.Components

	a, b, d := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
	c.VertexHandle.Set(a, component.VertexHandleComponent{})
	c.VertexHandle.Set(d, component.VertexHandleComponent{})

	results := w.Query().From([]core.Entity{d, b, a}).With(c.VertexHandle).Execute()
	assert.Equal(t, []core.Entity{d, a}, results)

	// Seed without filters passes through
	assert.Equal(t, []core.Entity{b}, w.Query().From([]core.Entity{b}).Execute())

	// Empty seed stays empty
	assert.Empty(t, w.Query().From(nil).With(c.VertexHandle).Execute())
}

// TestQueryBuilder_Panic verifies panic behavior
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewTestWorld(t)

	q := w.Query()
	q.Execute()
	assert.Panics(t, func() { q.With(w.Components.Mesh) })
	assert.Panics(t, func() { q.From(nil) })
}
