package engine

import (
	"sort"

	"github.com/lixenwraith/vi-mesh/core"
)

// QueryBuilder intersects component stores, optionally seeded with a candidate set
// Unseeded queries start from the smallest store
type QueryBuilder struct {
	world   *World
	stores  []QueryableStore
	seed    []core.Entity
	seeded  bool
	done    bool
	results []core.Entity
}

// Query starts a query over the world's stores
//
//	changed := world.Query().
//	    From(world.Components.Transform.ChangedSince(since)).
//	    With(world.Components.VertexHandle).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

func (qb *QueryBuilder) mustBeOpen() {
	if qb.done {
		panic("query modified after Execute")
	}
}

// With requires entities to carry a component of store
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	qb.mustBeOpen()
	qb.stores = append(qb.stores, store)
	return qb
}

// From restricts results to candidates, keeping their order
// Typically fed by AddedSince or ChangedSince
func (qb *QueryBuilder) From(candidates []core.Entity) *QueryBuilder {
	qb.mustBeOpen()
	qb.seed = candidates
	qb.seeded = true
	return qb
}

// Execute returns the matching entities; later calls return the same slice
// An empty query matches nothing
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.done {
		return qb.results
	}
	qb.done = true

	if len(qb.stores) == 0 && !qb.seeded {
		qb.results = []core.Entity{}
		return qb.results
	}

	var matches []core.Entity
	rest := qb.stores
	if qb.seeded {
		matches = append([]core.Entity(nil), qb.seed...)
	} else {
		sort.Slice(rest, func(i, j int) bool { return rest[i].Count() < rest[j].Count() })
		matches = rest[0].All()
		rest = rest[1:]
	}

	for _, store := range rest {
		kept := matches[:0]
		for _, e := range matches {
			if store.Has(e) {
				kept = append(kept, e)
			}
		}
		matches = kept
		if len(matches) == 0 {
			break
		}
	}

	qb.results = matches
	if qb.results == nil {
		qb.results = []core.Entity{}
	}
	return qb.results
}
