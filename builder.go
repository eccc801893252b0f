package retsu

// Builder is a compiled insert plan for entities with exactly one component of
// type T. Builders for several components (Builder2..Builder5) follow the
// same pattern.
type Builder[T any] struct {
	plan insertPlan
}

// NewBuilder compiles a builder for entities holding a T.
//
// Parameters:
//   - t: The Table to spawn into.
//
// Returns:
//   - A pointer to the newly created `Builder[T]`.
func NewBuilder[T any](t *Table) *Builder[T] {
	return &Builder[T]{plan: compileInsert(t, Declare[T])}
}

// New is a convenience method that compiles a builder for the same component
// type against another table.
func (b *Builder[T]) New(t *Table) *Builder[T] {
	return NewBuilder[T](t)
}

// Row returns the archetype of entities spawned by the builder.
func (b *Builder[T]) Row() RowID {
	return b.plan.row
}

// NewEntity spawns one entity holding v.
func (b *Builder[T]) NewEntity(v T) Entity {
	slots := make([]int, 1)
	slots[b.plan.positions[0]] = pushValue(b.plan.columns[0], v)
	return b.plan.table.pushEntity(b.plan.row, slots)
}

// NewEntities spawns count entities holding the zero value of T.
func (b *Builder[T]) NewEntities(count int) {
	var zero T
	b.NewEntitiesWithValueSet(count, zero)
}

// NewEntitiesWithValueSet spawns count entities, each holding a copy of v.
func (b *Builder[T]) NewEntitiesWithValueSet(count int, v T) {
	if count <= 0 {
		return
	}
	p := &b.plan
	slab := p.reserve(count)
	for i := range count {
		slots := slab[i : i+1 : i+1]
		slots[p.positions[0]] = pushValue(p.columns[0], v)
		p.table.pushEntity(p.row, slots)
	}
}
