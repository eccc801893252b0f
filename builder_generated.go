package retsu

// Builder2 is a compiled insert plan for entities with the 2 components:
// T1, T2.
type Builder2[T1 any, T2 any] struct {
	plan insertPlan
}

// NewBuilder2 compiles a builder for entities holding T1, T2. It panics if
// the same type appears twice.
//
// Parameters:
//   - t: The Table to spawn into.
//
// Returns:
//   - A pointer to the newly created `Builder2`.
func NewBuilder2[T1 any, T2 any](t *Table) *Builder2[T1, T2] {
	return &Builder2[T1, T2]{plan: compileInsert(t, func(b *InsertBuilder) {
		Declare[T1](b)
		Declare[T2](b)
	})}
}

// New is a convenience method that compiles a builder for the same component
// types against another table, equivalent to calling `NewBuilder2`.
func (b *Builder2[T1, T2]) New(t *Table) *Builder2[T1, T2] {
	return NewBuilder2[T1, T2](t)
}

// Row returns the archetype of entities spawned by the builder.
func (b *Builder2[T1, T2]) Row() RowID {
	return b.plan.row
}

// NewEntity spawns one entity holding the given values.
func (b *Builder2[T1, T2]) NewEntity(v1 T1, v2 T2) Entity {
	p := &b.plan
	slots := make([]int, 2)
	slots[p.positions[0]] = pushValue(p.columns[0], v1)
	slots[p.positions[1]] = pushValue(p.columns[1], v2)
	return p.table.pushEntity(p.row, slots)
}

// NewEntities spawns count entities holding zero values.
func (b *Builder2[T1, T2]) NewEntities(count int) {
	var v1 T1
	var v2 T2
	b.NewEntitiesWithValueSet(count, v1, v2)
}

// NewEntitiesWithValueSet spawns count entities, each holding copies of the
// given values.
func (b *Builder2[T1, T2]) NewEntitiesWithValueSet(count int, v1 T1, v2 T2) {
	if count <= 0 {
		return
	}
	p := &b.plan
	slab := p.reserve(count)
	for i := range count {
		slots := slab[i*2 : i*2+2 : i*2+2]
		slots[p.positions[0]] = pushValue(p.columns[0], v1)
		slots[p.positions[1]] = pushValue(p.columns[1], v2)
		p.table.pushEntity(p.row, slots)
	}
}

// Builder3 is a compiled insert plan for entities with the 3 components:
// T1, T2, T3.
type Builder3[T1 any, T2 any, T3 any] struct {
	plan insertPlan
}

// NewBuilder3 compiles a builder for entities holding T1, T2, T3. It panics if
// the same type appears twice.
//
// Parameters:
//   - t: The Table to spawn into.
//
// Returns:
//   - A pointer to the newly created `Builder3`.
func NewBuilder3[T1 any, T2 any, T3 any](t *Table) *Builder3[T1, T2, T3] {
	return &Builder3[T1, T2, T3]{plan: compileInsert(t, func(b *InsertBuilder) {
		Declare[T1](b)
		Declare[T2](b)
		Declare[T3](b)
	})}
}

// New is a convenience method that compiles a builder for the same component
// types against another table, equivalent to calling `NewBuilder3`.
func (b *Builder3[T1, T2, T3]) New(t *Table) *Builder3[T1, T2, T3] {
	return NewBuilder3[T1, T2, T3](t)
}

// Row returns the archetype of entities spawned by the builder.
func (b *Builder3[T1, T2, T3]) Row() RowID {
	return b.plan.row
}

// NewEntity spawns one entity holding the given values.
func (b *Builder3[T1, T2, T3]) NewEntity(v1 T1, v2 T2, v3 T3) Entity {
	p := &b.plan
	slots := make([]int, 3)
	slots[p.positions[0]] = pushValue(p.columns[0], v1)
	slots[p.positions[1]] = pushValue(p.columns[1], v2)
	slots[p.positions[2]] = pushValue(p.columns[2], v3)
	return p.table.pushEntity(p.row, slots)
}

// NewEntities spawns count entities holding zero values.
func (b *Builder3[T1, T2, T3]) NewEntities(count int) {
	var v1 T1
	var v2 T2
	var v3 T3
	b.NewEntitiesWithValueSet(count, v1, v2, v3)
}

// NewEntitiesWithValueSet spawns count entities, each holding copies of the
// given values.
func (b *Builder3[T1, T2, T3]) NewEntitiesWithValueSet(count int, v1 T1, v2 T2, v3 T3) {
	if count <= 0 {
		return
	}
	p := &b.plan
	slab := p.reserve(count)
	for i := range count {
		slots := slab[i*3 : i*3+3 : i*3+3]
		slots[p.positions[0]] = pushValue(p.columns[0], v1)
		slots[p.positions[1]] = pushValue(p.columns[1], v2)
		slots[p.positions[2]] = pushValue(p.columns[2], v3)
		p.table.pushEntity(p.row, slots)
	}
}

// Builder4 is a compiled insert plan for entities with the 4 components:
// T1, T2, T3, T4.
type Builder4[T1 any, T2 any, T3 any, T4 any] struct {
	plan insertPlan
}

// NewBuilder4 compiles a builder for entities holding T1, T2, T3, T4. It panics if
// the same type appears twice.
//
// Parameters:
//   - t: The Table to spawn into.
//
// Returns:
//   - A pointer to the newly created `Builder4`.
func NewBuilder4[T1 any, T2 any, T3 any, T4 any](t *Table) *Builder4[T1, T2, T3, T4] {
	return &Builder4[T1, T2, T3, T4]{plan: compileInsert(t, func(b *InsertBuilder) {
		Declare[T1](b)
		Declare[T2](b)
		Declare[T3](b)
		Declare[T4](b)
	})}
}

// New is a convenience method that compiles a builder for the same component
// types against another table, equivalent to calling `NewBuilder4`.
func (b *Builder4[T1, T2, T3, T4]) New(t *Table) *Builder4[T1, T2, T3, T4] {
	return NewBuilder4[T1, T2, T3, T4](t)
}

// Row returns the archetype of entities spawned by the builder.
func (b *Builder4[T1, T2, T3, T4]) Row() RowID {
	return b.plan.row
}

// NewEntity spawns one entity holding the given values.
func (b *Builder4[T1, T2, T3, T4]) NewEntity(v1 T1, v2 T2, v3 T3, v4 T4) Entity {
	p := &b.plan
	slots := make([]int, 4)
	slots[p.positions[0]] = pushValue(p.columns[0], v1)
	slots[p.positions[1]] = pushValue(p.columns[1], v2)
	slots[p.positions[2]] = pushValue(p.columns[2], v3)
	slots[p.positions[3]] = pushValue(p.columns[3], v4)
	return p.table.pushEntity(p.row, slots)
}

// NewEntities spawns count entities holding zero values.
func (b *Builder4[T1, T2, T3, T4]) NewEntities(count int) {
	var v1 T1
	var v2 T2
	var v3 T3
	var v4 T4
	b.NewEntitiesWithValueSet(count, v1, v2, v3, v4)
}

// NewEntitiesWithValueSet spawns count entities, each holding copies of the
// given values.
func (b *Builder4[T1, T2, T3, T4]) NewEntitiesWithValueSet(count int, v1 T1, v2 T2, v3 T3, v4 T4) {
	if count <= 0 {
		return
	}
	p := &b.plan
	slab := p.reserve(count)
	for i := range count {
		slots := slab[i*4 : i*4+4 : i*4+4]
		slots[p.positions[0]] = pushValue(p.columns[0], v1)
		slots[p.positions[1]] = pushValue(p.columns[1], v2)
		slots[p.positions[2]] = pushValue(p.columns[2], v3)
		slots[p.positions[3]] = pushValue(p.columns[3], v4)
		p.table.pushEntity(p.row, slots)
	}
}

// Builder5 is a compiled insert plan for entities with the 5 components:
// T1, T2, T3, T4, T5.
type Builder5[T1 any, T2 any, T3 any, T4 any, T5 any] struct {
	plan insertPlan
}

// NewBuilder5 compiles a builder for entities holding T1, T2, T3, T4, T5. It panics if
// the same type appears twice.
//
// Parameters:
//   - t: The Table to spawn into.
//
// Returns:
//   - A pointer to the newly created `Builder5`.
func NewBuilder5[T1 any, T2 any, T3 any, T4 any, T5 any](t *Table) *Builder5[T1, T2, T3, T4, T5] {
	return &Builder5[T1, T2, T3, T4, T5]{plan: compileInsert(t, func(b *InsertBuilder) {
		Declare[T1](b)
		Declare[T2](b)
		Declare[T3](b)
		Declare[T4](b)
		Declare[T5](b)
	})}
}

// New is a convenience method that compiles a builder for the same component
// types against another table, equivalent to calling `NewBuilder5`.
func (b *Builder5[T1, T2, T3, T4, T5]) New(t *Table) *Builder5[T1, T2, T3, T4, T5] {
	return NewBuilder5[T1, T2, T3, T4, T5](t)
}

// Row returns the archetype of entities spawned by the builder.
func (b *Builder5[T1, T2, T3, T4, T5]) Row() RowID {
	return b.plan.row
}

// NewEntity spawns one entity holding the given values.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntity(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Entity {
	p := &b.plan
	slots := make([]int, 5)
	slots[p.positions[0]] = pushValue(p.columns[0], v1)
	slots[p.positions[1]] = pushValue(p.columns[1], v2)
	slots[p.positions[2]] = pushValue(p.columns[2], v3)
	slots[p.positions[3]] = pushValue(p.columns[3], v4)
	slots[p.positions[4]] = pushValue(p.columns[4], v5)
	return p.table.pushEntity(p.row, slots)
}

// NewEntities spawns count entities holding zero values.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntities(count int) {
	var v1 T1
	var v2 T2
	var v3 T3
	var v4 T4
	var v5 T5
	b.NewEntitiesWithValueSet(count, v1, v2, v3, v4, v5)
}

// NewEntitiesWithValueSet spawns count entities, each holding copies of the
// given values.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntitiesWithValueSet(count int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) {
	if count <= 0 {
		return
	}
	p := &b.plan
	slab := p.reserve(count)
	for i := range count {
		slots := slab[i*5 : i*5+5 : i*5+5]
		slots[p.positions[0]] = pushValue(p.columns[0], v1)
		slots[p.positions[1]] = pushValue(p.columns[1], v2)
		slots[p.positions[2]] = pushValue(p.columns[2], v3)
		slots[p.positions[3]] = pushValue(p.columns[3], v4)
		slots[p.positions[4]] = pushValue(p.columns[4], v5)
		p.table.pushEntity(p.row, slots)
	}
}
