package retsu

import (
	"fmt"
	"reflect"
	"slices"
)

// Insertable is implemented by bundle types that can be spawned as one
// entity. Declare lists the bundle's component types in a fixed order and
// Write puts the bundle's values through the cursor in that same order.
//
// Declare is called on the zero value of the bundle type and must not depend
// on the receiver.
//
// Example:
//
//	type Fish struct {
//	    Pos Position
//	    Vel Velocity
//	}
//
//	func (Fish) Declare(b *retsu.InsertBuilder) {
//	    retsu.Declare[Position](b)
//	    retsu.Declare[Velocity](b)
//	}
//
//	func (f Fish) Write(c *retsu.InsertCursor) {
//	    retsu.Put(c, f.Pos)
//	    retsu.Put(c, f.Vel)
//	}
type Insertable interface {
	Declare(b *InsertBuilder)
	Write(c *InsertCursor)
}

// InsertBuilder collects the columns of a bundle shape while a plan is
// compiled.
type InsertBuilder struct {
	table   *Table
	columns []ColumnID
}

// Declare appends component type T to the bundle shape being compiled.
func Declare[T any](b *InsertBuilder) {
	b.columns = append(b.columns, b.table.registry.RegisterColumn(reflect.TypeFor[T]()))
}

// insertPlan is the compiled form of a bundle shape.
type insertPlan struct {
	table     *Table
	columns   []*column // in declared order
	positions []int     // declared element -> position in the row
	row       RowID
}

// compileInsert runs declare against a fresh builder and resolves the target
// row. It panics if a component type is declared twice.
func compileInsert(t *Table, declare func(*InsertBuilder)) insertPlan {
	b := InsertBuilder{table: t}
	declare(&b)
	row := t.registry.RegisterRow(b.columns)
	rt := t.registry.Row(row)
	if rt.Len() != len(b.columns) {
		panic(fmt.Sprintf("ecs: duplicate component types in bundle %v", b.columns))
	}
	p := insertPlan{
		table:     t,
		row:       row,
		columns:   make([]*column, len(b.columns)),
		positions: make([]int, len(b.columns)),
	}
	for i, c := range b.columns {
		p.positions[i], _ = rt.Position(c)
		p.columns[i] = t.columns[c]
	}
	return p
}

// reserve grows the table's records for count more entities of the plan's
// row and returns a slot slab with room for all of them.
func (p *insertPlan) reserve(count int) []int {
	t := p.table
	t.entities = slices.Grow(t.entities, count)
	t.rowEntities[p.row] = slices.Grow(t.rowEntities[p.row], count)
	return make([]int, count*len(p.columns))
}

// InsertPlan is a compiled, reusable write plan for bundles of type B.
type InsertPlan[B Insertable] struct {
	plan insertPlan
}

// CompileInsert compiles the write plan for bundle type B. The plan can spawn
// any number of entities.
func CompileInsert[B Insertable](t *Table) *InsertPlan[B] {
	var zero B
	return &InsertPlan[B]{plan: compileInsert(t, zero.Declare)}
}

// Row returns the archetype every entity spawned by the plan belongs to.
func (p *InsertPlan[B]) Row() RowID {
	return p.plan.row
}

// Spawn writes b into the table as a new entity.
func (p *InsertPlan[B]) Spawn(b B) Entity {
	c := InsertCursor{plan: &p.plan, slots: make([]int, len(p.plan.columns))}
	b.Write(&c)
	return c.complete()
}

// Spawn writes b into the table as a new entity, compiling the plan for B on
// first use.
func Spawn[B Insertable](t *Table, b B) Entity {
	p := cachedPlan(&t.plans, func() *InsertPlan[B] { return CompileInsert[B](t) })
	return p.Spawn(b)
}

// InsertCursor walks a plan's columns while a bundle writes its values.
type InsertCursor struct {
	plan  *insertPlan
	slots []int
	index int
}

// Put writes the next value of the bundle. Values must be put in the order
// the bundle declared them; a type mismatch panics.
func Put[T any](c *InsertCursor, v T) {
	if c.index >= len(c.plan.columns) {
		panic(fmt.Sprintf("ecs: bundle wrote more than %d declared values", len(c.plan.columns)))
	}
	col := c.plan.columns[c.index]
	checkType[T](col)
	c.slots[c.plan.positions[c.index]] = pushValue(col, v)
	c.index++
}

// complete records the entity once every declared value was written.
func (c *InsertCursor) complete() Entity {
	if c.index != len(c.plan.columns) {
		panic(fmt.Sprintf("ecs: bundle wrote %d of %d declared values", c.index, len(c.plan.columns)))
	}
	return c.plan.table.pushEntity(c.plan.row, c.slots)
}
