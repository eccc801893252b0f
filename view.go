package retsu

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Access is the way a query uses a column.
type Access uint8

const (
	// AccessRead marks a column that is only read.
	AccessRead Access = iota
	// AccessWrite marks a column that may be written.
	AccessWrite
)

func (a Access) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// ColumnAccess pairs a requested column with its access mode. A scheduler can
// compare the accesses of two queries to decide whether they may run
// together.
type ColumnAccess struct {
	Column ColumnID
	Access Access
}

// ViewBuilder collects the columns of a query shape while a plan is
// compiled.
type ViewBuilder struct {
	table   *Table
	columns []ColumnID
	access  []Access
}

// Ref appends a read-only request for component type T.
func Ref[T any](b *ViewBuilder) {
	b.add(reflect.TypeFor[T](), AccessRead)
}

// Mut appends a read-write request for component type T.
func Mut[T any](b *ViewBuilder) {
	b.add(reflect.TypeFor[T](), AccessWrite)
}

func (b *ViewBuilder) add(t reflect.Type, a Access) {
	b.columns = append(b.columns, b.table.registry.RegisterColumn(t))
	b.access = append(b.access, a)
}

// viewPlan is the compiled form of a query shape.
type viewPlan struct {
	table     *Table
	columns   []*column // in declared order
	access    []ColumnAccess
	positions []int // declared element -> position in the view
	view      ViewID
}

// compileView runs declare against a fresh builder and resolves the view. It
// panics if a component type is requested twice.
func compileView(t *Table, declare func(*ViewBuilder)) viewPlan {
	b := ViewBuilder{table: t}
	declare(&b)
	view := t.registry.RegisterView(b.columns)
	vt := t.registry.View(view)
	if vt.Len() != len(b.columns) {
		panic(fmt.Sprintf("ecs: duplicate component types in view %v", b.columns))
	}
	p := viewPlan{
		table:     t,
		view:      view,
		columns:   make([]*column, len(b.columns)),
		access:    make([]ColumnAccess, len(b.columns)),
		positions: make([]int, len(b.columns)),
	}
	for i, c := range b.columns {
		p.positions[i], _ = vt.Position(c)
		p.columns[i] = t.columns[c]
		p.access[i] = ColumnAccess{Column: c, Access: b.access[i]}
	}
	return p
}

// ID returns the view type the plan reads.
func (p *viewPlan) ID() ViewID {
	return p.view
}

// Access returns the requested columns and their access modes, in declared
// order.
func (p *viewPlan) Access() []ColumnAccess {
	return slices.Clone(p.access)
}

// Count returns the number of entities the plan currently matches.
func (p *viewPlan) Count() int {
	reg := p.table.registry
	n := 0
	for _, id := range reg.views[p.view].viewRows {
		n += len(p.table.rowEntities[reg.viewRows[id].row])
	}
	return n
}

// Entities returns every matching entity in iteration order. The returned
// slice is freshly allocated.
func (p *viewPlan) Entities() []Entity {
	out := make([]Entity, 0, p.Count())
	it := newViewIter(*p)
	for it.next() {
		out = append(out, it.cur)
	}
	return out
}

// viewIter walks the rows matched by a plan, then the entities of each row.
// View rows are read from the registry as the walk proceeds, so rows linked
// after the plan was compiled are visited too.
type viewIter struct {
	viewPlan
	rowPos   []int    // declared element -> position in the current row
	entities []Entity // entities of the current row
	next0    int      // next view row to enter
	idx      int      // index into entities
	cur      Entity
}

func newViewIter(p viewPlan) viewIter {
	return viewIter{viewPlan: p, rowPos: make([]int, len(p.columns)), idx: -1}
}

// Reset rewinds the iteration to the first matching entity. Rows linked since
// the plan was compiled are included.
func (it *viewIter) Reset() {
	it.next0 = 0
	it.entities = nil
	it.idx = -1
}

// Next advances to the next matching entity. It returns false when the
// iteration is complete. It must be called before reading the entity or its
// components.
func (it *viewIter) Next() bool {
	return it.next()
}

// Entity returns the current entity. It should only be called after Next
// returned true.
func (it *viewIter) Entity() Entity {
	return it.cur
}

func (it *viewIter) next() bool {
	it.idx++
	for it.idx >= len(it.entities) {
		reg := it.table.registry
		viewRows := reg.views[it.view].viewRows
		if it.next0 >= len(viewRows) {
			it.entities = nil
			it.idx = -1
			return false
		}
		vr := reg.viewRows[viewRows[it.next0]]
		it.next0++
		for i, p := range it.positions {
			it.rowPos[i] = vr.indexMap[p]
		}
		it.entities = it.table.rowEntities[vr.row]
		it.idx = 0
	}
	it.cur = it.entities[it.idx]
	return true
}

// slots returns the current entity's slots, in row order.
func (it *viewIter) slots() []int {
	return it.table.entities[it.cur].slots
}

// Queryable is implemented by query shapes. Declare requests the shape's
// columns in a fixed order with Ref or Mut, and Fetch reads them back through
// the cursor, with Deref, in that same order.
//
// Declare and Fetch are called on the zero value of the shape type and must
// not depend on the receiver.
//
// Example:
//
//	type Movers struct{}
//
//	type Mover struct {
//	    Pos *Position
//	    Vel *Velocity
//	}
//
//	func (Movers) Declare(b *retsu.ViewBuilder) {
//	    retsu.Mut[Position](b)
//	    retsu.Ref[Velocity](b)
//	}
//
//	func (Movers) Fetch(c *retsu.ViewCursor) Mover {
//	    return Mover{Pos: retsu.Deref[Position](c), Vel: retsu.Deref[Velocity](c)}
//	}
type Queryable[I any] interface {
	Declare(b *ViewBuilder)
	Fetch(c *ViewCursor) I
}

// ViewCursor exposes the current entity's values to Fetch.
type ViewCursor struct {
	it    *viewIter
	index int
}

// Entity returns the entity being fetched.
func (c *ViewCursor) Entity() Entity {
	return c.it.cur
}

// Deref returns a pointer to the next requested value of the current entity.
// Values must be dereferenced in the order the shape declared them; a type
// mismatch panics.
func Deref[T any](c *ViewCursor) *T {
	it := c.it
	i := c.index
	if i >= len(it.columns) {
		panic(fmt.Sprintf("ecs: view fetched more than %d declared values", len(it.columns)))
	}
	col := it.columns[i]
	checkType[T](col)
	c.index++
	return valueAt[T](col, it.slots()[it.rowPos[i]])
}

// View is a compiled, reusable read plan for the query shape Q yielding items
// of type I.
type View[Q Queryable[I], I any] struct {
	viewPlan
}

// NewView compiles the read plan for shape Q.
func NewView[Q Queryable[I], I any](t *Table) *View[Q, I] {
	var q Q
	return &View[Q, I]{viewPlan: compileView(t, q.Declare)}
}

// Iter returns the sequence of items of every matching entity: rows in the
// order they were linked to the view, entities in ascending order within a
// row. Each call starts a new walk that observes the table as it is then.
func (v *View[Q, I]) Iter() iter.Seq[I] {
	return func(yield func(I) bool) {
		var q Q
		it := newViewIter(v.viewPlan)
		c := ViewCursor{it: &it}
		for it.next() {
			c.index = 0
			if !yield(q.Fetch(&c)) {
				return
			}
		}
	}
}

// IterEntities is like Iter but also yields each item's entity.
func (v *View[Q, I]) IterEntities() iter.Seq2[Entity, I] {
	return func(yield func(Entity, I) bool) {
		var q Q
		it := newViewIter(v.viewPlan)
		c := ViewCursor{it: &it}
		for it.next() {
			c.index = 0
			if !yield(it.cur, q.Fetch(&c)) {
				return
			}
		}
	}
}

// Iterate returns the items of every entity matching shape Q, compiling the
// plan for Q on first use.
func Iterate[Q Queryable[I], I any](t *Table) iter.Seq[I] {
	v := cachedPlan(&t.plans, func() *View[Q, I] { return NewView[Q, I](t) })
	return v.Iter()
}

// Read is the query shape for a single read-only component.
type Read[T any] struct{}

// Declare implements Queryable.
func (Read[T]) Declare(b *ViewBuilder) { Ref[T](b) }

// Fetch implements Queryable.
func (Read[T]) Fetch(c *ViewCursor) *T { return Deref[T](c) }

// Write is the query shape for a single writable component.
type Write[T any] struct{}

// Declare implements Queryable.
func (Write[T]) Declare(b *ViewBuilder) { Mut[T](b) }

// Fetch implements Queryable.
func (Write[T]) Fetch(c *ViewCursor) *T { return Deref[T](c) }
