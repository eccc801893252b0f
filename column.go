package retsu

import (
	"fmt"
	"reflect"
	"unsafe"
)

// This file is the only place where column memory is reinterpreted. Every
// typed access below is reached either through a Token[T], which the registry
// mints together with the column it authorizes, or through a cursor that
// checks the column's reflect.Type against T.

// column holds every value of one component type, in ChunkSize blocks. A
// chunk is never reallocated, so a slot's address is stable once pushed.
type column struct {
	typ    reflect.Type
	chunks []unsafe.Pointer
	size   uintptr // stride between slots
	len    int
	id     ColumnID
}

// newColumn allocates empty storage for a registered column type.
func newColumn(ct *ColumnType) *column {
	return &column{
		typ:    ct.typ,
		size:   ct.sizePadded,
		chunks: make([]unsafe.Pointer, 0, 4),
		id:     ct.id,
	}
}

// push reserves the next slot and returns its index. The slot holds the zero
// value of the column's type.
func (c *column) push() int {
	slot := c.len
	if slot == len(c.chunks)*ChunkSize {
		chunk := reflect.MakeSlice(reflect.SliceOf(c.typ), ChunkSize, ChunkSize)
		c.chunks = append(c.chunks, chunk.UnsafePointer())
	}
	c.len++
	return slot
}

// at returns the address of a slot.
func (c *column) at(slot int) unsafe.Pointer {
	if uint(slot) >= uint(c.len) {
		panic(fmt.Sprintf("ecs: slot %d out of range for %s (len %d)", slot, c.typ, c.len))
	}
	return unsafe.Add(c.chunks[slot/ChunkSize], uintptr(slot%ChunkSize)*c.size)
}

// checkType panics unless the column stores values of type T.
func checkType[T any](c *column) {
	if t := reflect.TypeFor[T](); t != c.typ {
		panic(fmt.Sprintf("ecs: %s stores %s, not %s", c.id, c.typ, t))
	}
}

// pushValue appends v and returns its slot. The caller guarantees that the
// column stores values of type T.
func pushValue[T any](c *column, v T) int {
	slot := c.push()
	*(*T)(c.at(slot)) = v
	return slot
}

// valueAt returns a typed pointer to a slot. The caller guarantees that the
// column stores values of type T.
func valueAt[T any](c *column, slot int) *T {
	return (*T)(c.at(slot))
}

// Token certifies that its holder may access the column storing values of
// type T. Tokens are obtained only from Register, which resolves the column
// from T itself, so a token can never authorize a column of another type.
type Token[T any] struct {
	registry *Registry
	id       ColumnID
}

// Register returns the capability token for component type T, registering T
// with the registry on first use.
func Register[T any](r *Registry) Token[T] {
	return Token[T]{registry: r, id: r.RegisterColumn(reflect.TypeFor[T]())}
}

// ID returns the column the token authorizes.
func (k Token[T]) ID() ColumnID {
	return k.id
}

// Get returns a copy of e's value of type T. It reports false if e is unknown
// or its archetype does not include T.
func (k Token[T]) Get(t *Table, e Entity) (T, bool) {
	if p := k.GetMut(t, e); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to e's value of type T, or nil if e is unknown or
// its archetype does not include T. The pointer stays valid for the lifetime
// of the table; writing through it requires exclusive access to the table.
func (k Token[T]) GetMut(t *Table, e Entity) *T {
	if k.registry != t.registry {
		panic("ecs: token used with a table it was not issued for")
	}
	slot, ok := t.slot(e, k.id)
	if !ok {
		return nil
	}
	return valueAt[T](t.columns[k.id], slot)
}

// Has reports whether e's archetype includes T.
func (k Token[T]) Has(t *Table, e Entity) bool {
	if k.registry != t.registry {
		panic("ecs: token used with a table it was not issued for")
	}
	_, ok := t.slot(e, k.id)
	return ok
}
