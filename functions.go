package retsu

import (
	"reflect"
	"slices"
)

// Get returns a copy of the component of type `T` held by the given entity.
//
// It reports false if T was never registered, the entity is unknown, or the
// entity's archetype does not include T.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the component.
//
// Returns:
//   - The component value and true, or the zero value and false.
func Get[T any](t *Table, e Entity) (T, bool) {
	if p := GetMut[T](t, e); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut retrieves a pointer to the component of type `T` for the given
// entity, or nil if the entity does not hold one. The pointer stays valid for
// the lifetime of the table. Writing through it requires exclusive access to
// the table.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the component.
//
// Returns:
//   - A pointer to the component data (*T), or nil if not found.
func GetMut[T any](t *Table, e Entity) *T {
	id, slot, ok := t.slotOf(reflect.TypeFor[T](), e)
	if !ok {
		return nil
	}
	return valueAt[T](t.columns[id], slot)
}

// Has reports whether the entity's archetype includes `T`.
func Has[T any](t *Table, e Entity) bool {
	_, _, ok := t.slotOf(reflect.TypeFor[T](), e)
	return ok
}

// Insert sets the component of type `T` on an existing entity.
//
// If the entity already holds a T, the value is overwritten in place.
// Otherwise the entity moves to the archetype extended by T: its other values
// keep their slots, one new slot is pushed for v, and the entity becomes
// visible to every view matching the new archetype. Moving an entity requires
// that no iteration is in flight.
//
// Parameters:
//   - t: The Table where the entity resides.
//   - e: The Entity to modify.
//   - v: The component data of type `T` to set.
//
// Returns:
//   - false if the entity is unknown, true otherwise.
func Insert[T any](t *Table, e Entity, v T) bool {
	if !t.Contains(e) {
		return false
	}
	id := t.registry.RegisterColumn(reflect.TypeFor[T]())
	if slot, ok := t.slot(e, id); ok {
		*valueAt[T](t.columns[id], slot) = v
		return true
	}
	rec := &t.entities[e]
	from := rec.row
	to := t.registry.ExtendRow(from, id)
	dst := t.registry.Row(to)
	slots := make([]int, dst.Len())
	for i, c := range t.registry.Row(from).columns {
		pos, _ := dst.Position(c)
		slots[pos] = rec.slots[i]
	}
	pos, _ := dst.Position(id)
	slots[pos] = pushValue(t.columns[id], v)
	t.moveEntity(e, from, to)
	rec.row = to
	rec.slots = slots
	return true
}

// slotOf resolves the column of typ and e's slot in it. Unregistered types
// are not registered.
func (t *Table) slotOf(typ reflect.Type, e Entity) (ColumnID, int, bool) {
	id, ok := t.registry.ColumnByType(typ)
	if !ok {
		return 0, -1, false
	}
	slot, ok := t.slot(e, id)
	return id, slot, ok
}

// moveEntity transfers e between the entity lists of two rows, keeping both
// lists in ascending order.
func (t *Table) moveEntity(e Entity, from, to RowID) {
	src := t.rowEntities[from]
	if i, ok := slices.BinarySearch(src, e); ok {
		t.rowEntities[from] = slices.Delete(src, i, i+1)
	}
	dst := t.rowEntities[to]
	i, _ := slices.BinarySearch(dst, e)
	t.rowEntities[to] = slices.Insert(dst, i, e)
}
