package retsu

import "reflect"

// GetMut2 retrieves pointers to the 2 components of type
// (T1, T2) for the given entity.
//
// If the entity is unknown or its archetype lacks any of the requested
// components, every pointer is nil. It panics if the same type appears twice.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the components.
//
// Returns:
//   - Pointers to the component data (*T1, *T2), or nils if not found.
func GetMut2[T1 any, T2 any](t *Table, e Entity) (*T1, *T2) {
	id1, s1, ok1 := t.slotOf(reflect.TypeFor[T1](), e)
	id2, s2, ok2 := t.slotOf(reflect.TypeFor[T2](), e)
	if !(ok1 && ok2) {
		return nil, nil
	}
	if id1 == id2 {
		panic("ecs: duplicate component types in GetMut2")
	}
	return valueAt[T1](t.columns[id1], s1),
		valueAt[T2](t.columns[id2], s2)
}

// GetMut3 retrieves pointers to the 3 components of type
// (T1, T2, T3) for the given entity.
//
// If the entity is unknown or its archetype lacks any of the requested
// components, every pointer is nil. It panics if the same type appears twice.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the components.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3), or nils if not found.
func GetMut3[T1 any, T2 any, T3 any](t *Table, e Entity) (*T1, *T2, *T3) {
	id1, s1, ok1 := t.slotOf(reflect.TypeFor[T1](), e)
	id2, s2, ok2 := t.slotOf(reflect.TypeFor[T2](), e)
	id3, s3, ok3 := t.slotOf(reflect.TypeFor[T3](), e)
	if !(ok1 && ok2 && ok3) {
		return nil, nil, nil
	}
	if id1 == id2 || id1 == id3 || id2 == id3 {
		panic("ecs: duplicate component types in GetMut3")
	}
	return valueAt[T1](t.columns[id1], s1),
		valueAt[T2](t.columns[id2], s2),
		valueAt[T3](t.columns[id3], s3)
}

// GetMut4 retrieves pointers to the 4 components of type
// (T1, T2, T3, T4) for the given entity.
//
// If the entity is unknown or its archetype lacks any of the requested
// components, every pointer is nil. It panics if the same type appears twice.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the components.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3, *T4), or nils if not found.
func GetMut4[T1 any, T2 any, T3 any, T4 any](t *Table, e Entity) (*T1, *T2, *T3, *T4) {
	id1, s1, ok1 := t.slotOf(reflect.TypeFor[T1](), e)
	id2, s2, ok2 := t.slotOf(reflect.TypeFor[T2](), e)
	id3, s3, ok3 := t.slotOf(reflect.TypeFor[T3](), e)
	id4, s4, ok4 := t.slotOf(reflect.TypeFor[T4](), e)
	if !(ok1 && ok2 && ok3 && ok4) {
		return nil, nil, nil, nil
	}
	if id1 == id2 || id1 == id3 || id1 == id4 || id2 == id3 || id2 == id4 || id3 == id4 {
		panic("ecs: duplicate component types in GetMut4")
	}
	return valueAt[T1](t.columns[id1], s1),
		valueAt[T2](t.columns[id2], s2),
		valueAt[T3](t.columns[id3], s3),
		valueAt[T4](t.columns[id4], s4)
}

// GetMut5 retrieves pointers to the 5 components of type
// (T1, T2, T3, T4, T5) for the given entity.
//
// If the entity is unknown or its archetype lacks any of the requested
// components, every pointer is nil. It panics if the same type appears twice.
//
// Parameters:
//   - t: The Table containing the entity.
//   - e: The Entity from which to retrieve the components.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3, *T4, *T5), or nils if not found.
func GetMut5[T1 any, T2 any, T3 any, T4 any, T5 any](t *Table, e Entity) (*T1, *T2, *T3, *T4, *T5) {
	id1, s1, ok1 := t.slotOf(reflect.TypeFor[T1](), e)
	id2, s2, ok2 := t.slotOf(reflect.TypeFor[T2](), e)
	id3, s3, ok3 := t.slotOf(reflect.TypeFor[T3](), e)
	id4, s4, ok4 := t.slotOf(reflect.TypeFor[T4](), e)
	id5, s5, ok5 := t.slotOf(reflect.TypeFor[T5](), e)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return nil, nil, nil, nil, nil
	}
	if id1 == id2 || id1 == id3 || id1 == id4 || id1 == id5 || id2 == id3 || id2 == id4 || id2 == id5 || id3 == id4 || id3 == id5 || id4 == id5 {
		panic("ecs: duplicate component types in GetMut5")
	}
	return valueAt[T1](t.columns[id1], s1),
		valueAt[T2](t.columns[id2], s2),
		valueAt[T3](t.columns[id3], s3),
		valueAt[T4](t.columns[id4], s4),
		valueAt[T5](t.columns[id5], s5)
}
