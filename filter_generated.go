package retsu

import "iter"

// Filter2 provides a fast iterator over all entities that have the 2
// components: T1, T2.
type Filter2[T1 any, T2 any] struct {
	viewIter
}

// NewFilter2 creates a new `Filter` that iterates over all entities
// possessing at least the 2 components: T1, T2. It panics if the same type
// appears twice.
//
// Parameters:
//   - t: The Table to query.
//
// Returns:
//   - A pointer to the newly created `Filter2`.
func NewFilter2[T1 any, T2 any](t *Table) *Filter2[T1, T2] {
	p := compileView(t, func(b *ViewBuilder) {
		Mut[T1](b)
		Mut[T2](b)
	})
	return &Filter2[T1, T2]{viewIter: newViewIter(p)}
}

// New is a convenience method that constructs a new `Filter` instance for the
// same component types, equivalent to calling `NewFilter2`.
func (f *Filter2[T1, T2]) New(t *Table) *Filter2[T1, T2] {
	return NewFilter2[T1, T2](t)
}

// Get returns pointers to the 2 components (T1, T2) for the
// current entity in the iteration. This should only be called after `Next()`
// has returned true.
//
// Returns:
//   - Pointers to the component data (*T1, *T2).
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	slots := f.slots()
	return valueAt[T1](f.columns[0], slots[f.rowPos[0]]),
		valueAt[T2](f.columns[1], slots[f.rowPos[1]])
}

// All rewinds the filter and returns its entities and values as a sequence
// of entities and per-entity getters. The sequence shares the filter's
// position, so it must not be interleaved with Next.
func (f *Filter2[T1, T2]) All() iter.Seq2[Entity, *Filter2[T1, T2]] {
	return func(yield func(Entity, *Filter2[T1, T2]) bool) {
		f.Reset()
		for f.next() {
			if !yield(f.cur, f) {
				return
			}
		}
	}
}

// Filter3 provides a fast iterator over all entities that have the 3
// components: T1, T2, T3.
type Filter3[T1 any, T2 any, T3 any] struct {
	viewIter
}

// NewFilter3 creates a new `Filter` that iterates over all entities
// possessing at least the 3 components: T1, T2, T3. It panics if the same type
// appears twice.
//
// Parameters:
//   - t: The Table to query.
//
// Returns:
//   - A pointer to the newly created `Filter3`.
func NewFilter3[T1 any, T2 any, T3 any](t *Table) *Filter3[T1, T2, T3] {
	p := compileView(t, func(b *ViewBuilder) {
		Mut[T1](b)
		Mut[T2](b)
		Mut[T3](b)
	})
	return &Filter3[T1, T2, T3]{viewIter: newViewIter(p)}
}

// New is a convenience method that constructs a new `Filter` instance for the
// same component types, equivalent to calling `NewFilter3`.
func (f *Filter3[T1, T2, T3]) New(t *Table) *Filter3[T1, T2, T3] {
	return NewFilter3[T1, T2, T3](t)
}

// Get returns pointers to the 3 components (T1, T2, T3) for the
// current entity in the iteration. This should only be called after `Next()`
// has returned true.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3).
func (f *Filter3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	slots := f.slots()
	return valueAt[T1](f.columns[0], slots[f.rowPos[0]]),
		valueAt[T2](f.columns[1], slots[f.rowPos[1]]),
		valueAt[T3](f.columns[2], slots[f.rowPos[2]])
}

// All rewinds the filter and returns its entities and values as a sequence
// of entities and per-entity getters. The sequence shares the filter's
// position, so it must not be interleaved with Next.
func (f *Filter3[T1, T2, T3]) All() iter.Seq2[Entity, *Filter3[T1, T2, T3]] {
	return func(yield func(Entity, *Filter3[T1, T2, T3]) bool) {
		f.Reset()
		for f.next() {
			if !yield(f.cur, f) {
				return
			}
		}
	}
}

// Filter4 provides a fast iterator over all entities that have the 4
// components: T1, T2, T3, T4.
type Filter4[T1 any, T2 any, T3 any, T4 any] struct {
	viewIter
}

// NewFilter4 creates a new `Filter` that iterates over all entities
// possessing at least the 4 components: T1, T2, T3, T4. It panics if the same type
// appears twice.
//
// Parameters:
//   - t: The Table to query.
//
// Returns:
//   - A pointer to the newly created `Filter4`.
func NewFilter4[T1 any, T2 any, T3 any, T4 any](t *Table) *Filter4[T1, T2, T3, T4] {
	p := compileView(t, func(b *ViewBuilder) {
		Mut[T1](b)
		Mut[T2](b)
		Mut[T3](b)
		Mut[T4](b)
	})
	return &Filter4[T1, T2, T3, T4]{viewIter: newViewIter(p)}
}

// New is a convenience method that constructs a new `Filter` instance for the
// same component types, equivalent to calling `NewFilter4`.
func (f *Filter4[T1, T2, T3, T4]) New(t *Table) *Filter4[T1, T2, T3, T4] {
	return NewFilter4[T1, T2, T3, T4](t)
}

// Get returns pointers to the 4 components (T1, T2, T3, T4) for the
// current entity in the iteration. This should only be called after `Next()`
// has returned true.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3, *T4).
func (f *Filter4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	slots := f.slots()
	return valueAt[T1](f.columns[0], slots[f.rowPos[0]]),
		valueAt[T2](f.columns[1], slots[f.rowPos[1]]),
		valueAt[T3](f.columns[2], slots[f.rowPos[2]]),
		valueAt[T4](f.columns[3], slots[f.rowPos[3]])
}

// All rewinds the filter and returns its entities and values as a sequence
// of entities and per-entity getters. The sequence shares the filter's
// position, so it must not be interleaved with Next.
func (f *Filter4[T1, T2, T3, T4]) All() iter.Seq2[Entity, *Filter4[T1, T2, T3, T4]] {
	return func(yield func(Entity, *Filter4[T1, T2, T3, T4]) bool) {
		f.Reset()
		for f.next() {
			if !yield(f.cur, f) {
				return
			}
		}
	}
}

// Filter5 provides a fast iterator over all entities that have the 5
// components: T1, T2, T3, T4, T5.
type Filter5[T1 any, T2 any, T3 any, T4 any, T5 any] struct {
	viewIter
}

// NewFilter5 creates a new `Filter` that iterates over all entities
// possessing at least the 5 components: T1, T2, T3, T4, T5. It panics if the same type
// appears twice.
//
// Parameters:
//   - t: The Table to query.
//
// Returns:
//   - A pointer to the newly created `Filter5`.
func NewFilter5[T1 any, T2 any, T3 any, T4 any, T5 any](t *Table) *Filter5[T1, T2, T3, T4, T5] {
	p := compileView(t, func(b *ViewBuilder) {
		Mut[T1](b)
		Mut[T2](b)
		Mut[T3](b)
		Mut[T4](b)
		Mut[T5](b)
	})
	return &Filter5[T1, T2, T3, T4, T5]{viewIter: newViewIter(p)}
}

// New is a convenience method that constructs a new `Filter` instance for the
// same component types, equivalent to calling `NewFilter5`.
func (f *Filter5[T1, T2, T3, T4, T5]) New(t *Table) *Filter5[T1, T2, T3, T4, T5] {
	return NewFilter5[T1, T2, T3, T4, T5](t)
}

// Get returns pointers to the 5 components (T1, T2, T3, T4, T5) for the
// current entity in the iteration. This should only be called after `Next()`
// has returned true.
//
// Returns:
//   - Pointers to the component data (*T1, *T2, *T3, *T4, *T5).
func (f *Filter5[T1, T2, T3, T4, T5]) Get() (*T1, *T2, *T3, *T4, *T5) {
	slots := f.slots()
	return valueAt[T1](f.columns[0], slots[f.rowPos[0]]),
		valueAt[T2](f.columns[1], slots[f.rowPos[1]]),
		valueAt[T3](f.columns[2], slots[f.rowPos[2]]),
		valueAt[T4](f.columns[3], slots[f.rowPos[3]]),
		valueAt[T5](f.columns[4], slots[f.rowPos[4]])
}

// All rewinds the filter and returns its entities and values as a sequence
// of entities and per-entity getters. The sequence shares the filter's
// position, so it must not be interleaved with Next.
func (f *Filter5[T1, T2, T3, T4, T5]) All() iter.Seq2[Entity, *Filter5[T1, T2, T3, T4, T5]] {
	return func(yield func(Entity, *Filter5[T1, T2, T3, T4, T5]) bool) {
		f.Reset()
		for f.next() {
			if !yield(f.cur, f) {
				return
			}
		}
	}
}
