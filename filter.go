package retsu

import "iter"

// Filter provides a fast iterator over all entities that have a component of
// type T. It is the typed fast path of the query compiler: the plan is
// compiled once and each Get is a direct slot lookup, without the cursor's
// type checks.
//
// This is the filter for entities with one component. Filters for several
// components (Filter2..Filter5) follow the same pattern. Every column of a
// filter is requested with write access.
type Filter[T any] struct {
	viewIter
}

// NewFilter creates a new `Filter` that iterates over all entities possessing
// at least the component of type `T`. Archetypes created after the filter are
// picked up on the next Reset.
//
// Parameters:
//   - t: The Table to query.
//
// Returns:
//   - A pointer to the newly created `Filter[T]`.
func NewFilter[T any](t *Table) *Filter[T] {
	return &Filter[T]{viewIter: newViewIter(compileView(t, Mut[T]))}
}

// New is a convenience method that creates a new filter instance for the same
// component type.
func (f *Filter[T]) New(t *Table) *Filter[T] {
	return NewFilter[T](t)
}

// Get returns a pointer to the component of type `T` for the current entity
// in the iteration. This should only be called after `Next()` has returned true.
//
// Example:
//
//	query := retsu.NewFilter[Position](table)
//	for query.Next() {
//	    pos := query.Get()
//	    pos.X++
//	}
//
// Returns:
//   - A pointer to the component data (*T).
func (f *Filter[T]) Get() *T {
	return valueAt[T](f.columns[0], f.slots()[f.rowPos[0]])
}

// All rewinds the filter and returns its entities and values as a sequence.
// The sequence shares the filter's position, so it must not be interleaved
// with Next.
func (f *Filter[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		f.Reset()
		for f.next() {
			if !yield(f.cur, f.Get()) {
				return
			}
		}
	}
}
