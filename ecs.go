// Package retsu implements an archetype-based entity component store with
// type-erased, chunked per-type columns.
//
// Features:
//   - A registry that canonicalizes component types, archetypes (row types)
//     and query shapes (view types) and links them with precomputed index
//     maps (view rows).
//   - Append-only columns: a value's slot never moves, so pointers handed out
//     for a slot stay valid for the lifetime of the table.
//   - Compiled, reusable insert and query plans, with typed fast paths
//     (Builder, Builder2..5, Filter, Filter2..5) and generic capability
//     interfaces (Insertable, Queryable) for custom shapes.
//   - Structural events so that a scheduler can react to graph growth.
//
// A Table is a single-owner data structure. Mutations require exclusive
// access to the whole table; reads only require that no mutation runs
// concurrently.
package retsu

import "fmt"

// MaxColumnTypes defines the maximum number of unique component types that
// can be registered in a Registry. This value is fixed at 256, the width of
// the archetype mask.
const MaxColumnTypes = 256

// ChunkSize is the number of values stored in each chunk of a column.
const ChunkSize = 1024

// ColumnID identifies one registered component type.
type ColumnID uint32

// RowID identifies one archetype, a canonical set of columns.
type RowID uint32

// ViewID identifies one query shape.
type ViewID uint32

// ViewRowID identifies the index map linking one view to one row.
type ViewRowID uint32

// Entity identifies a spawned entity. Entities are numbered densely from 0 in
// spawn order and are never recycled.
type Entity uint32

// viewRowKey is the identity of a view row.
type viewRowKey struct {
	view ViewID
	row  RowID
}

func (id ColumnID) String() string  { return fmt.Sprintf("column#%d", uint32(id)) }
func (id RowID) String() string     { return fmt.Sprintf("row#%d", uint32(id)) }
func (id ViewID) String() string    { return fmt.Sprintf("view#%d", uint32(id)) }
func (id ViewRowID) String() string { return fmt.Sprintf("viewrow#%d", uint32(id)) }
