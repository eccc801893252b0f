package retsu

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/sirupsen/logrus"
)

// ColumnType describes one registered component type.
type ColumnType struct {
	typ        reflect.Type
	name       string
	rows       []RowID  // every row type containing this column, ascending
	views      []ViewID // every view type requesting this column, ascending
	size       uintptr
	align      uintptr
	sizePadded uintptr
	id         ColumnID
}

// ID returns the column's identifier.
func (c *ColumnType) ID() ColumnID { return c.id }

// Type returns the component type stored in the column.
func (c *ColumnType) Type() reflect.Type { return c.typ }

// Name returns a diagnostic name for the component type.
func (c *ColumnType) Name() string { return c.name }

// Size returns the size in bytes of one value.
func (c *ColumnType) Size() uintptr { return c.size }

// Align returns the alignment in bytes of one value.
func (c *ColumnType) Align() uintptr { return c.align }

// SizePadded returns the value size rounded up to its alignment, which is the
// stride between two consecutive slots.
func (c *ColumnType) SizePadded() uintptr { return c.sizePadded }

// Rows returns the row types that contain this column. The slice is owned by
// the registry and must not be modified.
func (c *ColumnType) Rows() []RowID { return c.rows }

// Views returns the view types that request this column. The slice is owned by
// the registry and must not be modified.
func (c *ColumnType) Views() []ViewID { return c.views }

// RowType is an archetype: a canonical, sorted, deduplicated set of columns.
type RowType struct {
	columns []ColumnID
	mask    bitmask256
	id      RowID
}

// ID returns the row type's identifier.
func (r *RowType) ID() RowID { return r.id }

// Columns returns the row's columns in canonical (ascending) order. The slice
// is owned by the registry and must not be modified.
func (r *RowType) Columns() []ColumnID { return r.columns }

// Len returns the number of columns in the row type.
func (r *RowType) Len() int { return len(r.columns) }

// Has reports whether the row type includes the column.
func (r *RowType) Has(col ColumnID) bool {
	return col < MaxColumnTypes && r.mask.containsBit(uint8(col))
}

// Position returns the index of col within the row's canonical column order.
func (r *RowType) Position(col ColumnID) (int, bool) {
	if !r.Has(col) {
		return -1, false
	}
	return slices.BinarySearch(r.columns, col)
}

// ViewType is a query shape. Its identity is the set of requested columns;
// the order in which a query declared them is kept by the compiled plan.
type ViewType struct {
	columns  []ColumnID
	viewRows []ViewRowID // matching rows, in link order
	mask     bitmask256
	id       ViewID
}

// ID returns the view type's identifier.
func (v *ViewType) ID() ViewID { return v.id }

// Columns returns the view's columns in canonical (ascending) order. The slice
// is owned by the registry and must not be modified.
func (v *ViewType) Columns() []ColumnID { return v.columns }

// Len returns the number of columns in the view type.
func (v *ViewType) Len() int { return len(v.columns) }

// Position returns the index of col within the view's canonical column order.
func (v *ViewType) Position(col ColumnID) (int, bool) {
	if col >= MaxColumnTypes || !v.mask.containsBit(uint8(col)) {
		return -1, false
	}
	return slices.BinarySearch(v.columns, col)
}

// ViewRows returns the view rows of every matching row type, in the order in
// which they were linked. The slice is owned by the registry and must not be
// modified.
func (v *ViewType) ViewRows() []ViewRowID { return v.viewRows }

// ViewRow links one view type to one row type that contains all of its
// columns.
type ViewRow struct {
	indexMap []int
	id       ViewRowID
	view     ViewID
	row      RowID
}

// ID returns the view row's identifier.
func (vr *ViewRow) ID() ViewRowID { return vr.id }

// View returns the linked view type.
func (vr *ViewRow) View() ViewID { return vr.view }

// Row returns the linked row type.
func (vr *ViewRow) Row() RowID { return vr.row }

// IndexMap returns, for each column of the view in canonical order, the
// position of that column within the row. The slice is owned by the registry
// and must not be modified.
func (vr *ViewRow) IndexMap() []int { return vr.indexMap }

// Registry is the single source of truth for column, row, view and view-row
// identity. All four graphs only grow; every node is addressed by a dense
// integer ID and cross-references are stored as IDs.
type Registry struct {
	columnIndex  map[reflect.Type]ColumnID
	rowIndex     map[bitmask256]RowID
	viewIndex    map[bitmask256]ViewID
	viewRowIndex map[viewRowKey]ViewRowID
	bus          *EventBus
	log          *logrus.Entry
	columns      []*ColumnType
	rows         []*RowType
	views        []*ViewType
	viewRows     []*ViewRow
}

// NewRegistry creates an empty registry. A nil logger selects the standard
// logrus logger.
func NewRegistry(log *logrus.Entry) *Registry {
	if log == nil {
		log = logrus.WithField("component", "registry")
	}
	return &Registry{
		columnIndex:  make(map[reflect.Type]ColumnID, 16),
		rowIndex:     make(map[bitmask256]RowID, 16),
		viewIndex:    make(map[bitmask256]ViewID, 16),
		viewRowIndex: make(map[viewRowKey]ViewRowID, 16),
		bus:          &EventBus{},
		log:          log,
		columns:      make([]*ColumnType, 0, 16),
		rows:         make([]*RowType, 0, 16),
		views:        make([]*ViewType, 0, 16),
		viewRows:     make([]*ViewRow, 0, 16),
	}
}

// Events returns the bus on which the registry announces structural growth.
func (r *Registry) Events() *EventBus {
	return r.bus
}

// RegisterColumn returns the column ID for the component type t, registering
// it on first use. It panics if more than MaxColumnTypes types are registered.
func (r *Registry) RegisterColumn(t reflect.Type) ColumnID {
	if id, ok := r.columnIndex[t]; ok {
		return id
	}
	if len(r.columns) >= MaxColumnTypes {
		panic(fmt.Sprintf("ecs: cannot register %s: too many component types (max %d)", t, MaxColumnTypes))
	}
	id := ColumnID(len(r.columns))
	align := uintptr(t.Align())
	ct := &ColumnType{
		id:         id,
		typ:        t,
		name:       t.String(),
		size:       t.Size(),
		align:      align,
		sizePadded: padTo(t.Size(), align),
	}
	r.columns = append(r.columns, ct)
	r.columnIndex[t] = id
	r.log.WithFields(logrus.Fields{
		"column": uint32(id),
		"name":   ct.name,
		"size":   ct.size,
	}).Debug("column registered")
	Publish(r.bus, ColumnAdded{Column: id})
	return id
}

// RegisterRow returns the row type for a set of columns, creating it on first
// use. The input order and any repetition are irrelevant. A new row is linked
// to every existing view whose columns it contains.
func (r *Registry) RegisterRow(cols []ColumnID) RowID {
	cols, mask := r.canonical(cols)
	if id, ok := r.rowIndex[mask]; ok {
		return id
	}
	id := RowID(len(r.rows))
	r.rows = append(r.rows, &RowType{id: id, columns: cols, mask: mask})
	r.rowIndex[mask] = id
	for _, c := range cols {
		r.columns[c].rows = append(r.columns[c].rows, id)
	}
	r.log.WithFields(logrus.Fields{
		"row":     uint32(id),
		"columns": cols,
	}).Debug("row type registered")
	Publish(r.bus, RowAdded{Row: id})
	for _, v := range r.views {
		if mask.contains(v.mask) {
			r.RegisterViewRow(id, v.id)
		}
	}
	return id
}

// RegisterView returns the view type for a set of columns, creating it on
// first use. A new view is linked to every existing row that contains all of
// its columns, in row order.
func (r *Registry) RegisterView(cols []ColumnID) ViewID {
	cols, mask := r.canonical(cols)
	if id, ok := r.viewIndex[mask]; ok {
		return id
	}
	id := ViewID(len(r.views))
	r.views = append(r.views, &ViewType{id: id, columns: cols, mask: mask})
	r.viewIndex[mask] = id
	for _, c := range cols {
		r.columns[c].views = append(r.columns[c].views, id)
	}
	r.log.WithFields(logrus.Fields{
		"view":    uint32(id),
		"columns": cols,
	}).Debug("view type registered")
	Publish(r.bus, ViewAdded{View: id})
	for _, row := range r.rows {
		if row.mask.contains(mask) {
			r.RegisterViewRow(row.id, id)
		}
	}
	return id
}

// RegisterViewRow links a view to a row and returns the link, creating it on
// first use. It panics if the row does not contain every column of the view.
func (r *Registry) RegisterViewRow(row RowID, view ViewID) ViewRowID {
	key := viewRowKey{view: view, row: row}
	if id, ok := r.viewRowIndex[key]; ok {
		return id
	}
	rt := r.Row(row)
	vt := r.View(view)
	indexMap := make([]int, len(vt.columns))
	for i, c := range vt.columns {
		pos, ok := rt.Position(c)
		if !ok {
			panic(fmt.Sprintf("ecs: %s does not contain %s required by %s", row, c, view))
		}
		indexMap[i] = pos
	}
	id := ViewRowID(len(r.viewRows))
	r.viewRows = append(r.viewRows, &ViewRow{id: id, view: view, row: row, indexMap: indexMap})
	r.viewRowIndex[key] = id
	vt.viewRows = append(vt.viewRows, id)
	r.log.WithFields(logrus.Fields{
		"view_row": uint32(id),
		"view":     uint32(view),
		"row":      uint32(row),
	}).Debug("view row linked")
	Publish(r.bus, ViewRowAdded{ViewRow: id, View: view, Row: row})
	return id
}

// ExtendRow returns the row type holding the columns of row plus col.
func (r *Registry) ExtendRow(row RowID, col ColumnID) RowID {
	base := r.Row(row).columns
	cols := make([]ColumnID, len(base), len(base)+1)
	copy(cols, base)
	return r.RegisterRow(append(cols, col))
}

// ExtendView returns the view type holding the columns of view plus col.
func (r *Registry) ExtendView(view ViewID, col ColumnID) ViewID {
	base := r.View(view).columns
	cols := make([]ColumnID, len(base), len(base)+1)
	copy(cols, base)
	return r.RegisterView(append(cols, col))
}

// JoinRows returns, in ascending order, every row type that contains all of
// the given columns. With no columns it returns every row type.
func (r *Registry) JoinRows(cols []ColumnID) []RowID {
	if len(cols) == 0 {
		out := make([]RowID, len(r.rows))
		for i := range r.rows {
			out[i] = RowID(i)
		}
		return out
	}
	want := maskOf(cols)
	// the shortest back-reference list bounds the candidates
	candidates := r.Column(cols[0]).rows
	for _, c := range cols[1:] {
		if rows := r.Column(c).rows; len(rows) < len(candidates) {
			candidates = rows
		}
	}
	out := make([]RowID, 0, len(candidates))
	for _, id := range candidates {
		if r.rows[id].mask.contains(want) {
			out = append(out, id)
		}
	}
	return out
}

// ColumnByType returns the column registered for t, if any.
func (r *Registry) ColumnByType(t reflect.Type) (ColumnID, bool) {
	id, ok := r.columnIndex[t]
	return id, ok
}

// RowByColumns returns the row type for a set of columns, if it exists.
func (r *Registry) RowByColumns(cols []ColumnID) (RowID, bool) {
	_, mask := r.canonical(cols)
	id, ok := r.rowIndex[mask]
	return id, ok
}

// ViewByColumns returns the view type for a set of columns, if it exists.
func (r *Registry) ViewByColumns(cols []ColumnID) (ViewID, bool) {
	_, mask := r.canonical(cols)
	id, ok := r.viewIndex[mask]
	return id, ok
}

// Column returns the column type for id. It panics if id was never issued.
func (r *Registry) Column(id ColumnID) *ColumnType {
	if int(id) >= len(r.columns) {
		panic(fmt.Sprintf("ecs: unknown %s", id))
	}
	return r.columns[id]
}

// Row returns the row type for id. It panics if id was never issued.
func (r *Registry) Row(id RowID) *RowType {
	if int(id) >= len(r.rows) {
		panic(fmt.Sprintf("ecs: unknown %s", id))
	}
	return r.rows[id]
}

// View returns the view type for id. It panics if id was never issued.
func (r *Registry) View(id ViewID) *ViewType {
	if int(id) >= len(r.views) {
		panic(fmt.Sprintf("ecs: unknown %s", id))
	}
	return r.views[id]
}

// ViewRow returns the view row for id. It panics if id was never issued.
func (r *Registry) ViewRow(id ViewRowID) *ViewRow {
	if int(id) >= len(r.viewRows) {
		panic(fmt.Sprintf("ecs: unknown %s", id))
	}
	return r.viewRows[id]
}

// NumColumns returns the number of registered column types.
func (r *Registry) NumColumns() int { return len(r.columns) }

// NumRows returns the number of registered row types.
func (r *Registry) NumRows() int { return len(r.rows) }

// NumViews returns the number of registered view types.
func (r *Registry) NumViews() int { return len(r.views) }

// NumViewRows returns the number of view rows.
func (r *Registry) NumViewRows() int { return len(r.viewRows) }

// canonical validates, sorts and deduplicates a column list and returns it
// together with its mask. The input is not modified.
func (r *Registry) canonical(cols []ColumnID) ([]ColumnID, bitmask256) {
	out := make([]ColumnID, len(cols))
	copy(out, cols)
	for _, c := range out {
		r.Column(c)
	}
	slices.Sort(out)
	out = slices.Compact(out)
	return out, maskOf(out)
}

// padTo rounds size up to a multiple of align.
func padTo(size, align uintptr) uintptr {
	if align <= 1 {
		return size
	}
	return (size + align - 1) &^ (align - 1)
}
