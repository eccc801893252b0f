package retsu

import (
	"github.com/sirupsen/logrus"
)

// entityRecord holds where an entity's values live.
type entityRecord struct {
	slots []int // slot per row column, in the row's canonical order
	row   RowID
}

// Table owns a Registry, one column per registered component type and the
// record of every spawned entity. It is the entry point for spawning,
// reading, writing and iterating.
type Table struct {
	registry    *Registry
	log         *logrus.Entry
	plans       planCache
	columns     []*column
	entities    []entityRecord
	rowEntities [][]Entity // entities of each row type, ascending
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used by the table and by the registry it
// creates.
func WithLogger(log *logrus.Entry) Option {
	return func(t *Table) {
		t.log = log
	}
}

// WithRegistry makes the table use an existing registry. Several tables may
// share one registry; each keeps its own storage.
func WithRegistry(r *Registry) Option {
	return func(t *Table) {
		t.registry = r
	}
}

// NewTable creates an empty table with room for initialCapacity entity
// records before reallocation.
//
// Parameters:
//   - initialCapacity: The number of entity records to pre-allocate.
//   - opts: Optional configuration.
//
// Returns:
//   - The newly created Table.
func NewTable(initialCapacity int, opts ...Option) *Table {
	t := &Table{
		entities:    make([]entityRecord, 0, initialCapacity),
		columns:     make([]*column, 0, 16),
		rowEntities: make([][]Entity, 0, 16),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logrus.WithField("component", "table")
	}
	if t.registry == nil {
		t.registry = NewRegistry(t.log.WithField("component", "registry"))
	}
	t.syncColumns()
	t.syncRows()
	bus := t.registry.Events()
	Subscribe(bus, func(ColumnAdded) { t.syncColumns() })
	Subscribe(bus, func(RowAdded) { t.syncRows() })
	t.log.WithFields(logrus.Fields{
		"capacity": initialCapacity,
		"columns":  len(t.columns),
		"rows":     len(t.rowEntities),
	}).Debug("table created")
	return t
}

// Registry returns the table's registry.
func (t *Table) Registry() *Registry {
	return t.registry
}

// Events returns the bus on which structural growth is announced.
func (t *Table) Events() *EventBus {
	return t.registry.Events()
}

// Len returns the number of spawned entities.
func (t *Table) Len() int {
	return len(t.entities)
}

// Contains reports whether e was spawned by this table.
func (t *Table) Contains(e Entity) bool {
	return int(e) < len(t.entities)
}

// RowOf returns the archetype of e.
func (t *Table) RowOf(e Entity) (RowID, bool) {
	if int(e) >= len(t.entities) {
		return 0, false
	}
	return t.entities[e].row, true
}

// RowLen returns the number of entities in a row type. It panics if row was
// never issued.
func (t *Table) RowLen(row RowID) int {
	t.registry.Row(row)
	return len(t.rowEntities[row])
}

// RowEntities returns the entities of a row type in ascending order. The
// slice is owned by the table and is invalidated by the next mutation.
func (t *Table) RowEntities(row RowID) []Entity {
	t.registry.Row(row)
	return t.rowEntities[row]
}

// CreateEntity spawns an entity with no components.
func (t *Table) CreateEntity() Entity {
	return t.pushEntity(t.registry.RegisterRow(nil), nil)
}

// pushEntity records a new entity whose values already sit in slots.
func (t *Table) pushEntity(row RowID, slots []int) Entity {
	e := Entity(len(t.entities))
	t.entities = append(t.entities, entityRecord{row: row, slots: slots})
	t.rowEntities[row] = append(t.rowEntities[row], e)
	return e
}

// slot resolves the slot holding e's value for col.
func (t *Table) slot(e Entity, col ColumnID) (int, bool) {
	if int(e) >= len(t.entities) {
		return -1, false
	}
	rec := &t.entities[e]
	pos, ok := t.registry.rows[rec.row].Position(col)
	if !ok {
		return -1, false
	}
	return rec.slots[pos], true
}

// syncColumns creates storage for every column registered since the last
// call.
func (t *Table) syncColumns() {
	for len(t.columns) < t.registry.NumColumns() {
		ct := t.registry.Column(ColumnID(len(t.columns)))
		t.columns = append(t.columns, newColumn(ct))
	}
}

// syncRows creates an entity list for every row registered since the last
// call.
func (t *Table) syncRows() {
	for len(t.rowEntities) < t.registry.NumRows() {
		t.rowEntities = append(t.rowEntities, nil)
	}
}
