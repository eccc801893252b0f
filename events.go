package retsu

// ColumnAdded is published when a component type is registered for the first
// time.
type ColumnAdded struct {
	Column ColumnID
}

// RowAdded is published when a new archetype is created. It is published
// after the row is linked into its columns' back-references and before any
// view row for it is created.
type RowAdded struct {
	Row RowID
}

// ViewAdded is published when a new view shape is created, before the
// registry scans existing rows for matches.
type ViewAdded struct {
	View ViewID
}

// ViewRowAdded is published when a view is linked to a matching row.
type ViewRowAdded struct {
	ViewRow ViewRowID
	View    ViewID
	Row     RowID
}
