package datatable

import (
	"dimgrid/core/enumeration"
)

// ScalingSource is an external dataset reference that can report which
// enumerations it is expressed against before the table itself is loaded.
// Resolution may be expensive; callers cache the result.
type ScalingSource interface {
	// Contains reports whether the dataset is expressed against view on
	// one of its four axes
	Contains(view enumeration.View) bool

	// Resolve loads the dataset into a table
	Resolve() (*Table, error)
}

// TableSource wraps an already-loaded table as a ScalingSource
type TableSource struct {
	table *Table
}

// NewTableSource creates a source over an in-memory table
func NewTableSource(table *Table) *TableSource {
	return &TableSource{table: table}
}

// Contains reports whether the table is expressed against view
func (s *TableSource) Contains(view enumeration.View) bool {
	return s.table.Contains(view)
}

// Resolve returns the wrapped table
func (s *TableSource) Resolve() (*Table, error) {
	return s.table, nil
}
