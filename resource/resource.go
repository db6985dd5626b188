package resource

import (
	"fmt"

	"github.com/syssam/rowmap"
	"github.com/syssam/rowmap/field"
)

// Resource is a named, ordered collection of fields describing how one
// kind of domain object maps to dataset rows.
type Resource struct {
	name   string
	fields []*field.Field
}

// New returns a resource with the given fields, kept in declaration
// order.
func New(name string, fields ...*field.Field) *Resource {
	return &Resource{name: name, fields: fields}
}

// Name returns the resource name.
func (r *Resource) Name() string { return r.name }

// Fields returns the fields in declaration order.
func (r *Resource) Fields() []*field.Field { return r.fields }

// Headers returns the column names in declaration order, suitable as a
// dataset header row.
func (r *Resource) Headers() []string {
	headers := make([]string, len(r.fields))
	for i, f := range r.fields {
		headers[i] = f.ColumnName()
	}
	return headers
}

// ExportRow exports obj as one dataset row, one cell per field, in
// header order.
func (r *Resource) ExportRow(obj any) ([]any, error) {
	cells := make([]any, len(r.fields))
	for i, f := range r.fields {
		v, err := f.Export(obj)
		if err != nil {
			return nil, fmt.Errorf("resource: %s: export %s: %w", r.name, f, err)
		}
		cells[i] = v
	}
	return cells, nil
}

// ImportRow applies every field's Save to obj using the given row.
// Read-only fields are skipped by their own contract. The first
// failing field aborts the import of this row.
func (r *Resource) ImportRow(obj any, row rowmap.Row) error {
	for _, f := range r.fields {
		if err := f.Save(obj, row); err != nil {
			return fmt.Errorf("resource: %s: import %s: %w", r.name, f, err)
		}
	}
	return nil
}
