// Package widget defines the value-conversion collaborator used by
// fields: Clean turns a raw dataset cell into a value, Render turns a
// value back into its export representation.
package widget

import "fmt"

// Widget converts between raw cell values and in-memory values.
//
// Clean may fail on malformed input; the field wraps the failure with
// the column it occurred on. Render must accept any value the field
// can resolve and return a string.
type Widget interface {
	Clean(raw any) (any, error)
	Render(v any) string
}

// PassThrough is the widget substituted when a field is constructed
// without one. Values cross Clean unchanged and Render stringifies
// with the fmt default format.
type PassThrough struct{}

// Clean returns raw unchanged.
func (PassThrough) Clean(raw any) (any, error) { return raw, nil }

// Render returns the default string representation of v.
func (PassThrough) Render(v any) string { return fmt.Sprint(v) }
