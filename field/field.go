package field

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/syssam/rowmap"
	"github.com/syssam/rowmap/object"
	"github.com/syssam/rowmap/widget"
)

// Separator delimits the segments of an attribute path.
const Separator = "__"

// Field maps one dataset column to one attribute path on a domain
// object. It is constructed once and reused across objects and rows.
type Field struct {
	column    string
	attribute string
	segments  []string
	// single is true for one-segment paths; only those are eligible
	// for the relational identifier shortcut.
	single   bool
	widget   widget.Widget
	def      fallback
	readonly bool
}

// New returns a field bound to the given dataset column, with the
// pass-through widget and no attribute binding.
func New(column string) *Field {
	return &Field{column: column, widget: widget.PassThrough{}}
}

// Attribute binds the field to an attribute path on the domain object.
// An empty path leaves the field unbound.
func (f *Field) Attribute(path string) *Field {
	f.attribute = path
	if path == "" {
		f.segments = nil
		f.single = false
		return f
	}
	f.segments = strings.Split(path, Separator)
	f.single = len(f.segments) == 1
	return f
}

// Widget sets the value-conversion widget. A nil widget is ignored so
// the field always carries one.
func (f *Field) Widget(w widget.Widget) *Field {
	if w != nil {
		f.widget = w
	}
	return f
}

// Default sets a literal fallback substituted when the cleaned value
// is empty.
func (f *Field) Default(v any) *Field {
	f.def = fallback{kind: defaultValue, value: v}
	return f
}

// DefaultFunc sets a fallback produced by fn. The function is invoked
// at most once, on the first substitution, and its result memoized.
func (f *Field) DefaultFunc(fn func() any) *Field {
	f.def = fallback{kind: defaultFunc, fn: fn}
	return f
}

// NoDefault disables fallback substitution: empty cleaned values are
// returned as-is.
func (f *Field) NoDefault() *Field {
	f.def = fallback{kind: defaultNotProvided}
	return f
}

// ReadOnly excludes the field from import: Save never mutates the
// object.
func (f *Field) ReadOnly() *Field {
	f.readonly = true
	return f
}

// ColumnName returns the dataset column the field is bound to.
func (f *Field) ColumnName() string { return f.column }

// AttributePath returns the attribute path, or "" if unbound.
func (f *Field) AttributePath() string { return f.attribute }

// IsReadOnly reports whether Save is a no-op for this field.
func (f *Field) IsReadOnly() bool { return f.readonly }

// String returns a diagnostic representation of the field.
func (f *Field) String() string {
	if f.column != "" {
		return fmt.Sprintf("<field.Field: %s>", f.column)
	}
	return "<field.Field>"
}

// GetValue resolves the field's attribute path against obj.
//
// It returns nil when the field is unbound, when any path segment is
// missing or resolves to nil, and when an intermediate access fails
// because the object has no identity yet or a related lookup does not
// exist. Other access errors are surfaced.
//
// A single-segment relational attribute is read through its <name>_id
// identifier instead of dereferencing the related object. A terminal
// object.Computed value is invoked, unless it is a Collection.
func (f *Field) GetValue(obj any) (any, error) {
	if f.attribute == "" {
		return nil, nil
	}
	value := obj
	for _, seg := range f.segments {
		g, ok := object.AsGetter(value)
		if !ok {
			return nil, nil
		}
		name := seg
		if f.single && isRelation(value, seg) {
			name = object.RelationID(seg)
		}
		v, err := g.Attribute(name)
		if err != nil {
			if errors.Is(err, rowmap.ErrNoIdentity) || errors.Is(err, rowmap.ErrNotExist) {
				return nil, nil
			}
			return nil, err
		}
		if isNil(v) {
			return nil, nil
		}
		value = v
	}
	if c, ok := value.(object.Computed); ok {
		if _, managed := value.(object.Collection); !managed {
			value = c.Compute()
		}
	}
	return value, nil
}

// IsRelated reports whether the field maps a relational attribute of
// obj. Only single-segment paths qualify; a multi-segment path is
// never related here, even if its final segment names a relation.
func (f *Field) IsRelated(obj any) bool {
	return f.single && isRelation(obj, f.segments[0])
}

// Export resolves the field against obj and converts the value to its
// export representation. A nil value exports as the empty string. For
// a relational field the raw identifier is returned unconverted,
// bypassing the widget; everything else is rendered by the widget.
func (f *Field) Export(obj any) (any, error) {
	value, err := f.GetValue(obj)
	if err != nil {
		return nil, err
	}
	if isNil(value) {
		return "", nil
	}
	if f.IsRelated(obj) {
		return value, nil
	}
	return f.widget.Render(value), nil
}

// Clean looks the field's column up in row and converts the raw cell
// through the widget. An empty cleaned value is replaced by the
// field's default, unless the default was withheld with NoDefault.
//
// A missing column yields a rowmap.MissingColumnError listing the
// available columns; a widget failure yields a rowmap.ConversionError
// carrying the column name.
func (f *Field) Clean(row rowmap.Row) (any, error) {
	raw, ok := row[f.column]
	if !ok {
		return nil, rowmap.NewMissingColumnError(f.column, row.Columns())
	}
	value, err := f.widget.Clean(raw)
	if err != nil {
		return nil, rowmap.NewConversionError(f.column, err)
	}
	if isEmpty(value) && f.def.provided() {
		return f.def.resolve(), nil
	}
	return value, nil
}

// Save cleans the field's cell from row and assigns it onto obj,
// following all but the last path segment with plain attribute access.
// Read-only and unbound fields are no-ops. A nil or non-assignable
// base at the end of the walk fails with an error, as does a failing
// clean.
//
// Unlike GetValue, the walk never takes the relational identifier
// shortcut; intermediate hops are plain attribute reads.
func (f *Field) Save(obj any, row rowmap.Row) error {
	if f.readonly || f.attribute == "" {
		return nil
	}
	value, err := f.Clean(row)
	if err != nil {
		return err
	}
	base := obj
	for _, seg := range f.segments[:len(f.segments)-1] {
		g, ok := object.AsGetter(base)
		if !ok {
			base = nil
			continue
		}
		v, err := g.Attribute(seg)
		if err != nil {
			return err
		}
		base = v
	}
	last := f.segments[len(f.segments)-1]
	s, ok := object.AsSetter(base)
	if !ok {
		return fmt.Errorf("field: cannot assign attribute %q of %s: %T is not settable", last, f, base)
	}
	return s.SetAttribute(last, value)
}

// isRelation reports whether seg names a relational attribute in the
// object's schema. Objects without a schema have no relations.
func isRelation(obj any, seg string) bool {
	s, ok := object.AsSchema(obj)
	if !ok {
		return false
	}
	k, ok := s.FieldKind(seg)
	return ok && k == object.KindRelation
}

// isNil reports whether v is nil, including typed nil pointers,
// interfaces, maps, slices, channels and functions.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// isEmpty reports whether a cleaned value triggers default
// substitution: nil, false, numeric zero, and empty strings and
// collections. Struct values never count as empty.
func isEmpty(v any) bool {
	if isNil(v) {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
