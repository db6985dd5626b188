package object

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-openapi/inflect"
)

// Struct adapts a struct or struct pointer into the Getter, Setter and
// Schema capabilities. Attribute names are snake_case and mapped to
// the exported Go field names, e.g. "category_id" -> CategoryID.
//
// The field-kind table is supplied at construction; attributes absent
// from it are scalar.
type Struct struct {
	orig  any
	val   reflect.Value
	kinds map[string]Kind
}

// NewStruct returns a Struct adapter over v, which must be a struct or
// a pointer to one. Pass a pointer if the object will be mutated
// through SetAttribute. NewStruct panics on other kinds, mirroring the
// construction-time contract of the mapping layer.
func NewStruct(v any, kinds map[string]Kind) *Struct {
	s, ok := newStruct(v, kinds)
	if !ok {
		panic(fmt.Sprintf("object: NewStruct called with non-struct %T", v))
	}
	return s
}

func newStruct(v any, kinds map[string]Kind) (*Struct, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	return &Struct{orig: v, val: rv, kinds: kinds}, true
}

// settable reports whether the underlying value can be mutated, i.e.
// the adapter was built over a pointer.
func (s *Struct) settable() bool {
	return s.val.CanSet()
}

// Attribute returns the value of the named attribute, or (nil, nil) if
// the struct has no matching field. Nil pointers and nil interfaces
// are normalized to untyped nil.
func (s *Struct) Attribute(name string) (any, error) {
	fv, ok := s.field(name)
	if !ok {
		return nil, nil
	}
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return nil, nil
		}
	}
	return fv.Interface(), nil
}

// SetAttribute assigns value to the named attribute. The value may be
// of any type convertible to the field's type; nil clears nilable
// fields to their zero value.
func (s *Struct) SetAttribute(name string, value any) error {
	fv, ok := s.field(name)
	if !ok {
		return fmt.Errorf("object: no attribute %q on %T", name, s.orig)
	}
	if !fv.CanSet() {
		return fmt.Errorf("object: attribute %q on %T is not settable (pass a pointer)", name, s.orig)
	}
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(fv.Type()):
		fv.Set(rv)
	case rv.Type().ConvertibleTo(fv.Type()):
		fv.Set(rv.Convert(fv.Type()))
	case fv.Kind() == reflect.Pointer && rv.Type().AssignableTo(fv.Type().Elem()):
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(rv)
		fv.Set(p)
	default:
		return fmt.Errorf("object: cannot assign %T to attribute %q (%s) on %T",
			value, name, fv.Type(), s.orig)
	}
	return nil
}

// FieldKind implements Schema over the table supplied at construction.
func (s *Struct) FieldKind(name string) (Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

func (s *Struct) field(name string) (reflect.Value, bool) {
	fv := s.val.FieldByName(goName(name))
	if !fv.IsValid() {
		// Callers occasionally configure the Go field name directly.
		fv = s.val.FieldByName(name)
	}
	if !fv.IsValid() || !fv.CanInterface() {
		return reflect.Value{}, false
	}
	return fv, true
}

// Common initialisms kept uppercase in Go field names.
var initialisms = map[string]string{
	"id":   "ID",
	"uid":  "UID",
	"uuid": "UUID",
	"url":  "URL",
	"uri":  "URI",
	"api":  "API",
	"db":   "DB",
	"sql":  "SQL",
	"json": "JSON",
	"html": "HTML",
	"http": "HTTP",
	"ip":   "IP",
	"sku":  "SKU",
}

// goName converts a snake_case attribute name to the conventional Go
// field name, e.g. "category_id" -> "CategoryID".
func goName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if ini, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(ini)
			continue
		}
		b.WriteString(inflect.Camelize(part))
	}
	return b.String()
}
