package object

// Kind describes how an attribute is stored on a domain object.
type Kind uint8

const (
	// KindScalar is a plain value attribute.
	KindScalar Kind = iota

	// KindRelation is a reference to another domain object, exposed
	// alongside a raw identifier attribute (see RelationID).
	KindRelation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// IDSuffix is the naming convention for the attribute holding a
// relation's raw identifier.
const IDSuffix = "_id"

// RelationID returns the identifier attribute name for a relational
// attribute, e.g. "category" -> "category_id". Reading it yields the
// foreign key without loading the related object.
func RelationID(name string) string {
	return name + IDSuffix
}

// Getter reads named attributes off a domain object.
//
// A missing attribute is not an error: implementations return
// (nil, nil). The two recoverable traversal conditions are reported
// with errors matching rowmap.ErrNoIdentity and rowmap.ErrNotExist;
// any other error is surfaced to the caller unchanged.
type Getter interface {
	Attribute(name string) (any, error)
}

// Setter writes named attributes onto a domain object.
type Setter interface {
	SetAttribute(name string, value any) error
}

// Schema exposes the object's static field-kind table. FieldKind
// reports false for names the schema does not describe.
type Schema interface {
	FieldKind(name string) (Kind, bool)
}

// Computed is a value resolved by invocation rather than storage.
// Attribute traversal calls Compute on a terminal Computed value,
// unless it is also a Collection.
type Computed interface {
	Compute() any
}

// Collection marks manager-like accessors that expose a Compute method
// but must not be invoked during traversal.
type Collection interface {
	Collection()
}

// ComputedFunc adapts a zero-argument function into a Computed value.
type ComputedFunc func() any

// Compute invokes the function.
func (f ComputedFunc) Compute() any { return f() }

// AsGetter adapts v into a Getter. Values implementing Getter are
// returned as-is; structs and struct pointers are wrapped by the
// reflection adapter with an empty schema. Everything else reports
// false.
func AsGetter(v any) (Getter, bool) {
	if g, ok := v.(Getter); ok {
		return g, true
	}
	if s, ok := newStruct(v, nil); ok {
		return s, true
	}
	return nil, false
}

// AsSetter adapts v into a Setter. Only values implementing Setter and
// pointers to structs qualify; struct values are not addressable and
// report false.
func AsSetter(v any) (Setter, bool) {
	if s, ok := v.(Setter); ok {
		return s, true
	}
	if s, ok := newStruct(v, nil); ok && s.settable() {
		return s, true
	}
	return nil, false
}

// AsSchema reports the object's schema, if it exposes one.
func AsSchema(v any) (Schema, bool) {
	s, ok := v.(Schema)
	return s, ok
}
