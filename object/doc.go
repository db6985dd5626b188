// Package object defines the capability surface through which fields
// read and write domain objects.
//
// A domain object is anything that exposes named attributes. The three
// capabilities are split so that partial implementations stay useful:
//
//	object.Getter   // Attribute(name) (any, error)
//	object.Setter   // SetAttribute(name, value) error
//	object.Schema   // FieldKind(name) (Kind, bool)
//
// Schema is the static field-kind table used to detect relational
// attributes. Objects without a schema are treated as all-scalar.
//
// # Struct adapter
//
// Plain structs and struct pointers are adapted via reflection. The
// adapter maps snake_case attribute names to exported Go field names:
//
//	type User struct {
//	    Name       string
//	    CategoryID int64
//	    Category   *Category
//	}
//
//	obj := object.NewStruct(&u, map[string]object.Kind{
//	    "category": object.KindRelation,
//	})
//	v, _ := obj.Attribute("category_id") // u.CategoryID
//
// # Computed attributes
//
// A resolved value implementing Computed is invoked with no arguments
// at the end of attribute traversal, so derived values can be exposed
// alongside stored ones:
//
//	object.ComputedFunc(func() any { return u.First + " " + u.Last })
//
// Collection marks manager-like accessors that must never be invoked
// even though they implement Computed.
package object
