// Package rowmap maps attributes of in-memory domain objects to flat
// columnar rows and back, one cell per field.
//
// The core abstraction lives in the field subpackage: a Field binds one
// dataset column to one (possibly nested) attribute path on a domain
// object and delegates value conversion to a widget:
//
//	f := field.New("Name").Attribute("name")
//	v, err := f.Clean(rowmap.Row{"Name": "Alice"})  // import direction
//	s, err := f.Export(obj)                         // export direction
//
// Domain objects are accessed through the capability surface in the
// object subpackage. Plain structs work out of the box via a reflection
// adapter; ORM-backed records can implement the interfaces directly:
//
//	obj := object.NewStruct(&user, map[string]object.Kind{
//	    "category": object.KindRelation,
//	})
//
// Relational attributes are never dereferenced during export. A
// single-segment relational path reads the <name>_id identifier
// attribute instead, so exporting foreign keys does not load the
// related record.
//
// The resource subpackage groups Fields into named, ordered sets and
// can build them from declarative YAML mapping definitions. Dataset
// parsing, file formats and bulk row iteration are out of scope; rows
// enter and leave this module as rowmap.Row values.
package rowmap
