// Package field implements the mapping between one dataset column and
// one attribute path on a domain object.
//
// A Field is built fluently and reused across many objects and rows:
//
//	field.New("Name").Attribute("name")
//	field.New("cat").Attribute("category")
//	field.New("Total").Attribute("order__total").ReadOnly()
//
// # Attribute paths
//
// Attribute paths are "__"-delimited. Each segment except the last
// must resolve to a non-nil intermediate object; a missing or nil
// intermediate short-circuits resolution to nil instead of failing.
//
// A single-segment path naming a relational attribute (per the
// object's schema) is resolved through the <name>_id identifier
// attribute, so reading or exporting a foreign key never loads the
// related object. Multi-segment paths never take this shortcut.
//
// # Defaults
//
// A cleaned value that evaluates to empty is replaced by the field's
// default, unless the default was explicitly withheld:
//
//	field.New("count").Attribute("count").Default(1)
//	field.New("code").Attribute("code").DefaultFunc(nextCode)
//	field.New("note").Attribute("note").NoDefault()
//
// A function default is invoked once and its result memoized. Fields
// are otherwise stateless, but because of that single cache fill a
// Field instance must not be shared across concurrent import passes.
package field
