// Package resource groups fields into named, ordered mappings between
// a domain object type and a dataset layout.
//
// A resource can be declared in code:
//
//	books := resource.New("books",
//	    field.New("Name").Attribute("name"),
//	    field.New("cat").Attribute("category"),
//	)
//
// or loaded from a declarative YAML mapping:
//
//	name: books
//	fields:
//	  - column: Name
//	  - column: cat
//	    attribute: category
//	  - column: Published
//	    attribute: published
//	    readonly: true
//
// An omitted attribute is derived from the column name by underscore
// inflection ("CategoryID" -> "category_id").
//
// Resources translate one object or one row at a time; iterating a
// dataset and transactional batching belong to the caller.
package resource
