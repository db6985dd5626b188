package field

type defaultKind uint8

const (
	// defaultNil substitutes nil for empty cleaned values. This is the
	// state of a freshly constructed field.
	defaultNil defaultKind = iota
	// defaultNotProvided disables substitution entirely.
	defaultNotProvided
	// defaultValue substitutes a literal value.
	defaultValue
	// defaultFunc substitutes the result of a function, resolved once.
	defaultFunc
)

// fallback is the tagged default configuration of a field. The zero
// value substitutes nil for empty cleaned values.
type fallback struct {
	kind  defaultKind
	value any
	fn    func() any
}

// provided reports whether substitution applies at all.
func (d *fallback) provided() bool {
	return d.kind != defaultNotProvided
}

// resolve returns the configured fallback value. A function default is
// invoked on first resolution only; its result is memoized and the
// fallback degrades to a literal value.
func (d *fallback) resolve() any {
	if d.kind == defaultFunc {
		d.value = d.fn()
		d.kind = defaultValue
		d.fn = nil
	}
	return d.value
}
