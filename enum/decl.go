package enum

// Value is a member's payload. Values must be comparable; integer
// values of any width are normalized to int before registration so
// explicit and auto-assigned values collide predictably.
type Value = any

// Tuple carries a declared value plus positional constructor arguments.
// A non-tuple payload behaves as a one-element tuple.
type Tuple []Value

// Fields holds the named extension fields attached to a member by its
// constructor or post-construction hook.
type Fields map[string]Value

// ZeroValued names the directive entry controlling the auto-numbering
// start: a truthy directive value starts auto-assigned members at 0
// instead of 1. The directive never becomes a member.
const ZeroValued = "_ZERO_VALUED"

// SelfHint marks a valueless declaration as a member of the enclosing
// type without repeating the type name.
const SelfHint = "<self>"

// Decl is one raw entry of a type declaration list, in source order.
// Entries that are not member declarations (helpers, configuration,
// field annotations of foreign types) are filtered during scanning.
type Decl struct {
	Name     string
	Value    Value // declared payload; meaningful only when HasValue
	HasValue bool
	Hint     string // type hint on a valueless declaration
}

// Val declares a member with an explicit value.
func Val(name string, value Value) Decl {
	return Decl{Name: name, Value: value, HasValue: true}
}

// Payload declares a member with an explicit value plus extra
// constructor arguments, unwrapped positionally at build time.
func Payload(name string, value Value, extra ...Value) Decl {
	tup := make(Tuple, 0, len(extra)+1)
	tup = append(tup, value)
	tup = append(tup, extra...)
	return Decl{Name: name, Value: tup, HasValue: true}
}

// Light declares an auto-valued member of the enclosing type.
func Light(name string) Decl {
	return Decl{Name: name, Hint: SelfHint}
}

// ZeroBased returns the directive entry that starts auto-numbering at 0.
func ZeroBased() Decl {
	return Decl{Name: ZeroValued, Value: true, HasValue: true}
}
