package enum

import "fmt"

// Member is a single enumeration member. Exactly one Member exists per
// (Type, value) pair; alias names resolve to the same pointer, so
// identity comparison is the equality test.
type Member struct {
	typ    *Type
	name   string // canonical declared name, even when reached via alias
	value  Value
	fields Fields
}

// Type returns the owning enumeration type.
func (m *Member) Type() *Type { return m.typ }

// Name returns the canonical declared name.
func (m *Member) Name() string { return m.name }

// Value returns the member's value.
func (m *Member) Value() Value { return m.value }

// Field returns a named extension field set by the constructor or the
// post-construction hook.
func (m *Member) Field(name string) (Value, bool) {
	v, ok := m.fields[name]
	return v, ok
}

// Fields returns a copy of the member's extension fields.
func (m *Member) Fields() Fields {
	if len(m.fields) == 0 {
		return nil
	}
	out := make(Fields, len(m.fields))
	for k, v := range m.fields {
		out[k] = v
	}
	return out
}

// Set assigns an extension field. Hooks run before the owning type is
// sealed and may assign freely; afterwards Set fails with ErrImmutable
// and the member is left untouched.
func (m *Member) Set(name string, v Value) error {
	if m.typ.finalized {
		return fmt.Errorf("%s.%s: %w", m.typ.name, m.name, ErrImmutable)
	}
	if m.fields == nil {
		m.fields = make(Fields, 1)
	}
	m.fields[name] = v
	return nil
}

// Delete removes an extension field, failing with ErrImmutable once the
// owning type is sealed.
func (m *Member) Delete(name string) error {
	if m.typ.finalized {
		return fmt.Errorf("%s.%s: %w", m.typ.name, m.name, ErrImmutable)
	}
	delete(m.fields, name)
	return nil
}

func (m *Member) String() string {
	return m.typ.name + "." + m.name
}

// GoString renders the debug form "<Type.NAME: value>".
func (m *Member) GoString() string {
	return fmt.Sprintf("<%s.%s: %v>", m.typ.name, m.name, m.value)
}
