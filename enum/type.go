package enum

import (
	"fmt"
	"slices"
)

// Type is an enumeration type: an ordered, closed set of singleton
// members addressable by name (aliases included) and by value.
//
// A finalized Type is immutable and safe for concurrent reads without
// locking. A Type built from a declaration list with no member entries
// stays open: it carries a constructor and hook for derived types but
// has no members of its own.
type Type struct {
	name       string
	members    []*Member          // canonical members, declaration order
	byName     map[string]*Member // canonical and alias names
	byValue    map[Value]*Member  // first writer per value wins
	zeroValued bool
	finalized  bool
	base       *Type
	ctor       *ctor
	hook       func(*Member) error
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Base returns the type this one was derived from, or nil.
func (t *Type) Base() *Type { return t.base }

// Finalized reports whether the type is sealed against modification and
// against member-bearing subclassing.
func (t *Type) Finalized() bool { return t.finalized }

// ZeroValued reports whether auto-numbering for this type starts at 0.
func (t *Type) ZeroValued() bool { return t.zeroValued }

// Len returns the number of canonical members, aliases excluded.
func (t *Type) Len() int { return len(t.members) }

// Members returns the canonical members in declaration order. The slice
// is a copy; aliases never appear as distinct elements.
func (t *Type) Members() []*Member {
	return slices.Clone(t.members)
}

// ByName resolves a canonical or alias name to its member.
func (t *Type) ByName(name string) (*Member, error) {
	m, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s[%q]: %w", t.name, name, ErrUnknownName)
	}
	return m, nil
}

// ByValue resolves a value to the member that first claimed it.
func (t *Type) ByValue(v Value) (*Member, error) {
	nv, err := normalizeValue(v)
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", t.name, v, ErrUnknownValue)
	}
	m, ok := t.byValue[nv]
	if !ok {
		return nil, fmt.Errorf("%s(%v): %w", t.name, v, ErrUnknownValue)
	}
	return m, nil
}

// HasName reports whether name resolves to a member; aliases count.
func (t *Type) HasName(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// HasValue reports whether any member claimed the value.
func (t *Type) HasValue(v Value) bool {
	nv, err := normalizeValue(v)
	if err != nil {
		return false
	}
	_, ok := t.byValue[nv]
	return ok
}
