package enum

import "fmt"

// Derive declares a subtype of t.
//
// When t is sealed and carries members, only an alias declaration is
// accepted: a declaration list contributing zero member entries yields
// a type that shares every member and lookup table with t by reference
// and is sealed immediately. A declaration adding members fails with
// ErrSubclassExtension.
//
// An open (memberless) base may be derived freely. Each derived type
// builds its own disjoint member set, inherits the base constructor and
// hook unless the declaration overrides them, and restarts
// auto-numbering.
func (t *Type) Derive(cfg Config) (*Type, error) {
	if cfg.Base != nil && cfg.Base != t {
		return nil, fmt.Errorf("enum %s: conflicting base types", cfg.Name)
	}
	cfg.Base = nil
	return t.derive(cfg)
}

func (t *Type) derive(cfg Config) (*Type, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("enum: empty type name")
	}
	if !t.finalized {
		return build(cfg, t)
	}
	res, err := scan(cfg.Name, cfg.Decls)
	if err != nil {
		return nil, err
	}
	if len(res.specs) > 0 {
		return nil, fmt.Errorf("enum %s: base %s: %w", cfg.Name, t.name, ErrSubclassExtension)
	}
	// Alias type: shares the base registry and members by reference for
	// the lifetime of the process.
	return &Type{
		name:       cfg.Name,
		members:    t.members,
		byName:     t.byName,
		byValue:    t.byValue,
		zeroValued: t.zeroValued,
		finalized:  true,
		base:       t,
		ctor:       t.ctor,
		hook:       t.hook,
	}, nil
}
