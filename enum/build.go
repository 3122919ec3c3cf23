package enum

import (
	"cmp"
	"fmt"
	"slices"
)

// Config describes one enumeration type declaration.
type Config struct {
	// Name is the type name; valueless declarations hinted with it (or
	// with SelfHint) become auto-valued members.
	Name string
	// Decls is the declaration list in source order.
	Decls []Decl
	// Construct optionally builds extension fields for each canonical
	// member. Shape: func(value, extra..., name string), optionally
	// returning Fields and/or error. Validated before any member is
	// constructed; see ContractError.
	Construct any
	// Hook runs once per canonical member, in declaration order, after
	// every member exists and before the type is sealed.
	Hook func(*Member) error
	// Base derives this type from an existing one; see Type.Derive.
	Base *Type
}

// New builds an enumeration type from a declaration list. The build is
// a one-shot pipeline: scan, resolve values, construct members, run the
// hook pass, seal. Any failure discards the partial type entirely.
func New(cfg Config) (*Type, error) {
	if cfg.Base != nil {
		base := cfg.Base
		cfg.Base = nil
		return base.derive(cfg)
	}
	return build(cfg, nil)
}

func build(cfg Config, base *Type) (*Type, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("enum: empty type name")
	}
	res, err := scan(cfg.Name, cfg.Decls)
	if err != nil {
		return nil, err
	}
	t := &Type{
		name:       cfg.Name,
		byName:     make(map[string]*Member, len(res.specs)),
		byValue:    make(map[Value]*Member, len(res.specs)),
		zeroValued: res.zeroValued,
		base:       base,
	}
	switch {
	case cfg.Construct != nil:
		t.ctor, err = compileCtor(cfg.Name, cfg.Construct)
		if err != nil {
			return nil, err
		}
	case base != nil:
		t.ctor = base.ctor
	}
	t.hook = cfg.Hook
	if t.hook == nil && base != nil {
		t.hook = base.hook
	}

	if len(res.specs) == 0 {
		// Open base type: no members, never sealed, freely derivable.
		return t, nil
	}

	orderOf := make(map[*Member]int, len(res.specs))

	// Pass 1: value-given declarations in source order. The first to
	// claim a value becomes canonical; later ones fold into it.
	for i := range res.specs {
		sp := &res.specs[i]
		if sp.auto {
			continue
		}
		if err := t.place(sp, orderOf); err != nil {
			return nil, err
		}
	}

	// Pass 2: auto-valued declarations, resolved strictly after every
	// explicit value so explicit declarations win canonical status. An
	// allocated value that an explicit member already claimed turns the
	// auto declaration into an alias of that member.
	alloc := newAllocator(res.zeroValued)
	for i := range res.specs {
		sp := &res.specs[i]
		if !sp.auto {
			continue
		}
		sp.value = alloc.next()
		if err := t.place(sp, orderOf); err != nil {
			return nil, err
		}
	}

	// Canonical iteration order is declaration order, not pass order.
	slices.SortFunc(t.members, func(a, b *Member) int {
		return cmp.Compare(orderOf[a], orderOf[b])
	})

	if t.hook != nil {
		for _, m := range t.members {
			if err := t.hook(m); err != nil {
				return nil, fmt.Errorf("enum %s: hook for %s: %w", t.name, m.name, err)
			}
		}
	}

	t.finalized = true
	return t, nil
}

// place registers one resolved spec: as an alias when its value is
// already claimed, as a freshly constructed canonical member otherwise.
func (t *Type) place(sp *spec, orderOf map[*Member]int) error {
	if existing, ok := t.byValue[sp.value]; ok {
		t.byName[sp.name] = existing
		return nil
	}
	m, err := t.construct(sp)
	if err != nil {
		return err
	}
	orderOf[m] = sp.order
	t.members = append(t.members, m)
	t.byName[sp.name] = m
	t.byValue[sp.value] = m
	return nil
}

func (t *Type) construct(sp *spec) (*Member, error) {
	m := &Member{typ: t, name: sp.name, value: sp.value}
	if t.ctor == nil {
		if len(sp.extra) > 0 {
			return nil, &ContractError{
				Type:   t.name,
				Reason: fmt.Sprintf("member %s carries %d extra payload values but no constructor is declared", sp.name, len(sp.extra)),
			}
		}
		return m, nil
	}
	fields, err := t.ctor.call(sp.value, sp.extra, sp.name)
	if err != nil {
		return nil, err
	}
	m.fields = fields
	return m, nil
}
