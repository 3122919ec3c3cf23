package enum

import (
	"fmt"
	"unicode"
)

// spec is one classified member declaration. Specs exist only for the
// duration of a build pass.
type spec struct {
	name  string
	value Value   // declared value; nil until allocated for auto specs
	extra []Value // constructor payload beyond the value
	auto  bool
	order int // declaration position, drives every ordering decision
}

// scanResult is the classified declaration list for one type build.
type scanResult struct {
	specs      []spec
	zeroValued bool
}

// scan walks the declaration list once. It extracts the zero-based
// directive, classifies member entries as value-given or auto-valued
// and silently filters everything else: helper values, configuration,
// and valueless field annotations whose hint does not name the
// enclosing type.
func scan(typeName string, decls []Decl) (scanResult, error) {
	var res scanResult
	taken := make(map[string]struct{}, len(decls))
	for i, d := range decls {
		if d.Name == ZeroValued {
			if d.HasValue {
				res.zeroValued = truthy(d.Value)
			}
			continue
		}
		if !isVariantName(d.Name) {
			continue
		}
		if !d.HasValue {
			if d.Hint != typeName && d.Hint != SelfHint {
				continue
			}
			if _, dup := taken[d.Name]; dup {
				return scanResult{}, fmt.Errorf("enum %s: duplicate declaration %s", typeName, d.Name)
			}
			taken[d.Name] = struct{}{}
			res.specs = append(res.specs, spec{name: d.Name, auto: true, order: i})
			continue
		}
		if _, dup := taken[d.Name]; dup {
			return scanResult{}, fmt.Errorf("enum %s: duplicate declaration %s", typeName, d.Name)
		}
		taken[d.Name] = struct{}{}
		value, extra := unwrapPayload(d.Value)
		value, err := normalizeValue(value)
		if err != nil {
			return scanResult{}, fmt.Errorf("enum %s: member %s: %w", typeName, d.Name, err)
		}
		res.specs = append(res.specs, spec{name: d.Name, value: value, extra: extra, order: i})
	}
	return res, nil
}

// isVariantName reports whether a declared name follows the member
// naming rule: no leading underscore, at least one upper-case letter,
// no lower-case letters.
func isVariantName(name string) bool {
	if name == "" || name[0] == '_' {
		return false
	}
	upper := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	return upper
}
