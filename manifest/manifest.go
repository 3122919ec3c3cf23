// Package manifest builds enumeration types from declarative TOML or
// YAML documents. A manifest entry maps one-to-one onto a declaration
// list: valued members, lightweight auto-numbered members, the
// zero-based numbering switch and foreign-type hints all round-trip
// through the document form.
package manifest

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fastenum/enum"
)

// MemberDecl is one member entry of a manifest enum. An entry without a
// value becomes a lightweight auto-numbered member; setting hint to a
// name other than the enclosing type excludes the entry, mirroring a
// field annotation of a foreign type.
type MemberDecl struct {
	Name  string `toml:"name" yaml:"name"`
	Value any    `toml:"value" yaml:"value"`
	Extra []any  `toml:"extra" yaml:"extra"`
	Hint  string `toml:"hint" yaml:"hint"`
}

// TypeDecl is one enum declaration in a manifest.
type TypeDecl struct {
	ZeroValued bool         `toml:"zero_valued" yaml:"zero_valued"`
	Members    []MemberDecl `toml:"members" yaml:"members"`
}

// File is a decoded manifest document.
type File struct {
	Enums map[string]TypeDecl `toml:"enums" yaml:"enums"`
}

// DecodeTOML parses a TOML manifest document.
func DecodeTOML(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("manifest: failed to parse TOML: %w", err)
	}
	return &f, nil
}

// DecodeYAML parses a YAML manifest document.
func DecodeYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("manifest: failed to parse YAML: %w", err)
	}
	return &f, nil
}

// Option attaches code-level collaborators to manifest types; they are
// keyed by type name.
type Option func(*buildOptions)

type buildOptions struct {
	construct map[string]any
	hooks     map[string]func(*enum.Member) error
	bases     map[string]*enum.Type
}

// WithConstruct sets the constructor contract for the named type.
func WithConstruct(typeName string, fn any) Option {
	return func(o *buildOptions) {
		o.construct[typeName] = fn
	}
}

// WithHook sets the post-construction hook for the named type.
func WithHook(typeName string, hook func(*enum.Member) error) Option {
	return func(o *buildOptions) {
		o.hooks[typeName] = hook
	}
}

// WithBase derives the named type from an existing one.
func WithBase(typeName string, base *enum.Type) Option {
	return func(o *buildOptions) {
		o.bases[typeName] = base
	}
}

// Build constructs every declared enum type. Types build in sorted name
// order so identical manifests produce identical build sequences.
func (f *File) Build(opts ...Option) (map[string]*enum.Type, error) {
	o := &buildOptions{
		construct: make(map[string]any),
		hooks:     make(map[string]func(*enum.Member) error),
		bases:     make(map[string]*enum.Type),
	}
	for _, opt := range opts {
		opt(o)
	}
	names := make([]string, 0, len(f.Enums))
	for name := range f.Enums {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*enum.Type, len(names))
	for _, name := range names {
		decls, err := declList(name, f.Enums[name])
		if err != nil {
			return nil, err
		}
		t, err := enum.New(enum.Config{
			Name:      name,
			Decls:     decls,
			Construct: o.construct[name],
			Hook:      o.hooks[name],
			Base:      o.bases[name],
		})
		if err != nil {
			return nil, fmt.Errorf("manifest: %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func declList(typeName string, td TypeDecl) ([]enum.Decl, error) {
	decls := make([]enum.Decl, 0, len(td.Members)+1)
	if td.ZeroValued {
		decls = append(decls, enum.ZeroBased())
	}
	for _, md := range td.Members {
		if md.Name == "" {
			return nil, fmt.Errorf("manifest: %s: member with empty name", typeName)
		}
		switch {
		case md.Value == nil && len(md.Extra) == 0:
			hint := md.Hint
			if hint == "" {
				hint = typeName
			}
			decls = append(decls, enum.Decl{Name: md.Name, Hint: hint})
		case len(md.Extra) > 0:
			decls = append(decls, enum.Payload(md.Name, md.Value, md.Extra...))
		default:
			decls = append(decls, enum.Val(md.Name, md.Value))
		}
	}
	return decls, nil
}
