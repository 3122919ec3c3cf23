package manifest

import (
	"errors"
	"testing"

	"fastenum/enum"
)

const tomlDoc = `
[enums.Color]

[[enums.Color.members]]
name = "RED"
value = "red"

[[enums.Color.members]]
name = "GREEN"
value = "green"

[enums.Priority]
zero_valued = true

[[enums.Priority.members]]
name = "LOW"

[[enums.Priority.members]]
name = "HIGH"
value = 10
`

func TestBuildFromTOML(t *testing.T) {
	f, err := DecodeTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	types, err := f.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	color, ok := types["Color"]
	if !ok {
		t.Fatalf("Color missing from build result")
	}
	red, err := color.ByValue("red")
	if err != nil || red.Name() != "RED" {
		t.Fatalf("Color lookup: %v, %v", red, err)
	}
	prio := types["Priority"]
	low, err := prio.ByName("LOW")
	if err != nil {
		t.Fatalf("Priority.LOW: %v", err)
	}
	if low.Value() != 0 {
		t.Fatalf("zero_valued manifest should auto-number from 0, got %v", low.Value())
	}
	high, err := prio.ByName("HIGH")
	if err != nil || high.Value() != 10 {
		t.Fatalf("Priority.HIGH: %v, %v", high, err)
	}
}

const yamlDoc = `
enums:
  Status:
    members:
      - name: ACTIVE
      - name: DONE
      - name: FINISHED
        value: 2
`

func TestBuildFromYAML(t *testing.T) {
	f, err := DecodeYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	types, err := f.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	status := types["Status"]
	active, err := status.ByName("ACTIVE")
	if err != nil || active.Value() != 1 {
		t.Fatalf("ACTIVE: %v, %v", active, err)
	}
	done, err := status.ByName("DONE")
	if err != nil || done.Value() != 2 {
		t.Fatalf("DONE: %v, %v", done, err)
	}
	// FINISHED claims 2 explicitly and resolves first; the auto-valued
	// DONE collides with it and folds into an alias.
	finished, err := status.ByName("FINISHED")
	if err != nil {
		t.Fatalf("FINISHED: %v", err)
	}
	if done != finished {
		t.Fatalf("DONE should alias FINISHED")
	}
	if status.Len() != 2 {
		t.Fatalf("Status should have 2 canonical members, got %d", status.Len())
	}
}

func TestForeignHintExcludesMember(t *testing.T) {
	f := &File{Enums: map[string]TypeDecl{
		"E": {Members: []MemberDecl{
			{Name: "KEEP"},
			{Name: "NOTE", Hint: "Other"},
		}},
	}}
	types, err := f.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	typ := types["E"]
	if !typ.HasName("KEEP") {
		t.Fatalf("self-hinted member should exist")
	}
	if typ.HasName("NOTE") {
		t.Fatalf("foreign-hinted entry must be excluded")
	}
}

const severityDoc = `
[enums.Severity]

[[enums.Severity.members]]
name = "LOW"
value = 1
extra = ["barely worth a look"]

[[enums.Severity.members]]
name = "HIGH"
value = 2
extra = ["drop everything"]
`

func TestBuildWithConstructAndHook(t *testing.T) {
	f, err := DecodeTOML([]byte(severityDoc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	hooked := 0
	types, err := f.Build(
		WithConstruct("Severity", func(value int, desc string, name string) enum.Fields {
			return enum.Fields{"description": desc}
		}),
		WithHook("Severity", func(m *enum.Member) error {
			hooked++
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	sev := types["Severity"]
	high, err := sev.ByName("HIGH")
	if err != nil {
		t.Fatalf("HIGH: %v", err)
	}
	if desc, _ := high.Field("description"); desc != "drop everything" {
		t.Fatalf("HIGH description = %v", desc)
	}
	if hooked != 2 {
		t.Fatalf("hook should run once per member, ran %d times", hooked)
	}
}

func TestBuildWithBase(t *testing.T) {
	base, err := enum.New(enum.Config{
		Name: "Base",
		Construct: func(value int, desc string, name string) enum.Fields {
			return enum.Fields{"description": desc}
		},
	})
	if err != nil {
		t.Fatalf("base build failed: %v", err)
	}
	f := &File{Enums: map[string]TypeDecl{
		"Derived": {Members: []MemberDecl{
			{Name: "ONE", Value: 1, Extra: []any{"first"}},
		}},
	}}
	types, err := f.Build(WithBase("Derived", base))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	m, err := types["Derived"].ByName("ONE")
	if err != nil {
		t.Fatalf("ONE: %v", err)
	}
	if desc, _ := m.Field("description"); desc != "first" {
		t.Fatalf("inherited constructor should run, description = %v", desc)
	}
	if types["Derived"].Base() != base {
		t.Fatalf("derived type should record its base")
	}
}

func TestBuildErrors(t *testing.T) {
	empty := &File{Enums: map[string]TypeDecl{
		"E": {Members: []MemberDecl{{}}},
	}}
	if _, err := empty.Build(); err == nil {
		t.Fatalf("member without a name should fail")
	}

	extras := &File{Enums: map[string]TypeDecl{
		"E": {Members: []MemberDecl{
			{Name: "A", Value: 1, Extra: []any{"x"}},
		}},
	}}
	_, err := extras.Build()
	var ce *enum.ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("extras without a constructor should surface ContractError, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeTOML([]byte("enums = ???")); err == nil {
		t.Fatalf("malformed TOML should fail")
	}
	if _, err := DecodeYAML([]byte(":\n\t-")); err == nil {
		t.Fatalf("malformed YAML should fail")
	}
}
