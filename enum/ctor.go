package enum

import (
	"fmt"
	"reflect"
)

var (
	errType    = reflect.TypeOf((*error)(nil)).Elem()
	fieldsType = reflect.TypeOf(Fields(nil))
	stringType = reflect.TypeOf("")
)

// ctor is a compiled constructor contract. The declared function shape
// is func(value, extra..., name string); it may return Fields, error,
// or (Fields, error). The trailing name parameter is mandatory.
type ctor struct {
	owner     string
	fn        reflect.Value
	ft        reflect.Type
	hasFields bool
	hasErr    bool
}

// compileCtor validates the constructor shape once, before any member
// is constructed. Shape violations abort the whole type build.
func compileCtor(typeName string, fn any) (*ctor, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, &ContractError{Type: typeName, Reason: fmt.Sprintf("constructor is %T, not a function", fn)}
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return nil, &ContractError{Type: typeName, Reason: "final parameter must be the member name, not variadic"}
	}
	if ft.NumIn() < 2 {
		return nil, &ContractError{Type: typeName, Reason: "constructor must take at least (value, name)"}
	}
	if ft.In(ft.NumIn()-1) != stringType {
		return nil, &ContractError{Type: typeName, Reason: "final parameter must be the member name (string)"}
	}
	c := &ctor{owner: typeName, fn: v, ft: ft}
	switch ft.NumOut() {
	case 0:
	case 1:
		switch ft.Out(0) {
		case fieldsType:
			c.hasFields = true
		case errType:
			c.hasErr = true
		default:
			return nil, &ContractError{Type: typeName, Reason: fmt.Sprintf("result must be Fields or error, got %s", ft.Out(0))}
		}
	case 2:
		if ft.Out(0) != fieldsType || ft.Out(1) != errType {
			return nil, &ContractError{Type: typeName, Reason: "results must be (Fields, error)"}
		}
		c.hasFields = true
		c.hasErr = true
	default:
		return nil, &ContractError{Type: typeName, Reason: "too many results"}
	}
	return c, nil
}

// call invokes the constructor for one member. Arity and argument type
// mismatches surface while the type is still being defined, so they are
// contract errors rather than call-time panics.
func (c *ctor) call(value Value, extra []Value, name string) (Fields, error) {
	want := c.ft.NumIn()
	got := 2 + len(extra)
	if got != want {
		return nil, &ContractError{
			Type:   c.owner,
			Reason: fmt.Sprintf("member %s: constructor takes %d arguments, declaration supplies %d", name, want, got),
		}
	}
	args := make([]reflect.Value, 0, want)
	raws := make([]Value, 0, want-1)
	raws = append(raws, value)
	raws = append(raws, extra...)
	for i, raw := range raws {
		av, err := argValue(raw, c.ft.In(i))
		if err != nil {
			return nil, &ContractError{
				Type:   c.owner,
				Reason: fmt.Sprintf("member %s: argument %d: %v", name, i, err),
			}
		}
		args = append(args, av)
	}
	args = append(args, reflect.ValueOf(name))
	out := c.fn.Call(args)
	var fields Fields
	idx := 0
	if c.hasFields {
		if f, ok := out[0].Interface().(Fields); ok {
			fields = f
		}
		idx = 1
	}
	if c.hasErr && !out[idx].IsNil() {
		return nil, fmt.Errorf("enum %s: constructor for %s: %w", c.owner, name, out[idx].Interface().(error))
	}
	return fields, nil
}

// argValue adapts a declared payload element to a constructor parameter
// type. Assignment is direct where possible; numeric kinds convert,
// anything else is a mismatch.
func argValue(raw Value, pt reflect.Type) (reflect.Value, error) {
	if raw == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(pt), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
		}
	}
	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(pt) {
		return rv, nil
	}
	if isNumericKind(rv.Kind()) && isNumericKind(pt.Kind()) && rv.CanConvert(pt) {
		return rv.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%T is not assignable to %s", raw, pt)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
