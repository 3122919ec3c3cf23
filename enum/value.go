package enum

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"
)

// normalizeValue folds integer values of any kind and width into int so
// that value lookups and auto-numbering collisions behave the same for
// int8(3), uint64(3) and 3. Non-integer values pass through untouched
// but must be comparable, since they serve as registry keys.
func normalizeValue(v Value) (Value, error) {
	switch v.(type) {
	case nil, int, string, bool:
		return v, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := safecast.Conv[int](rv.Int())
		if err != nil {
			return nil, fmt.Errorf("value %v overflows int: %w", v, err)
		}
		return n, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := safecast.Conv[int](rv.Uint())
		if err != nil {
			return nil, fmt.Errorf("value %v overflows int: %w", v, err)
		}
		return n, nil
	default:
		if !rv.Comparable() {
			return nil, fmt.Errorf("value of type %T is not comparable", v)
		}
		return v, nil
	}
}

// truthy interprets a directive value the way loosely typed
// declaration facilities do: zero numbers, empty strings and nil are
// false, everything else is true.
func truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	default:
		return true
	}
}

// unwrapPayload splits a declared right-hand payload into the member
// value and the extra constructor arguments.
func unwrapPayload(v Value) (Value, []Value) {
	tup, ok := v.(Tuple)
	if !ok {
		return v, nil
	}
	if len(tup) == 0 {
		return nil, nil
	}
	return tup[0], tup[1:]
}
