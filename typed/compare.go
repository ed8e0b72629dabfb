package typed

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/typed.go/constraints"
	"github.com/iotaledger/typed.go/lo"
)

// compareRaw defines the total order of raw values. Types that implement constraints.Comparable decide on their own,
// predeclared types use their natural order and everything else is compared by kind, where arrays and structs are
// ordered lexicographically by their elements and fields.
func compareRaw[Raw comparable](a, b Raw) int {
	if a == b {
		return 0
	}

	if ordered, isOrdered := any(a).(constraints.Comparable[Raw]); isOrdered {
		return ordered.Compare(b)
	}

	switch typedA := any(a).(type) {
	case string:
		return lo.Comparator(typedA, any(b).(string))
	case int:
		return lo.Comparator(typedA, any(b).(int))
	case int8:
		return lo.Comparator(typedA, any(b).(int8))
	case int16:
		return lo.Comparator(typedA, any(b).(int16))
	case int32:
		return lo.Comparator(typedA, any(b).(int32))
	case int64:
		return lo.Comparator(typedA, any(b).(int64))
	case uint:
		return lo.Comparator(typedA, any(b).(uint))
	case uint8:
		return lo.Comparator(typedA, any(b).(uint8))
	case uint16:
		return lo.Comparator(typedA, any(b).(uint16))
	case uint32:
		return lo.Comparator(typedA, any(b).(uint32))
	case uint64:
		return lo.Comparator(typedA, any(b).(uint64))
	case uintptr:
		return lo.Comparator(typedA, any(b).(uintptr))
	case float32:
		return lo.Comparator(typedA, any(b).(float32))
	case float64:
		return lo.Comparator(typedA, any(b).(float64))
	}

	return compareReflect(reflect.ValueOf(a), reflect.ValueOf(b))
}

var intType = reflect.TypeOf(0)

func compareReflect(a, b reflect.Value) int {
	if result, isOrdered := compareMethod(a, b); isOrdered {
		return result
	}

	//nolint:exhaustive // the remaining kinds have no order
	switch a.Kind() {
	case reflect.String:
		return lo.Comparator(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lo.Comparator(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return lo.Comparator(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return lo.Comparator(a.Float(), b.Float())
	case reflect.Bool:
		return lo.Comparator(lo.Cond(a.Bool(), 1, 0), lo.Cond(b.Bool(), 1, 0))
	case reflect.Array:
		for i := range a.Len() {
			if result := compareReflect(a.Index(i), b.Index(i)); result != 0 {
				return result
			}
		}

		return 0
	case reflect.Struct:
		for i := range a.NumField() {
			if result := compareReflect(a.Field(i), b.Field(i)); result != 0 {
				return result
			}
		}

		return 0
	default:
		panic(errors.Wrapf(ErrUnorderedRaw, "values of kind %s can not be ordered", a.Kind()))
	}
}

// compareMethod orders values whose type has a "Compare(T) int" method, like time.Time or constraints.Comparable
// implementations nested in arrays and structs. Values read from unexported fields can not be called into and are
// reported as not ordered.
func compareMethod(a, b reflect.Value) (result int, isOrdered bool) {
	if !a.CanInterface() || !b.CanInterface() {
		return 0, false
	}

	method := a.MethodByName("Compare")
	if !method.IsValid() {
		return 0, false
	}

	if methodType := method.Type(); methodType.NumIn() != 1 || methodType.In(0) != a.Type() || methodType.NumOut() != 1 || methodType.Out(0) != intType {
		return 0, false
	}

	return int(method.Call([]reflect.Value{b})[0].Int()), true
}
