package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface renders the given value. Stringers are asked for their own representation, slices and arrays are rendered
// element by element and everything else falls back to the fmt verb %v.
func Interface(value any) string {
	switch typeCastedValue := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(typeCastedValue)
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case int:
		return strconv.Itoa(typeCastedValue)
	case uint64:
		return strconv.FormatUint(typeCastedValue, 10)
	case reflect.Value:
		if !typeCastedValue.IsValid() {
			return "<nil>"
		}

		return Interface(typeCastedValue.Interface())
	case fmt.Stringer:
		return typeCastedValue.String()
	default:
		reflectValue := reflect.ValueOf(value)
		switch reflectValue.Kind() {
		case reflect.Slice, reflect.Array:
			return sliceReflect(reflectValue)
		default:
			return fmt.Sprintf("%v", value)
		}
	}
}
