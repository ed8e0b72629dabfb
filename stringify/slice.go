package stringify

import (
	"reflect"
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the amount of spaces nested values are indented by.
const IndentationSize = 4

// Slice renders the given elements in the same way as a slice value passed to Interface.
func Slice(value []any) string {
	return sliceReflect(reflect.ValueOf(value))
}

func sliceReflect(value reflect.Value) (result string) {
	result += "["

	newLineVersion := false
	for i := range value.Len() {
		valueString := Interface(value.Index(i))
		if strings.Contains(valueString, "\n") {
			if !newLineVersion {
				result += "\n"

				newLineVersion = true
			}
			result += text.Indent(valueString+",\n", strings.Repeat(" ", IndentationSize))
		} else {
			result += valueString + ", "
		}
	}

	if !newLineVersion && len(result) >= 2 {
		result = result[:len(result)-2]
	}

	result += "]"

	return
}
