package stringify

import (
	"strings"

	"github.com/kr/text"
)

// Struct renders a named block with one indented line per field.
func Struct(name string, fields ...*StructField) string {
	return NewStructBuilder(name, fields...).String()
}

// StructBuilder collects the fields of a Struct rendering.
type StructBuilder struct {
	name   string
	fields []*StructField
}

// NewStructBuilder creates a StructBuilder with the given name and initial fields.
func NewStructBuilder(name string, fields ...*StructField) *StructBuilder {
	return &StructBuilder{
		name:   name,
		fields: fields,
	}
}

// AddField dynamically adds a new field to the struct.
func (s *StructBuilder) AddField(field *StructField) *StructBuilder {
	s.fields = append(s.fields, field)

	return s
}

func (s *StructBuilder) String() string {
	var result strings.Builder
	result.WriteString(s.name + " {\n")

	for _, field := range s.fields {
		result.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize)))
	}

	result.WriteString("}")

	return result.String()
}
