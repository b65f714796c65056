// Package jsonschema describes Go options structs as JSON Schema property
// fragments.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

// Options returns a describer for the options struct v.
func Options(v any) registry.OptionsDescriber {
	return &structOptions{value: v}
}

// OptionsFactory returns a registry.OptionsFactory creating a describer for a
// fresh value on every call.
func OptionsFactory[T any]() registry.OptionsFactory {
	return func() registry.OptionsDescriber {
		return Options(new(T))
	}
}

type structOptions struct {
	value any
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		// Use yaml struct tags for property names instead of Go field names.
		FieldNameTag:   "yaml",
		ExpandedStruct: true,
		DoNotReference: true,
	}
}

// DescribeSchema appends one "name": {...} fragment per struct field, in
// declaration order.
func (o *structOptions) DescribeSchema(b *strings.Builder) error {
	t := reflect.TypeOf(o.value)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return fmt.Errorf("options %T: not a named struct", o.value)
	}

	s := newReflector().Reflect(o.value)
	if s.Properties == nil {
		return nil
	}

	first := true
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, err := json.Marshal(pair.Key)
		if err != nil {
			return fmt.Errorf("options %T: %w", o.value, err)
		}
		property, err := json.Marshal(pair.Value)
		if err != nil {
			return fmt.Errorf("options %T: property %s: %w", o.value, pair.Key, err)
		}

		if !first {
			b.WriteByte(',')
		}
		first = false
		b.Write(name)
		b.WriteByte(':')
		b.Write(property)
	}
	return nil
}
