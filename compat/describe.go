package compat

import (
	"reflect"
	"strings"

	sErrors "contracts/pkg/schema-errors"
)

// Describe derives a Schema descriptor from a record struct's json tags, so
// the descriptor registered for a release cannot drift from the shipped type.
// A field is optional when the payload may omit it: pointer, slice, or map
// typed, or tagged omitempty. Optional fields default to their zero value.
func Describe(name string, v any) (Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return Schema{}, sErrors.New(sErrors.CodeInvariantViolation,
			"schema descriptors can only be derived from struct types")
	}
	schema := Schema{Name: name}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		wireName, opts, _ := strings.Cut(tag, ",")
		if wireName == "" {
			wireName = f.Name
		}
		optional := hasOption(opts, "omitempty")
		switch f.Type.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map:
			optional = true
		}
		schema.Fields = append(schema.Fields, Field{
			Name:       wireName,
			Type:       fieldType(f.Type),
			Optional:   optional,
			HasDefault: optional,
		})
	}
	return schema, nil
}

// MustDescribe derives a Schema, panicking on a non-struct. Registration of
// the library's own types goes through this: a failure is a programming
// error, not input.
func MustDescribe(name string, v any) Schema {
	s, err := Describe(name, v)
	if err != nil {
		panic(err)
	}
	return s
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func fieldType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return fieldType(t.Elem())
	}
	return t.String()
}
