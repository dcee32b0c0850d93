package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

const requiredTag = "required"

// Schema validates raw kebab-case mappings against a typed configuration model.
// Every top-level field of the model is a section and must itself be a struct.
type Schema struct {
	model    reflect.Type
	defaults reflect.Value
	strict   bool
	sections []sectionField
	document map[string]any
	compiled *gojsonschema.Schema
}

type sectionField struct {
	index int
	name  string
}

// SchemaOption customizes a Schema.
type SchemaOption func(*Schema)

// WithStrict rejects unrecognized keys at every nesting level when strict is true.
// By default unrecognized keys are ignored.
func WithStrict(strict bool) SchemaOption {
	return func(s *Schema) {
		s.strict = strict
	}
}

// NewSchema builds a Schema from prototype, a struct (or pointer to one) whose
// field values are the defaults for absent optional fields.
func NewSchema(prototype any, opts ...SchemaOption) (*Schema, error) {
	value := reflect.ValueOf(prototype)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf(messages.ConfigSchemaModelFmt, value.Kind())
	}
	s := &Schema{model: value.Type(), defaults: value}
	for _, opt := range opts {
		opt(s)
	}

	modelType := value.Type()
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		name, ok := fieldName(field)
		if !ok {
			continue
		}
		if field.Type.Kind() != reflect.Struct {
			return nil, fmt.Errorf(messages.ConfigSchemaSectionFmt, name, field.Type)
		}
		s.sections = append(s.sections, sectionField{index: i, name: name})
	}

	document, err := objectSchema(modelType, s.strict, "")
	if err != nil {
		return nil, err
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigSchemaCompileFmt, err)
	}
	s.document = document
	s.compiled = compiled
	return s, nil
}

// Keys returns the external (kebab-case) top-level keys in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.sections))
	for _, section := range s.sections {
		keys = append(keys, ToKebab(section.name))
	}
	return keys
}

// Strict reports whether unrecognized keys are rejected.
func (s *Schema) Strict() bool {
	return s.strict
}

// Document returns the generated JSON Schema document.
func (s *Schema) Document() map[string]any {
	return s.document
}

// fieldName returns the internal snake_case name for a struct field.
func fieldName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	tag := field.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, true
}

func isRequired(field reflect.StructField) bool {
	for _, opt := range strings.Split(field.Tag.Get("schema"), ",") {
		if strings.TrimSpace(opt) == requiredTag {
			return true
		}
	}
	return false
}

func objectSchema(t reflect.Type, strict bool, path string) (map[string]any, error) {
	properties := make(map[string]any, t.NumField())
	required := []string{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, ok := fieldName(field)
		if !ok {
			continue
		}
		key := ToKebab(name)
		property, err := propertySchema(field.Type, strict, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		properties[key] = property
		if isRequired(field) {
			required = append(required, key)
		}
	}
	document := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": !strict,
	}
	if len(required) > 0 {
		document["required"] = required
	}
	return document, nil
}

func propertySchema(t reflect.Type, strict bool, path string) (map[string]any, error) {
	switch t.Kind() {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}, nil
	case reflect.String:
		return map[string]any{"type": "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}, nil
	case reflect.Struct:
		return objectSchema(t, strict, path)
	default:
		return nil, fmt.Errorf(messages.ConfigSchemaFieldTypeFmt, t, path)
	}
}

func joinPath(parent string, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
