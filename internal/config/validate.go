package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to store query, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// "configuration not yet complete" from other failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// FieldError is a single schema violation.
type FieldError struct {
	// Field is the dotted kebab-case path of the offending key, or "(root)".
	Field       string
	Description string
}

// ValidationError reports every schema violation found in one mapping.
type ValidationError struct {
	Fields []FieldError
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf(messages.ConfigValidationFieldFmt, field.Field, field.Description))
	}
	return messages.ConfigValidationFailed + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrConfigValidation.
func (e *ValidationError) Unwrap() error {
	return ErrConfigValidation
}

// Validate checks raw (keyed in kebab-case) against the schema and decodes it
// into a fresh copy of the model. Values are copied verbatim; the only checks
// are key presence and primitive types. Keys the schema does not declare are
// dropped when the schema is not strict.
func (s *Schema) Validate(raw map[string]any) (*Values, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigValidateFmt, ErrConfigValidation, err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Fields = append(verr.Fields, FieldError{
				Field:       desc.Field(),
				Description: desc.Description(),
			})
		}
		return nil, verr
	}

	data, err := json.Marshal(projectKeys(raw, s.document))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigDecodeFmt, err)
	}
	model := reflect.New(s.model)
	model.Elem().Set(s.defaults)
	if err := json.Unmarshal(data, model.Interface()); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigDecodeFmt, ErrConfigValidation, err)
	}

	sections, err := s.dump(model.Elem())
	if err != nil {
		return nil, err
	}
	return &Values{sections: sections}, nil
}

// dump serializes each section with its snake_case field names, in declaration order.
func (s *Schema) dump(model reflect.Value) ([]Section, error) {
	sections := make([]Section, 0, len(s.sections))
	for _, section := range s.sections {
		encoded, err := json.Marshal(model.Field(section.index).Interface())
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigDumpSectionFmt, section.name, err)
		}
		decoder := json.NewDecoder(bytes.NewReader(encoded))
		decoder.UseNumber()
		data := map[string]any{}
		if err := decoder.Decode(&data); err != nil {
			return nil, fmt.Errorf(messages.ConfigDumpSectionFmt, section.name, err)
		}
		sections = append(sections, Section{Name: section.name, Data: data})
	}
	return sections, nil
}
