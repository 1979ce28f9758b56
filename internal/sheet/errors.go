package sheet

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaError reports a descriptor whose shape or types do not match the
// expected schema. It is not recoverable.
type SchemaError struct {
	Path   string // Dotted location, empty for document-level problems
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[SCHEMA] %s", e.Reason)
	}
	return fmt.Sprintf("[SCHEMA] %s: %s", e.Path, e.Reason)
}

// Code returns the error code.
func (e *SchemaError) Code() string {
	return "SCHEMA"
}

func schemaErrorf(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// asSchemaError converts decoder errors into a SchemaError.
func asSchemaError(err error) error {
	var se *SchemaError
	if errors.As(err, &se) {
		return se
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		return schemaErrorf(path, "cannot use %s as %s", typeErr.Value, typeErr.Type)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return schemaErrorf("", "malformed JSON at offset %d: %v", syntaxErr.Offset, syntaxErr)
	}

	var yamlErr *yaml.TypeError
	if errors.As(err, &yamlErr) && len(yamlErr.Errors) > 0 {
		return schemaErrorf("", "%s", yamlErr.Errors[0])
	}

	return schemaErrorf("", "%v", err)
}
