// Package schemas provides JSON Schema validation for letter request documents.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/letter-studio/internal/types"
	schemafiles "github.com/jonathan/letter-studio/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// DocumentError reports a document that is not JSON at all
type DocumentError struct {
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid JSON document: %v", e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// compileSchemas compiles every top-level schema once, with the common
// definitions registered under their $id.
func compileSchemas() (map[string]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compileAll()
	})
	return compiled, compileErr
}

func compileAll() (map[string]*gojsonschema.Schema, error) {
	common, err := schemafiles.FS.ReadFile(schemafiles.Common)
	if err != nil {
		return nil, &SchemaLoadError{Path: schemafiles.Common, Message: "embedded schema missing", Cause: err}
	}

	out := make(map[string]*gojsonschema.Schema)
	for _, name := range []string{schemafiles.LetterInputs, schemafiles.LetterBatch} {
		data, err := schemafiles.FS.ReadFile(name)
		if err != nil {
			return nil, &SchemaLoadError{Path: name, Message: "embedded schema missing", Cause: err}
		}

		sl := gojsonschema.NewSchemaLoader()
		if err := sl.AddSchema(schemafiles.BaseURL+schemafiles.Common, gojsonschema.NewBytesLoader(common)); err != nil {
			return nil, &SchemaLoadError{Path: schemafiles.Common, Message: "failed to register common schema", Cause: err}
		}
		schema, err := sl.Compile(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
		}
		out[name] = schema
	}
	return out, nil
}

// ValidateDocument validates JSON content against one of the embedded schemas.
func ValidateDocument(schemaName string, document []byte) error {
	all, err := compileSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[schemaName]
	if !ok {
		return &SchemaLoadError{Path: schemaName, Message: "unknown schema"}
	}

	if !json.Valid(document) {
		var probe any
		return &DocumentError{Cause: json.Unmarshal(document, &probe)}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &DocumentError{Cause: err}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// DecodeLetterInputs validates document against the LetterInputs schema and decodes it.
func DecodeLetterInputs(document []byte) (types.LetterInputs, error) {
	var in types.LetterInputs
	if err := ValidateDocument(schemafiles.LetterInputs, document); err != nil {
		return in, err
	}
	if err := json.Unmarshal(document, &in); err != nil {
		return in, &DocumentError{Cause: err}
	}
	return in, nil
}

// DecodeLetterBatch validates document against the LetterBatch schema and decodes it.
func DecodeLetterBatch(document []byte) (types.LetterBatch, error) {
	var batch types.LetterBatch
	if err := ValidateDocument(schemafiles.LetterBatch, document); err != nil {
		return batch, err
	}
	if err := json.Unmarshal(document, &batch); err != nil {
		return batch, &DocumentError{Cause: err}
	}
	return batch, nil
}
