package validation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against one compiled schema
type SchemaValidator interface {
	ValidateFile(dataPath string) error
	ValidateBytes(data []byte) error
}

type validator struct {
	name   string
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schema once under the given resource name
func NewSchemaValidator(name string, schema []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &validator{name: name, schema: compiled}, nil
}

// ValidateFile validates a JSON file
func (v *validator) ValidateFile(dataPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data)
}

// ValidateBytes validates raw JSON
func (v *validator) ValidateBytes(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		var lines []string
		collectErrors(verr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors walks the cause tree, leaves last
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if msg := formatError(err); msg != "" {
		*lines = append(*lines, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
