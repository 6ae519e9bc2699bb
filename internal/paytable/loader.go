package paytable

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/validation"
)

//go:embed machine.schema.json
var machineSchema []byte

const machineSchemaName = "machine.schema.json"

var (
	schemaOnce      sync.Once
	schemaValidator validation.SchemaValidator
	schemaErr       error
)

func definitionSchema() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schemaValidator, schemaErr = validation.NewSchemaValidator(machineSchemaName, machineSchema)
	})
	return schemaValidator, schemaErr
}

// Parse decodes a JSON machine definition, checks it against the schema and
// validates it
func Parse(data []byte) (*Machine, error) {
	v, err := definitionSchema()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMachine, err)
	}

	var def Definition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: failed to parse definition: %v", domain.ErrInvalidMachine, err)
	}
	return New(def)
}

// LoadFile reads a machine definition from disk
func LoadFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine definition %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Marshal encodes a machine definition in the format Parse reads
func Marshal(def Definition) ([]byte, error) {
	return json.MarshalIndent(def, "", "  ")
}
