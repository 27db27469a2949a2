// Package jsonschema validates JSON response bodies against JSON Schema
// documents.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks a JSON document against a schema. It returns false with a
// nil error when the document is well-formed but fails the schema, and a
// non-nil error when the schema or the document cannot be parsed at all.
func Validate(body []byte, schema []byte) (bool, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schema)); err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return false, nil
	}
	return true, nil
}

// ValidateWithDetails is Validate with the schema violations spelled out,
// for user-facing output.
func ValidateWithDetails(body []byte, schema []byte) (bool, []string, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schema)); err != nil {
		return false, nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return false, nil, fmt.Errorf("invalid schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	err = compiled.Validate(doc)
	if err == nil {
		return true, nil, nil
	}
	var details []string
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		for _, cause := range ve.BasicOutput().Errors {
			if cause.Error != "" {
				details = append(details, fmt.Sprintf("%s: %s", cause.InstanceLocation, cause.Error))
			}
		}
	} else {
		details = append(details, err.Error())
	}
	return false, details, nil
}

// ValidateFile validates a JSON document against a schema stored on disk.
func ValidateFile(body []byte, schemaPath string) (bool, []string, error) {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return false, nil, fmt.Errorf("reading schema %s: %w", schemaPath, err)
	}
	return ValidateWithDetails(body, schema)
}
