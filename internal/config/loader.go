// Package config loads request-collection files for the sfetch CLI. A
// collection names a base URL and a set of requests that the run command
// can execute by name.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Collection is the top-level structure of a collection file.
type Collection struct {
	BaseURL  string             `yaml:"baseUrl"`
	Headers  map[string]string  `yaml:"headers,omitempty"`
	Requests map[string]Request `yaml:"requests"`
}

// Request describes one named request in a collection.
type Request struct {
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    any               `yaml:"body,omitempty"`
	Extract map[string]string `yaml:"extract,omitempty"`
	Schema  string            `yaml:"schema,omitempty"`
}

// Load reads and validates a collection file.
func Load(path string) (*Collection, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("collection file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading collection file: %w", err)
	}

	var collection Collection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("parsing collection file: %w", err)
	}

	if err := Validate(&collection); err != nil {
		return nil, fmt.Errorf("invalid collection file %s: %w", path, err)
	}
	return &collection, nil
}
