// Package jsonpath extracts values from JSON response bodies using gjson
// path expressions (for example "users.0.name").
package jsonpath

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Extract returns the value at path in the given JSON document as a string.
// Null values come back as "null"; a missing path is an error.
func Extract(body []byte, path string) (string, error) {
	if len(body) == 0 {
		return "", fmt.Errorf("empty JSON body")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractAll resolves a map of name to path expressions against one JSON
// document. All paths are attempted; the first failure is reported alongside
// whatever resolved.
func ExtractAll(body []byte, paths map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(paths))
	var firstErr error
	for name, path := range paths {
		value, err := Extract(body, path)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		values[name] = value
	}
	return values, firstErr
}
