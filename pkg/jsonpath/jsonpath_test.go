package jsonpath

import (
	"testing"
)

func TestExtract(t *testing.T) {
	body := []byte(`{
		"id": 42,
		"name": "widget",
		"tags": ["a", "b"],
		"owner": {"name": "sam"},
		"deleted_at": null
	}`)

	tests := []struct {
		name        string
		path        string
		expected    string
		expectError bool
	}{
		{name: "Top-level string", path: "name", expected: "widget"},
		{name: "Top-level number", path: "id", expected: "42"},
		{name: "Nested field", path: "owner.name", expected: "sam"},
		{name: "Array index", path: "tags.1", expected: "b"},
		{name: "Null value", path: "deleted_at", expected: "null"},
		{name: "Missing path", path: "owner.email", expectError: true},
		{name: "Empty path", path: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Extract(body, tt.path)
			if tt.expectError {
				if err == nil {
					t.Fatalf("Extract(%q) expected error, got %q", tt.path, value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q) error: %v", tt.path, err)
			}
			if value != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.path, value, tt.expected)
			}
		})
	}
}

func TestExtract_EmptyBody(t *testing.T) {
	if _, err := Extract(nil, "name"); err == nil {
		t.Fatal("Expected error for empty body")
	}
}

func TestExtractAll(t *testing.T) {
	body := []byte(`{"token": "abc", "user": {"id": 7}}`)

	values, err := ExtractAll(body, map[string]string{
		"token":  "token",
		"userID": "user.id",
	})
	if err != nil {
		t.Fatalf("ExtractAll() error: %v", err)
	}
	if values["token"] != "abc" {
		t.Errorf("token = %q, want abc", values["token"])
	}
	if values["userID"] != "7" {
		t.Errorf("userID = %q, want 7", values["userID"])
	}
}

func TestExtractAll_PartialFailure(t *testing.T) {
	body := []byte(`{"token": "abc"}`)

	values, err := ExtractAll(body, map[string]string{
		"token":   "token",
		"missing": "nope.nope",
	})
	if err == nil {
		t.Fatal("Expected error for missing path")
	}
	if values["token"] != "abc" {
		t.Errorf("Resolved values must survive a partial failure, token = %q", values["token"])
	}
}
