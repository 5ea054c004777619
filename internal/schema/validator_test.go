package schema

import (
	"path/filepath"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{
		"valid-full.yaml",
		"valid-minimal.yaml",
		"valid-empty.yaml",
	} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"invalid-unknown-key.yaml", "unknown key", "additionalProperties"},
		{"invalid-nested-resource-dir.yaml", "resource_dir with a separator", "pattern"},
		{"invalid-log-level.yaml", "log level outside enum", "enum"},
		{"invalid-quiet-type.yaml", "quiet is not a boolean", "type"},
		{"invalid-not-object.yaml", "document is a list", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q for %s; got %+v", tt.keyword, tt.desc, result.Issues)
			}
		})
	}
}

func TestValidate_IssuePath(t *testing.T) {
	result, err := Validate([]byte("log_level: loud\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if got := result.Issues[0].Path; got != "/log_level" {
		t.Errorf("issue path = %q, want %q", got, "/log_level")
	}
	if result.Issues[0].Message == "" {
		t.Error("expected a non-empty issue message")
	}
}

func TestValidate_DotResourceDir(t *testing.T) {
	for _, name := range []string{".", ".."} {
		result, err := Validate([]byte("resource_dir: \"" + name + "\"\n"))
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if result.Valid {
			t.Errorf("resource_dir %q: expected invalid", name)
		}
	}
}

func TestValidate_NonStringKey(t *testing.T) {
	result, err := Validate([]byte("true: 1\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for a non-string key")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Keyword == "additionalProperties" {
			found = true
		}
	}
	if !found {
		t.Errorf("no additionalProperties issue; got %+v", result.Issues)
	}
}

func TestNormalizeYAML(t *testing.T) {
	in := map[interface{}]interface{}{
		true: []interface{}{map[interface{}]interface{}{1: "a"}},
	}
	out, ok := normalizeYAML(in).(map[string]interface{})
	if !ok {
		t.Fatalf("normalizeYAML returned %T, want map[string]interface{}", normalizeYAML(in))
	}
	list, ok := out["true"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("out[\"true\"] = %#v", out["true"])
	}
	if inner, ok := list[0].(map[string]interface{}); !ok || inner["1"] != "a" {
		t.Errorf("nested map = %#v, want key \"1\"", list[0])
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
