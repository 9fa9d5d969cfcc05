package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `---
documents:
  - title: Report1
    content: |
      quarterly figures
    author:
      id: u1
      name: Alice
    created: 2023-01-01
  - title: Invoice1
    content: amount due
    author: {id: u2, name: Bob}
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(file.Documents) != 2 {
		t.Fatalf("Load() = %v documents, want 2", len(file.Documents))
	}
	first := file.Documents[0]
	if first.Title != "Report1" || first.Author.ID != "u1" || first.Created != "2023-01-01" {
		t.Errorf("Load() first entry = %+v", first)
	}
	if first.Content != "quarterly figures\n" {
		t.Errorf("Load() content = %q, want block scalar with trailing newline", first.Content)
	}
}

func TestLoaderLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
		},
		{
			name: "invalid yaml",
			path: func(t *testing.T) string { return writeFile(t, "documents: [unclosed") },
		},
		{
			name: "unknown field",
			path: func(t *testing.T) string { return writeFile(t, "documents:\n  - titel: typo\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader(tt.path(t)).Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	file, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Documents) != 0 {
		t.Errorf("Parse() = %v documents, want 0", len(file.Documents))
	}
}
