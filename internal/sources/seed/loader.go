package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads a seed file from disk
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given file
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file. Unknown keys are rejected so typos surface early.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML. An empty document yields an empty File.
func Parse(data []byte) (File, error) {
	var file File
	if len(bytes.TrimSpace(data)) == 0 {
		return file, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return File{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return file, nil
}
