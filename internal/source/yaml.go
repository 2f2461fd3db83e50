package source

import (
	"context"
	"fmt"
	"os"

	"github.com/n0roo/workshop/internal/idea"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk layout of a YAML idea file
type Fixture struct {
	Ideas []idea.Idea `yaml:"ideas"`
}

// YAMLFile reads ideas from a fixture file on every Load
type YAMLFile struct {
	path string
}

// NewYAMLFile creates a source for path
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

// Path returns the fixture path
func (y *YAMLFile) Path() string {
	return y.path
}

// Load parses and validates the fixture
func (y *YAMLFile) Load(ctx context.Context) ([]idea.Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл идей: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML decodes a fixture document
func ParseYAML(data []byte) ([]idea.Idea, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("не удалось разобрать файл идей: %w", err)
	}
	if err := idea.ValidateAll(f.Ideas); err != nil {
		return nil, err
	}
	return f.Ideas, nil
}

// MarshalYAML encodes ideas as a fixture document
func MarshalYAML(ideas []idea.Idea) ([]byte, error) {
	return yaml.Marshal(Fixture{Ideas: ideas})
}
