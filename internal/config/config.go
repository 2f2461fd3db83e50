package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceType selects where ideas are loaded from
type SourceType string

const (
	SourceStatic SourceType = "static" // 내장 시드
	SourceYAML   SourceType = "yaml"
	SourceSQLite SourceType = "sqlite"
	SourceDuckDB SourceType = "duckdb"
)

// Valid reports whether t is a known source type
func (t SourceType) Valid() bool {
	switch t {
	case SourceStatic, SourceYAML, SourceSQLite, SourceDuckDB:
		return true
	}
	return false
}

// Config represents .workshop/config.yaml
type Config struct {
	Version string       `yaml:"version"`
	Source  SourceConfig `yaml:"source"`
	UI      UIConfig     `yaml:"ui"`
}

// SourceConfig describes the idea source. Path is relative to the project
// root unless absolute; it is ignored for the static source.
type SourceConfig struct {
	Type SourceType `yaml:"type"`
	Path string     `yaml:"path,omitempty"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	DefaultSection string `yaml:"default_section"`
	// 카드에 표시할 technique 태그 수
	TechniqueBadges int  `yaml:"technique_badges"`
	AltScreen       bool `yaml:"alt_screen"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version: "0.1.0",
		Source: SourceConfig{
			Type: SourceStatic,
		},
		UI: UIConfig{
			DefaultSection:  "catalog",
			TechniqueBadges: 2,
			AltScreen:       true,
		},
	}
}

var ErrInvalidConfig = errors.New("некорректная конфигурация")

// Validate checks the values a hand-edited file can get wrong
func (c *Config) Validate() error {
	if !c.Source.Type.Valid() {
		return fmt.Errorf("%w: source.type %q", ErrInvalidConfig, c.Source.Type)
	}
	if c.Source.Type == SourceYAML && c.Source.Path == "" {
		return fmt.Errorf("%w: source.path обязателен для yaml", ErrInvalidConfig)
	}
	if c.UI.TechniqueBadges < 0 {
		return fmt.Errorf("%w: ui.technique_badges < 0", ErrInvalidConfig)
	}
	return nil
}

// ResolvePath makes a source path absolute against root
func (c *Config) ResolvePath(root string) string {
	if c.Source.Path == "" || filepath.IsAbs(c.Source.Path) {
		return c.Source.Path
	}
	return filepath.Join(root, c.Source.Path)
}

// Load reads <root>/.workshop/config.yaml. A missing file yields Default().
// Fields absent from the file keep their default values.
func Load(root string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не удалось прочитать конфигурацию: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to <root>/.workshop/config.yaml
func Save(root string, cfg *Config) error {
	configPath := Path(root)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("не удалось создать каталог: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать конфигурацию: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("не удалось сохранить конфигурацию: %w", err)
	}

	return nil
}

// Exists checks if the project config file exists
func Exists(root string) bool {
	_, err := os.Stat(Path(root))
	return err == nil
}
