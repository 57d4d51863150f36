// Package adapter contains the infrastructure adapters of modegen: config
// files, output sinks, the manifest store and the JavaScript sandbox.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/modegen/internal/model"
)

// DefaultConfigPaths are tried in order when no config path is given.
var DefaultConfigPaths = []m.Path{"mode.config.json", "mode.config.yaml", "mode.config.yml"}

// ErrConfigNotFound is returned by Find when no default config exists.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigSource locates and decodes configuration documents. Decoding stops at
// map[string]any; the domain validator owns the schema.
type ConfigSource interface {
	// Find returns path when it is set, otherwise the first existing entry
	// of DefaultConfigPaths.
	Find(path m.Path) (m.Path, error)
	Load(path m.Path) (map[string]any, error)
}

// LocalConfigSource reads configuration files from disk.
type LocalConfigSource struct{}

// NewLocalConfigSource constructs a LocalConfigSource.
func NewLocalConfigSource() *LocalConfigSource {
	return &LocalConfigSource{}
}

// Find implements ConfigSource.
func (s *LocalConfigSource) Find(path m.Path) (m.Path, error) {
	if path != "" {
		return path, nil
	}

	for _, candidate := range DefaultConfigPaths {
		if _, err := os.Stat(string(candidate)); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %v", ErrConfigNotFound, DefaultConfigPaths)
}

// Load implements ConfigSource. The format follows the file extension;
// anything other than .yaml or .yml is read as JSON.
func (s *LocalConfigSource) Load(path m.Path) (map[string]any, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	raw, err := DecodeConfig(data, filepath.Ext(string(path)))
	if err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	return raw, nil
}

// DecodeConfig decodes a JSON or YAML document whose top level must be a
// mapping.
func DecodeConfig(data []byte, ext string) (map[string]any, error) {
	var raw map[string]any

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	if raw == nil {
		return nil, errors.New("document must be an object")
	}

	return raw, nil
}
