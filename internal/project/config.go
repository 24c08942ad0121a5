// Package project reads and writes planter configurations and the user's
// application data (preferences, presets, stock catalog) on disk.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format is a config file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadConfig reads a planter configuration from a JSON or YAML file. A
// file without a box section yields a config with a nil Box.
func LoadConfig(path string) (model.PlanterConfig, error) {
	format, err := FormatFor(path)
	if err != nil {
		return model.PlanterConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PlanterConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return model.PlanterConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a planter configuration in the given format.
func ParseConfig(data []byte, format Format) (model.PlanterConfig, error) {
	var cfg model.PlanterConfig
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return model.PlanterConfig{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return model.PlanterConfig{}, err
		}
	default:
		return model.PlanterConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}

// MarshalConfig encodes a planter configuration in the given format.
func MarshalConfig(cfg model.PlanterConfig, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfig writes a planter configuration, choosing JSON or YAML from
// the file extension. It creates any missing parent directories.
func SaveConfig(path string, cfg model.PlanterConfig) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := MarshalConfig(cfg, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
