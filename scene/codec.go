package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects a scene encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Decode parses and validates a scene
func Decode(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode toml scene: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnsupportedFormat)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode serializes a scene
func Encode(s *Scene, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetArraysMultiline(false)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode toml scene: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode yaml scene: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml scene: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("encode %q: %w", format, ErrUnsupportedFormat)
	}
}

// Load reads a scene file
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes a scene file, replacing any existing one
func Save(path string, s *Scene) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
