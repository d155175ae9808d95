package pattern

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/golife/pkg/logging"
)

// Parse decodes catalog data in the given format ("json" or "yaml") and
// validates it. A missing rotation_count defaults to zero.
func Parse(data []byte, format string) (Catalog, error) {
	var c Catalog
	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("pattern: decode json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("pattern: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	for i := range c {
		for j := range c[i].Patterns {
			p := &c[i].Patterns[j]
			p.RotationCount = ((p.RotationCount % 4) + 4) % 4
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog file, picking the decoder from its extension.
func Load(path string) (Catalog, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: read catalog: %w", err)
	}
	return Parse(data, format)
}

// LoadOrDefault loads path, falling back to Default with a warning when the
// file is missing or invalid. An empty path selects the default silently.
func LoadOrDefault(path string) Catalog {
	if path == "" {
		return Default()
	}
	c, err := Load(path)
	if err != nil {
		logging.Warn("catalog", "using default catalog: %v", err)
		return Default()
	}
	logging.Debug("catalog", "loaded %d pattern types from %s", len(c), path)
	return c
}
