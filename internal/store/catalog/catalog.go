package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/showroom/internal/logging"
	"github.com/Makepad-fr/showroom/internal/model"
)

// Read-only car table. Loaded once, validated before anything renders it.

//go:embed cars.yaml
var builtin []byte

var (
	defaultOnce sync.Once
	defaultCars []model.Car
	defaultErr  error
)

// Default returns the built-in catalog.
func Default() ([]model.Car, error) {
	defaultOnce.Do(func() {
		defaultCars, defaultErr = Parse(builtin, FormatYAML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("builtin catalog: %w", defaultErr)
		}
	})
	return defaultCars, defaultErr
}

// Format selects the decoder used by Parse.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unsupported catalog format %q (want .yaml, .yml or .json)", filepath.Ext(path))
}

// Load reads and validates a catalog file. An empty path means the built-in
// catalog.
func Load(path string) ([]model.Car, error) {
	if path == "" {
		return Default()
	}
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cars, err := Parse(b, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("catalog loaded", zap.String("path", path), zap.Int("cars", len(cars)))
	return cars, nil
}

// Parse decodes and validates a catalog document.
func Parse(b []byte, f Format) ([]model.Car, error) {
	var cars []model.Car
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(b, &cars); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &cars); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	if err := Validate(cars); err != nil {
		return nil, err
	}
	return cars, nil
}
