package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRect loads the moving rectangle configuration.
// Search order: customPath -> ~/.sketch/configs/rect.yaml -> ./configs/rect.yaml -> embedded default
// On any error the hard-coded defaults are returned with it.
func LoadRect(customPath string) (RectConfig, error) {
	cfg, err := load("rect", customPath, DefaultRectConfig())
	if err != nil {
		return DefaultRectConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultRectConfig(), err
	}
	return cfg, nil
}

// LoadIntersect loads the circle/segment configuration.
// Search order: customPath -> ~/.sketch/configs/intersect.yaml -> ./configs/intersect.yaml -> embedded default
// On any error the hard-coded defaults are returned with it.
func LoadIntersect(customPath string) (IntersectConfig, error) {
	cfg, err := load("intersect", customPath, DefaultIntersectConfig())
	if err != nil {
		return DefaultIntersectConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultIntersectConfig(), err
	}
	return cfg, nil
}

// load decodes the first config source that parses on top of defaults.
// Fields missing from the YAML keep their default values. A source that fails
// to parse never leaks partially decoded fields into the result.
func load[T any](demoID, customPath string, defaults T) (T, error) {
	decode := func(data []byte) (T, error) {
		cfg := defaults
		err := yaml.Unmarshal(data, &cfg)
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return defaults, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := demoID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML, falling back to the hard-coded defaults
	if cfg, err := decode(GetDefaultYAML(demoID)); err == nil {
		return cfg, nil
	}
	return defaults, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sketch", "configs", filename)
}
