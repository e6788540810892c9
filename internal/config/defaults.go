package config

import (
	_ "embed"
)

//go:embed defaults/rect.yaml
var defaultRectYAML []byte

//go:embed defaults/intersect.yaml
var defaultIntersectYAML []byte

// DefaultRectConfig returns the default moving rectangle configuration.
func DefaultRectConfig() RectConfig {
	return RectConfig{
		RectSize: 0.2,
		Speed:    0.01,
	}
}

// DefaultIntersectConfig returns the default circle/segment configuration.
func DefaultIntersectConfig() IntersectConfig {
	return IntersectConfig{
		CircleSegments: 360,
		AxesLength:     0.85,
		ShowAxes:       true,
		ShowHelp:       true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case "rect":
		return defaultRectYAML
	case "intersect":
		return defaultIntersectYAML
	default:
		return nil
	}
}
