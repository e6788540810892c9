// Package config provides YAML-based demo configuration loading for the
// sketch platform.
package config

import (
	"errors"
	"fmt"
)

// RectConfig contains all configuration for the moving rectangle demo.
// Sizes and speeds are in normalized device coordinates.
type RectConfig struct {
	RectSize float64   `yaml:"rect_size"` // Side length of the square
	Speed    float64   `yaml:"speed"`     // Distance moved per key press
	Start    RectStart `yaml:"start"`
}

// RectStart is the initial center of the rectangle.
type RectStart struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IntersectConfig contains all configuration for the circle/segment demo.
type IntersectConfig struct {
	CircleSegments int     `yaml:"circle_segments"` // Polygon resolution of drawn circles
	AxesLength     float64 `yaml:"axes_length"`     // Half-length of the drawn x and y axes
	ShowAxes       bool    `yaml:"show_axes"`
	ShowHelp       bool    `yaml:"show_help"`
}

// MaxCircleSegments bounds the polygon resolution; every redraw samples
// segments+1 points.
const MaxCircleSegments = 10000

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the rectangle fits on screen and can move.
func (c RectConfig) Validate() error {
	if c.RectSize <= 0 || c.RectSize >= 2 {
		return fmt.Errorf("%w: rect_size must be in (0, 2), got %v", ErrInvalidConfig, c.RectSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	}
	limit := 1 - c.RectSize/2
	if c.Start.X <= -limit || c.Start.X >= limit || c.Start.Y <= -limit || c.Start.Y >= limit {
		return fmt.Errorf("%w: start (%v, %v) leaves the rectangle outside the canvas",
			ErrInvalidConfig, c.Start.X, c.Start.Y)
	}
	return nil
}

// Validate checks the drawing parameters.
func (c IntersectConfig) Validate() error {
	if c.CircleSegments < 3 || c.CircleSegments > MaxCircleSegments {
		return fmt.Errorf("%w: circle_segments must be in [3, %d], got %d",
			ErrInvalidConfig, MaxCircleSegments, c.CircleSegments)
	}
	if c.AxesLength < 0 || c.AxesLength > 1 {
		return fmt.Errorf("%w: axes_length must be in [0, 1], got %v", ErrInvalidConfig, c.AxesLength)
	}
	return nil
}
