// Package config provides the tunable constants of the light simulation
// and its frontends. Values are loaded from an optional JSON file over the
// defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// RayStrategy selects which probe rays are cast each frame
type RayStrategy string

const (
	StrategyEndpoint RayStrategy = "endpoint" // Six rays per obstacle
	StrategyUniform  RayStrategy = "uniform"  // Evenly spaced fan only
	StrategyCombined RayStrategy = "combined" // Both of the above
)

// Config holds all simulation and display settings
type Config struct {
	// Probe rays
	Rays RayConfig `json:"rays"`

	// Display
	Display DisplayConfig `json:"display"`

	// Window and camera
	Window WindowConfig `json:"window"`
}

// RayConfig controls ray generation and intersection
type RayConfig struct {
	Strategy    RayStrategy `json:"strategy"`
	AngleOffset float64     `json:"angle_offset"` // Radians either side of each corner
	Tolerance   float64     `json:"tolerance"`    // Slack on the segment parameter
	UniformRays int         `json:"uniform_rays"` // Rays in the uniform fan
	FarLength   float64     `json:"far_length"`   // Length of uniform fan rays
}

// DisplayConfig controls colours and debug drawing
type DisplayConfig struct {
	FillColor     string  `json:"fill_color"`     // Hex "#RRGGBB" for the light fan
	ObstacleColor string  `json:"obstacle_color"` // Hex for obstacle lines
	ClearColor    string  `json:"clear_color"`    // Hex background
	MarkerColor   string  `json:"marker_color"`   // Hex for debug hit markers
	LineWidth     float64 `json:"line_width"`     // Obstacle line width
	DebugMarkers  bool    `json:"debug_markers"`  // Draw a circle at every hit
	MarkerRadius  float64 `json:"marker_radius"`
}

// WindowConfig controls the window and camera projection
type WindowConfig struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	MinWidth  float64 `json:"min_width"`  // World units always visible horizontally
	MinHeight float64 `json:"min_height"` // World units always visible vertically
	Title     string  `json:"title"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Rays: RayConfig{
			Strategy:    StrategyEndpoint,
			AngleOffset: shadows.DefaultAngleOffset,
			Tolerance:   shadows.DefaultTolerance,
			UniformRays: shadows.DefaultUniformRays,
			FarLength:   shadows.DefaultFarLength,
		},
		Display: DisplayConfig{
			FillColor:     "#ffb327",
			ObstacleColor: "#808080",
			ClearColor:    "#ffffff",
			MarkerColor:   "#800080",
			LineWidth:     5,
			DebugMarkers:  false,
			MarkerRadius:  5,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			MinWidth:  1600,
			MinHeight: 1000,
			Title:     "lightcast",
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	switch c.Rays.Strategy {
	case StrategyEndpoint, StrategyUniform, StrategyCombined:
	default:
		return fmt.Errorf("%w: unknown ray strategy %q", ErrInvalid, c.Rays.Strategy)
	}
	if c.Rays.AngleOffset <= 0 {
		return fmt.Errorf("%w: angle_offset must be positive", ErrInvalid)
	}
	if c.Rays.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must not be negative", ErrInvalid)
	}
	if c.Rays.Strategy != StrategyEndpoint && c.Rays.UniformRays <= 0 {
		return fmt.Errorf("%w: uniform_rays must be positive", ErrInvalid)
	}
	if c.Rays.FarLength <= 0 {
		return fmt.Errorf("%w: far_length must be positive", ErrInvalid)
	}

	for name, hex := range map[string]string{
		"fill_color":     c.Display.FillColor,
		"obstacle_color": c.Display.ObstacleColor,
		"clear_color":    c.Display.ClearColor,
		"marker_color":   c.Display.MarkerColor,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.MinWidth <= 0 || c.Window.MinHeight <= 0 {
		return fmt.Errorf("%w: camera min size %gx%g", ErrInvalid, c.Window.MinWidth, c.Window.MinHeight)
	}
	return nil
}

// Fill returns the light fan colour
func (c *Config) Fill() color.NRGBA {
	return mustColor(c.Display.FillColor)
}

// Obstacle returns the obstacle line colour
func (c *Config) Obstacle() color.NRGBA {
	return mustColor(c.Display.ObstacleColor)
}

// Clear returns the background colour
func (c *Config) Clear() color.NRGBA {
	return mustColor(c.Display.ClearColor)
}

// Marker returns the debug marker colour
func (c *Config) Marker() color.NRGBA {
	return mustColor(c.Display.MarkerColor)
}

// mustColor falls back to opaque black; Validate has already rejected
// anything unparsable.
func mustColor(hex string) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.NRGBA{0, 0, 0, 255}
	}
	return c
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or "#RRGGBBAA"
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint8
	a := uint8(255)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad colour %q: want 6 or 8 hex digits", s)
	}

	return color.NRGBA{r, g, b, a}, nil
}
