// Package config provides YAML-based settings loading and the built-in
// presets for the rain animation.
package config

import (
	"github.com/jessedye/matrix-rain/internal/rain"
)

// Config mirrors the CLI surface: density is a percentage and color a
// scheme name, exactly like the flags. It converts to rain.Settings
// through ToSettings.
type Config struct {
	SpeedMs        int     `yaml:"speed_ms"`
	DensityPercent float64 `yaml:"density"`
	SpawnsPerFrame int     `yaml:"spawns_per_frame"`
	MinLength      int     `yaml:"min_length"`
	MaxLength      int     `yaml:"max_length"`
	MinSpeed       int     `yaml:"min_speed"`
	MaxSpeed       int     `yaml:"max_speed"`
	Color          string  `yaml:"color"`
}

// ToSettings converts the config to live settings. Unset (zero) fields
// keep the built-in defaults, the density percentage becomes a
// probability, and an unrecognized color name is silently ignored.
// The result is always range-valid.
func (c Config) ToSettings() rain.Settings {
	s := rain.DefaultSettings()

	if c.SpeedMs > 0 {
		s.FrameDelayMs = c.SpeedMs
	}
	if c.DensityPercent > 0 {
		s.Density = c.DensityPercent / 100
	}
	if c.SpawnsPerFrame > 0 {
		s.SpawnsPerFrame = c.SpawnsPerFrame
	}
	if c.MinLength > 0 {
		s.MinLength = c.MinLength
	}
	if c.MaxLength > 0 {
		s.MaxLength = c.MaxLength
	}
	if c.MinSpeed > 0 {
		s.MinSpeed = c.MinSpeed
	}
	if c.MaxSpeed > 0 {
		s.MaxSpeed = c.MaxSpeed
	}
	if scheme, ok := rain.ParseScheme(c.Color); ok {
		s.Scheme = scheme
	}

	s.Clamp()
	return s
}
