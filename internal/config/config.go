// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Variant names accepted in Animation.Variant.
const (
	VariantSingle = "single" // horizontal sweep only
	VariantDual   = "dual"   // horizontal, then vertical, with the overlay sphere
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	MSAA       int  `yaml:"msaa"` // multisample count, 0 disables
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"` // vertical field of view, degrees
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Damping     float32 `yaml:"damping"`
	RotateSpeed float32 `yaml:"rotate_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
}

// AnimationConfig selects which sweep sequence is played.
type AnimationConfig struct {
	Variant    string `yaml:"variant"`
	ShowInfo   bool   `yaml:"show_info"`    // info panel visible at startup
	ExitOnDone bool   `yaml:"exit_on_done"` // quit once every surface is revealed
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			MSAA:       4,
		},
		Camera: CameraConfig{
			FOV:         75,
			MinDistance: 20,
			MaxDistance: 100,
			Damping:     0.05,
			RotateSpeed: 0.5,
			ZoomSpeed:   0.8,
		},
		Animation: AnimationConfig{
			Variant:  VariantDual,
			ShowInfo: true,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks values that the viewer cannot recover from at runtime.
func (c *Config) Validate() error {
	switch c.Animation.Variant {
	case VariantSingle, VariantDual:
	default:
		return fmt.Errorf("unknown animation variant %q (want %q or %q)",
			c.Animation.Variant, VariantSingle, VariantDual)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("invalid camera distance range [%v, %v]", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("invalid camera fov %v", c.Camera.FOV)
	}
	// Update bleeds 1-Damping of the pending rotation per frame.
	if !(c.Camera.Damping >= 0 && c.Camera.Damping < 1) {
		return fmt.Errorf("camera damping %v out of range [0, 1)", c.Camera.Damping)
	}
	if !validSpeed(c.Camera.RotateSpeed) {
		return fmt.Errorf("invalid camera rotate speed %v", c.Camera.RotateSpeed)
	}
	if !validSpeed(c.Camera.ZoomSpeed) {
		return fmt.Errorf("invalid camera zoom speed %v", c.Camera.ZoomSpeed)
	}
	return nil
}

// validSpeed accepts finite, non-negative gesture speeds; 0 disables the gesture.
func validSpeed(v float32) bool {
	return v >= 0 && !math32.IsInf(v, 0)
}
