// Package config handles tiltdemo configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/tiltkit/pkg/tilt"
)

// Config holds all tiltdemo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Tilt     TiltConfig     `yaml:"tilt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TiltConfig holds the tilt pose or cycle to apply to the demo surface.
// Corner and Direction use the names from the tilt package
// ("top-right", "clockwise", ...).
type TiltConfig struct {
	Mode            string        `yaml:"mode"` // "static" or "animated"
	Corner          string        `yaml:"corner"`
	Direction       string        `yaml:"direction"`
	Distortion      float64       `yaml:"distortion"`
	AngleDegrees    float64       `yaml:"angle_degrees"`
	Step            float64       `yaml:"step"`
	DurationSeconds float64       `yaml:"duration_seconds"`
	Shadow          *ShadowConfig `yaml:"shadow"`
}

// ShadowConfig holds optional drop-shadow settings. Absent means the demo
// skips shadow output entirely.
type ShadowConfig struct {
	MaxHorizontalOffset       float64    `yaml:"max_horizontal_offset"`
	MaxVerticalOffset         float64    `yaml:"max_vertical_offset"`
	CornerVerticalOffset      float64    `yaml:"corner_vertical_offset"`
	StartVerticalOffset       float64    `yaml:"start_vertical_offset"`
	StartCornerVerticalMedian float64    `yaml:"start_corner_vertical_median"`
	BlurRadius                float64    `yaml:"blur_radius"`
	Opacity                   float64    `yaml:"opacity"`
	Color                     [4]float64 `yaml:"color"` // RGBA, 0..1
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Tilt: TiltConfig{
			Mode:            "animated",
			Corner:          "top-medium",
			Direction:       "clockwise",
			Distortion:      2,
			AngleDegrees:    12,
			Step:            0.5,
			DurationSeconds: 4,
			Shadow: &ShadowConfig{
				MaxHorizontalOffset:       24,
				MaxVerticalOffset:         18,
				CornerVerticalOffset:      14,
				StartVerticalOffset:       10,
				StartCornerVerticalMedian: 12,
				BlurRadius:                16,
				Opacity:                   0.4,
				Color:                     [4]float64{0, 0, 0, 1},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Build converts the tilt section into an engine configuration, validating
// names and numeric preconditions.
func (t TiltConfig) Build() (tilt.Config, error) {
	corner, err := tilt.ParseCorner(t.Corner)
	if err != nil {
		return nil, fmt.Errorf("tilt corner: %w", err)
	}
	if t.Distortion == 0 {
		return nil, fmt.Errorf("tilt distortion must be non-zero")
	}

	var shadow *tilt.ShadowStyle
	if t.Shadow != nil {
		shadow = &tilt.ShadowStyle{
			MaxHorizontalOffset:       t.Shadow.MaxHorizontalOffset,
			MaxVerticalOffset:         t.Shadow.MaxVerticalOffset,
			CornerVerticalOffset:      t.Shadow.CornerVerticalOffset,
			StartVerticalOffset:       t.Shadow.StartVerticalOffset,
			StartCornerVerticalMedian: t.Shadow.StartCornerVerticalMedian,
			BlurRadius:                t.Shadow.BlurRadius,
			Opacity:                   t.Shadow.Opacity,
			Color: tilt.Color{
				R: t.Shadow.Color[0],
				G: t.Shadow.Color[1],
				B: t.Shadow.Color[2],
				A: t.Shadow.Color[3],
			},
		}
	}

	switch t.Mode {
	case "static":
		return tilt.StaticPose{
			Corner:       corner,
			Distortion:   t.Distortion,
			AngleDegrees: t.AngleDegrees,
			Step:         t.Step,
			Shadow:       shadow,
		}, nil
	case "animated":
		dir, err := tilt.ParseDirection(t.Direction)
		if err != nil {
			return nil, fmt.Errorf("tilt direction: %w", err)
		}
		if t.DurationSeconds <= 0 {
			return nil, fmt.Errorf("tilt duration must be positive, got %v", t.DurationSeconds)
		}
		return tilt.AnimatedCycle{
			From:         corner,
			Direction:    dir,
			Distortion:   t.Distortion,
			AngleDegrees: t.AngleDegrees,
			Step:         t.Step,
			Duration:     time.Duration(t.DurationSeconds * float64(time.Second)),
			Shadow:       shadow,
		}, nil
	}
	return nil, fmt.Errorf("unknown tilt mode %q", t.Mode)
}
