// Package config loads the viewer's YAML configuration and watches it for
// edits so the running viewer can re-apply changes without a restart.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type AxisConfig struct {
	AnchorX       float64 `yaml:"anchor_x"`
	AnchorY       float64 `yaml:"anchor_y"`
	Size          float64 `yaml:"size"`
	SeismicCoords bool    `yaml:"seismic_coords"`
	Visible       bool    `yaml:"visible"`
}

type CameraConfig struct {
	Azimuth   float64 `yaml:"azimuth"`
	Elevation float64 `yaml:"elevation"`
}

type TourConfig struct {
	Script string `yaml:"script"`
}

type Config struct {
	Axis   AxisConfig   `yaml:"axis"`
	Camera CameraConfig `yaml:"camera"`
	Tour   TourConfig   `yaml:"tour"`
}

// Default mirrors the legend's historical defaults: anchored near the
// top-left corner, seismic z-down convention on.
func Default() Config {
	return Config{
		Axis: AxisConfig{
			AnchorX:       60,
			AnchorY:       60,
			Size:          50,
			SeismicCoords: true,
			Visible:       true,
		},
		Camera: CameraConfig{
			Azimuth:   30,
			Elevation: 30,
		},
	}
}

// Load reads and parses a config file. Missing fields keep their zero
// values; callers wanting defaults should start from Default and overlay.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse unmarshals config YAML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
