// Package config loads the optional mediakit.yaml manifest, which lets an
// application declare named picker and camera option presets instead of
// building options in code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nextcore/mediakit/pkg/media"
)

// ManifestName is the file read from the application directory.
const ManifestName = "mediakit.yaml"

// Config represents the optional mediakit.yaml configuration.
type Config struct {
	Pickers map[string]PickerPreset `yaml:"presets"`
	Cameras map[string]CameraPreset `yaml:"camera"`
}

// PickerPreset is a named gallery-picker option set.
type PickerPreset struct {
	MediaTypes     string   `yaml:"mediaTypes,omitempty"`
	AllowsEditing  bool     `yaml:"allowsEditing,omitempty"`
	AllowMultiple  bool     `yaml:"allowMultiple,omitempty"`
	AspectWidth    int      `yaml:"aspectWidth,omitempty"`
	AspectHeight   int      `yaml:"aspectHeight,omitempty"`
	Quality        *float64 `yaml:"quality,omitempty"`
	SelectionLimit int      `yaml:"selectionLimit,omitempty"`
}

// CameraPreset is a named camera option set.
type CameraPreset struct {
	Quality                 *float64 `yaml:"quality,omitempty"`
	AllowsEditing           bool     `yaml:"allowsEditing,omitempty"`
	AspectWidth             int      `yaml:"aspectWidth,omitempty"`
	AspectHeight            int      `yaml:"aspectHeight,omitempty"`
	Base64                  bool     `yaml:"base64,omitempty"`
	VideoMaxDurationSeconds int      `yaml:"videoMaxDurationSeconds,omitempty"`
}

// Load reads mediakit.yaml from dir if present. A missing manifest is not
// an error; it yields an empty config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}

	return &cfg, nil
}

// Picker resolves a named picker preset into options. Unset preset fields
// keep their zero value so the usual option defaults apply downstream.
func (c *Config) Picker(name string) (media.PickerOptions, bool) {
	preset, ok := c.Pickers[name]
	if !ok {
		return media.PickerOptions{}, false
	}

	opts := media.PickerOptions{
		Types:                   media.Type(preset.MediaTypes),
		AllowsEditing:           preset.AllowsEditing,
		AllowsMultipleSelection: preset.AllowMultiple,
		SelectionLimit:          preset.SelectionLimit,
	}
	if preset.Quality != nil {
		opts.Quality = media.Quality(*preset.Quality)
	}
	if preset.AspectWidth > 0 && preset.AspectHeight > 0 {
		opts.Aspect = &media.Aspect{Width: preset.AspectWidth, Height: preset.AspectHeight}
	}
	return opts, true
}

// Camera resolves a named camera preset into options.
func (c *Config) Camera(name string) (media.CameraOptions, bool) {
	preset, ok := c.Cameras[name]
	if !ok {
		return media.CameraOptions{}, false
	}

	opts := media.CameraOptions{
		AllowsEditing:    preset.AllowsEditing,
		Base64:           preset.Base64,
		VideoMaxDuration: time.Duration(preset.VideoMaxDurationSeconds) * time.Second,
	}
	if preset.Quality != nil {
		opts.Quality = media.Quality(*preset.Quality)
	}
	if preset.AspectWidth > 0 && preset.AspectHeight > 0 {
		opts.Aspect = &media.Aspect{Width: preset.AspectWidth, Height: preset.AspectHeight}
	}
	return opts, true
}
