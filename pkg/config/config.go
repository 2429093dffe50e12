// Package config loads ta's YAML configuration: startup inputs, the preview
// size, the export directory and extra named presets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// ErrUnknownResolution is returned when a texture size is not one of the
// selectable resolutions.
var ErrUnknownResolution = errors.New("unsupported texture resolution")

// Config holds runtime configuration. Fields are loaded from YAML and may be
// overridden by command-line flags.
type Config struct {
	Mode          model.Mode       `yaml:"mode"`
	ObjectSizeCm  float64          `yaml:"object_size_cm"`
	TextureSizePx float64          `yaml:"texture_size_px"`
	TargetDensity float64          `yaml:"target_density"`
	PreviewPx     float64          `yaml:"preview_px"`
	ExportDir     string           `yaml:"export_dir"`
	Presets       []density.Preset `yaml:"presets,omitempty"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	in := model.DefaultInputs()
	return &Config{
		Mode:          model.DensityMode,
		ObjectSizeCm:  in.ObjectSizeCm,
		TextureSizePx: in.TextureSizePx,
		TargetDensity: in.TargetDensity,
		PreviewPx:     grid.DefaultPreviewPx,
		ExportDir:     ".",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/texel_architect/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "texel_architect", FileName), nil
}

// Validate normalizes values to usable ranges. Object size and target
// density are deliberately left alone: the calculator accepts any number.
func (c *Config) Validate() error {
	if !c.Mode.IsValid() {
		c.Mode = model.DensityMode
	}
	if density.ResolutionIndex(c.TextureSizePx) < 0 {
		c.TextureSizePx = density.DefaultResolution
	}
	c.PreviewPx = grid.ClampPreview(c.PreviewPx)
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	c.Presets = slices.DeleteFunc(c.Presets, func(p density.Preset) bool {
		return p.Name == ""
	})
	return nil
}

// Inputs returns the configured startup inputs
func (c *Config) Inputs() model.Inputs {
	return model.Inputs{
		ObjectSizeCm:  c.ObjectSizeCm,
		TextureSizePx: c.TextureSizePx,
		TargetDensity: c.TargetDensity,
	}
}

// AllPresets returns the built-in presets followed by the configured ones.
func (c *Config) AllPresets() []density.Preset {
	return append(density.Presets(), c.Presets...)
}

// Load reads configuration from path. A missing file yields DefaultConfig.
// On a parse error the defaults are returned together with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// CheckResolution returns ErrUnknownResolution unless px is selectable.
func CheckResolution(px float64) error {
	if density.ResolutionIndex(px) < 0 {
		return fmt.Errorf("%w: %v (want one of %v)", ErrUnknownResolution, px, density.Resolutions)
	}
	return nil
}
