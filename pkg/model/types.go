package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/texel-architect/texel_architect/pkg/density"
)

// Mode selects which derived quantity the calculator shows
type Mode string

const (
	// DensityMode derives px/cm from object size and texture resolution
	DensityMode Mode = "density"
	// SizeMode derives the texture resolution from object size and a target density
	SizeMode Mode = "size"
)

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown mode")

// IsValid returns true if the mode is a recognized value
func (m Mode) IsValid() bool {
	switch m {
	case DensityMode, SizeMode:
		return true
	}
	return false
}

// Title returns the tab label for the mode
func (m Mode) Title() string {
	if m == SizeMode {
		return "Calculate Texture Size"
	}
	return "Calculate Density"
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == SizeMode {
		return DensityMode
	}
	return SizeMode
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return DensityMode, fmt.Errorf("%w: %q (want density or size)", ErrUnknownMode, s)
	}
	return m, nil
}

// Inputs holds the user-editable values
type Inputs struct {
	ObjectSizeCm  float64 `json:"object_size_cm" yaml:"object_size_cm"`
	TextureSizePx float64 `json:"texture_size_px" yaml:"texture_size_px"`
	TargetDensity float64 `json:"target_density" yaml:"target_density"`
}

// DefaultInputs returns the startup values: a 1m object, a 2K texture and
// the standard first person density.
func DefaultInputs() Inputs {
	return Inputs{
		ObjectSizeCm:  100,
		TextureSizePx: density.DefaultResolution,
		TargetDensity: 10.24,
	}
}

// Outputs holds values derived from Inputs. They are never set directly.
type Outputs struct {
	Density     float64      `json:"density"`
	TextureSize float64      `json:"texture_size"`
	PowerOfTwo  float64      `json:"power_of_two"`
	Tier        density.Tier `json:"-"`
}

// Snapshot is an immutable copy of the calculator state
type Snapshot struct {
	Mode          Mode
	Inputs        Inputs
	Outputs       Outputs
	VisualDensity float64
}

// ResultLine renders the headline result for the snapshot's mode, e.g.
// "20.48 px/cm (High)" or "1024 px (closest power of 2: 1024)".
func (s Snapshot) ResultLine() string {
	if s.Mode == SizeMode {
		return fmt.Sprintf("%s px (closest power of 2: %s)",
			density.FormatPixels(s.Outputs.TextureSize),
			density.FormatPixels(s.Outputs.PowerOfTwo))
	}
	return fmt.Sprintf("%s px/cm (%s)", density.FormatDensity(s.Outputs.Density), s.Outputs.Tier)
}
