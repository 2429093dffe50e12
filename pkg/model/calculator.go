// Package model holds the calculator state owned by the view layer.
//
// A Calculator keeps Inputs and the Outputs derived from them. Every setter
// recomputes the outputs before returning, so a caller rendering right after
// a mutation never sees a stale result.
package model

import (
	"github.com/texel-architect/texel_architect/pkg/density"
)

// Calculator is the single state record behind a calculator view
type Calculator struct {
	mode    Mode
	inputs  Inputs
	outputs Outputs
}

// NewCalculator creates a calculator and computes its initial outputs.
// An invalid mode falls back to DensityMode.
func NewCalculator(mode Mode, in Inputs) *Calculator {
	if !mode.IsValid() {
		mode = DensityMode
	}
	c := &Calculator{mode: mode, inputs: in}
	c.recompute()
	return c
}

// Mode returns the active mode
func (c *Calculator) Mode() Mode { return c.mode }

// Inputs returns a copy of the current inputs
func (c *Calculator) Inputs() Inputs { return c.inputs }

// Outputs returns a copy of the derived outputs
func (c *Calculator) Outputs() Outputs { return c.outputs }

// SetMode switches the active mode. Inputs are shared between modes and
// left untouched.
func (c *Calculator) SetMode(m Mode) {
	if !m.IsValid() {
		return
	}
	c.mode = m
	c.recompute()
}

// SetObjectSize sets the object edge length in centimeters
func (c *Calculator) SetObjectSize(cm float64) {
	c.inputs.ObjectSizeCm = cm
	c.recompute()
}

// SetTextureSize sets the texture edge length in pixels
func (c *Calculator) SetTextureSize(px float64) {
	c.inputs.TextureSizePx = px
	c.recompute()
}

// SetTargetDensity sets the desired density in px/cm
func (c *Calculator) SetTargetDensity(pxPerCm float64) {
	c.inputs.TargetDensity = pxPerCm
	c.recompute()
}

// SetObjectSizeText coerces free text and sets it as the object size
func (c *Calculator) SetObjectSizeText(s string) {
	c.SetObjectSize(CoerceNumber(s))
}

// SetTargetDensityText coerces free text and sets it as the target density
func (c *Calculator) SetTargetDensityText(s string) {
	c.SetTargetDensity(CoerceNumber(s))
}

// ApplyPreset overwrites the target density with the preset's value.
func (c *Calculator) ApplyPreset(p density.Preset) {
	c.SetTargetDensity(p.Density)
}

// VisualDensity is the density the grid preview draws: the computed density
// in DensityMode, the target density in SizeMode.
func (c *Calculator) VisualDensity() float64 {
	if c.mode == SizeMode {
		return c.inputs.TargetDensity
	}
	return c.outputs.Density
}

// Snapshot returns an immutable copy of the current state
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		Mode:          c.mode,
		Inputs:        c.inputs,
		Outputs:       c.outputs,
		VisualDensity: c.VisualDensity(),
	}
}

func (c *Calculator) recompute() {
	in := c.inputs
	d := density.ComputeDensity(in.ObjectSizeCm, in.TextureSizePx)
	size := density.ComputeTextureSize(in.ObjectSizeCm, in.TargetDensity)
	c.outputs = Outputs{
		Density:     d,
		TextureSize: size,
		PowerOfTwo:  density.NearestPowerOfTwo(size),
		Tier:        density.Classify(d),
	}
}
