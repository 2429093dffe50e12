// Package density implements the texel density formulas: converting between
// object size, texture resolution and pixel-per-centimeter density.
//
// All functions are pure. Degenerate input (zero or negative sizes, NaN) is
// not rejected; the non-finite result is returned and shown as-is.
package density

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DensityPrecision is the number of decimal places a computed density keeps.
const DensityPrecision = 2

// ComputeDensity returns textureSizePx / objectSizeCm in px/cm, rounded to
// two decimal places.
func ComputeDensity(objectSizeCm, textureSizePx float64) float64 {
	return scalar.Round(textureSizePx/objectSizeCm, DensityPrecision)
}

// ComputeTextureSize returns the texture edge length in pixels needed to hit
// targetDensity on an object of objectSizeCm. The result is integral but kept
// as float64 so NaN and Inf survive.
func ComputeTextureSize(objectSizeCm, targetDensity float64) float64 {
	return roundHalfUp(targetDensity * objectSizeCm)
}

// NearestPowerOfTwo returns 2^round(log2(value)). The rounding happens in log
// space, so 1500 maps to 2048 rather than 1024.
// Zero yields 0; negative values and NaN yield NaN.
func NearestPowerOfTwo(value float64) float64 {
	return math.Pow(2, roundHalfUp(math.Log2(value)))
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
// x+0.5 is never formed: it rounds up just below 0.5 and rounds odd
// integers above 2^52 to their even neighbour.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
