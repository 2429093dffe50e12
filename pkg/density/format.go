package density

import (
	"fmt"
	"math"
)

// FormatDensity renders a density with two decimals. Non-finite values are
// rendered verbatim (NaN, +Inf, -Inf).
func FormatDensity(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatPixels renders a pixel count without decimals.
func FormatPixels(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return fmt.Sprintf("%.0f", v)
}

// FormatResolution renders a square texture size, e.g. "2048 x 2048".
func FormatResolution(px float64) string {
	p := FormatPixels(px)
	return p + " x " + p
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "+Inf", true
	case math.IsInf(v, -1):
		return "-Inf", true
	}
	return "", false
}
