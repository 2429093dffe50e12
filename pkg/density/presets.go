package density

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Preset is a named texel density target for a common use case.
type Preset struct {
	Name        string  `json:"name" yaml:"name"`
	Density     float64 `json:"density" yaml:"density"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

var builtinPresets = []Preset{
	{Name: "First Person (High)", Density: 20.48, Description: "Hero assets, weapons"},
	{Name: "First Person (Std)", Density: 10.24, Description: "Environment, props"},
	{Name: "Third Person", Density: 5.12, Description: "General gameplay"},
	{Name: "Background", Density: 2.56, Description: "Distant objects"},
}

// Presets returns a copy of the built-in presets, highest density first.
func Presets() []Preset {
	return slices.Clone(builtinPresets)
}

// FindPresets fuzzy-matches query against preset names and descriptions.
// Results are ordered by match score; an empty query returns every preset.
func FindPresets(query string, presets []Preset) []Preset {
	if query == "" {
		return slices.Clone(presets)
	}
	searchStrings := make([]string, len(presets))
	for i, p := range presets {
		searchStrings[i] = p.Name + " " + p.Description
	}
	matches := fuzzy.Find(query, searchStrings)
	out := make([]Preset, 0, len(matches))
	for _, match := range matches {
		out = append(out, presets[match.Index])
	}
	return out
}

// Resolutions are the selectable square texture sizes in pixels.
var Resolutions = []float64{512, 1024, 2048, 4096, 8192}

// DefaultResolution is the resolution selected at startup.
const DefaultResolution = 2048

// ResolutionIndex returns the index of px in Resolutions, or -1.
func ResolutionIndex(px float64) int {
	return slices.Index(Resolutions, px)
}

// NextResolution returns the resolution after px, wrapping to the smallest.
// Values outside the set move to the default.
func NextResolution(px float64) float64 {
	i := ResolutionIndex(px)
	if i < 0 {
		return DefaultResolution
	}
	return Resolutions[(i+1)%len(Resolutions)]
}

// PrevResolution returns the resolution before px, wrapping to the largest.
func PrevResolution(px float64) float64 {
	i := ResolutionIndex(px)
	if i < 0 {
		return DefaultResolution
	}
	return Resolutions[(i-1+len(Resolutions))%len(Resolutions)]
}
