package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
	"github.com/texel-architect/texel_architect/pkg/version"
)

// Number is a float64 that survives JSON encoding when it is NaN or Inf:
// non-finite values encode as the strings "NaN", "+Inf" and "-Inf".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(density.FormatDensity(f))
	}
	return json.Marshal(f)
}

// ReportInputs mirrors model.Inputs with encodable numbers.
type ReportInputs struct {
	ObjectSizeCm  Number `json:"object_size_cm" yaml:"object_size_cm"`
	TextureSizePx Number `json:"texture_size_px" yaml:"texture_size_px"`
	TargetDensity Number `json:"target_density" yaml:"target_density"`
}

// ReportOutputs mirrors model.Outputs with encodable numbers.
type ReportOutputs struct {
	Density     Number `json:"density" yaml:"density"`
	TextureSize Number `json:"texture_size" yaml:"texture_size"`
	PowerOfTwo  Number `json:"power_of_two" yaml:"power_of_two"`
	Tier        string `json:"tier" yaml:"tier"`
	TierColor   string `json:"tier_color" yaml:"tier_color"`
}

// ReportGrid describes the preview geometry.
type ReportGrid struct {
	VisualDensity Number `json:"visual_density" yaml:"visual_density"`
	CellPx        Number `json:"cell_px" yaml:"cell_px"`
	PreviewPx     Number `json:"preview_px" yaml:"preview_px"`
	Cells         int    `json:"cells" yaml:"cells"`
	ReferenceCm   int    `json:"reference_cm" yaml:"reference_cm"`
}

// Report is the machine-readable form of a calculation. It is also the
// payload of --robot-calc.
type Report struct {
	GeneratedBy string        `json:"generated_by" yaml:"generated_by"`
	Mode        model.Mode    `json:"mode" yaml:"mode"`
	Result      string        `json:"result" yaml:"result"`
	Inputs      ReportInputs  `json:"inputs" yaml:"inputs"`
	Outputs     ReportOutputs `json:"outputs" yaml:"outputs"`
	Grid        ReportGrid    `json:"grid" yaml:"grid"`
}

// NewReport builds a report from a snapshot.
// The tier classifies the visualized density: the computed density in
// DensityMode, the target density in SizeMode.
func NewReport(snap model.Snapshot, previewPx float64) Report {
	g := grid.New(snap.VisualDensity, previewPx)
	tier := density.Classify(snap.VisualDensity)
	return Report{
		GeneratedBy: "ta " + version.Version,
		Mode:        snap.Mode,
		Result:      snap.ResultLine(),
		Inputs: ReportInputs{
			ObjectSizeCm:  Number(snap.Inputs.ObjectSizeCm),
			TextureSizePx: Number(snap.Inputs.TextureSizePx),
			TargetDensity: Number(snap.Inputs.TargetDensity),
		},
		Outputs: ReportOutputs{
			Density:     Number(snap.Outputs.Density),
			TextureSize: Number(snap.Outputs.TextureSize),
			PowerOfTwo:  Number(snap.Outputs.PowerOfTwo),
			Tier:        tier.String(),
			TierColor:   tier.Color(),
		},
		Grid: ReportGrid{
			VisualDensity: Number(g.Density),
			CellPx:        Number(g.CellPx),
			PreviewPx:     Number(g.PreviewPx),
			Cells:         g.Cells(),
			ReferenceCm:   grid.ReferenceCm,
		},
	}
}

// formatNumber renders an input value the shortest way, e.g. 100 or 33.333.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteMarkdown writes a human-readable report.
func (r Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# Texel Density Report\n\n")
	fmt.Fprintf(&b, "**Mode:** %s\n\n", r.Mode.Title())
	fmt.Fprintf(&b, "**Result:** %s\n\n", r.Result)

	b.WriteString("## Inputs\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Object size | %s cm |\n", formatNumber(float64(r.Inputs.ObjectSizeCm)))
	if r.Mode == model.SizeMode {
		fmt.Fprintf(&b, "| Target density | %s px/cm |\n", formatNumber(float64(r.Inputs.TargetDensity)))
	} else {
		fmt.Fprintf(&b, "| Texture resolution | %s |\n", density.FormatResolution(float64(r.Inputs.TextureSizePx)))
	}

	b.WriteString("\n## Outputs\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	if r.Mode == model.SizeMode {
		fmt.Fprintf(&b, "| Required texture size | %s px |\n", density.FormatPixels(float64(r.Outputs.TextureSize)))
		fmt.Fprintf(&b, "| Closest power of 2 | %s px |\n", density.FormatPixels(float64(r.Outputs.PowerOfTwo)))
		fmt.Fprintf(&b, "| Target tier | %s (%s) |\n", r.Outputs.Tier, r.Outputs.TierColor)
	} else {
		fmt.Fprintf(&b, "| Density | %s px/cm |\n", density.FormatDensity(float64(r.Outputs.Density)))
		fmt.Fprintf(&b, "| Quality tier | %s (%s) |\n", r.Outputs.Tier, r.Outputs.TierColor)
	}

	b.WriteString("\n## Grid preview\n\n")
	fmt.Fprintf(&b, "A %dcm x %dcm surface drawn at %s px; one grid cell is %s px.\n\n",
		r.Grid.ReferenceCm, r.Grid.ReferenceCm,
		density.FormatPixels(float64(r.Grid.PreviewPx)),
		density.FormatDensity(float64(r.Grid.CellPx)))
	fmt.Fprintf(&b, "_Generated by %s._\n", r.GeneratedBy)

	_, err := io.WriteString(w, b.String())
	return err
}
