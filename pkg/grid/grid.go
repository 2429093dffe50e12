// Package grid computes the geometry of the texel density preview: a 1 m²
// reference surface overlaid with a repeating grid whose cell size in display
// pixels is ten times the density being visualized.
//
// Renderers (terminal, PNG, SVG) consume a Grid and only decide how to draw it.
package grid

import "math"

const (
	// ReferenceCm is the edge length of the previewed surface.
	ReferenceCm = 100

	// DefaultPreviewPx is the default display edge length of the preview.
	DefaultPreviewPx = 400

	// MaxPreviewPx caps the preview edge so raster canvases stay allocatable.
	MaxPreviewPx = 4096

	// CellScale converts px/cm density into display pixels per grid cell.
	CellScale = 10

	// RulerLabel is drawn on both axes of every rendering.
	RulerLabel = "100cm"
)

// CellSize returns the display size of one grid cell for a density.
func CellSize(density float64) float64 {
	return CellScale * density
}

// Grid is the preview geometry for one density value.
type Grid struct {
	Density   float64
	PreviewPx float64
	CellPx    float64
}

// New returns the grid for density drawn into a previewPx square.
// A non-positive or non-finite previewPx uses DefaultPreviewPx; larger
// values are capped at MaxPreviewPx.
func New(density, previewPx float64) Grid {
	previewPx = ClampPreview(previewPx)
	return Grid{
		Density:   density,
		PreviewPx: previewPx,
		CellPx:    CellSize(density),
	}
}

// ClampPreview maps previewPx into (0, MaxPreviewPx], substituting
// DefaultPreviewPx for non-positive, NaN and infinite values.
func ClampPreview(previewPx float64) float64 {
	if !(previewPx > 0) || math.IsInf(previewPx, 0) {
		return DefaultPreviewPx
	}
	return math.Min(previewPx, MaxPreviewPx)
}

// Degenerate reports whether no grid can be drawn: the cell size is NaN,
// infinite, zero or negative.
func (g Grid) Degenerate() bool {
	return math.IsNaN(g.CellPx) || math.IsInf(g.CellPx, 0) || g.CellPx <= 0
}

// Saturated reports whether cells are smaller than one display pixel, in
// which case the preview is drawn as a filled area.
func (g Grid) Saturated() bool {
	return !g.Degenerate() && g.CellPx < 1
}

// Cells returns how many whole or partial cells span one axis.
func (g Grid) Cells() int {
	if g.Degenerate() || g.Saturated() {
		return 0
	}
	return int(math.Ceil(g.PreviewPx / g.CellPx))
}

// Lines returns the offsets of the grid lines along one axis, starting at 0
// and strictly below PreviewPx. It is empty for degenerate or saturated grids.
func (g Grid) Lines() []float64 {
	n := g.Cells()
	if n == 0 {
		return nil
	}
	lines := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		off := float64(i) * g.CellPx
		if off >= g.PreviewPx {
			break
		}
		lines = append(lines, off)
	}
	return lines
}

// CmPerCell returns how many real centimeters one preview cell covers.
func (g Grid) CmPerCell() float64 {
	return g.CellPx * ReferenceCm / g.PreviewPx
}

// Scale maps a preview offset onto a target extent of size cells, e.g. a
// terminal column count.
func (g Grid) Scale(off float64, size int) int {
	if size <= 1 {
		return 0
	}
	i := int(math.Round(off / g.PreviewPx * float64(size-1)))
	if i < 0 {
		return 0
	}
	if i > size-1 {
		return size - 1
	}
	return i
}
