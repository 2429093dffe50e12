package export

import (
	"fmt"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/font/basicfont"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// Canvas layout shared by the raster and SVG renderers.
const (
	rulerMargin    = 28
	surfaceColor   = "#1e293b"
	backdropColor  = "#0f172a"
	rulerTextColor = "#cbd5e1"
	gridLineWidth  = 1.0
)

// RenderPNG draws the grid preview of snap as a PNG image.
func RenderPNG(w io.Writer, snap model.Snapshot, previewPx float64) error {
	return drawGrid(snap, previewPx).EncodePNG(w)
}

// RenderWebP draws the grid preview as a lossless WebP image.
func RenderWebP(w io.Writer, snap model.Snapshot, previewPx float64) error {
	return nativewebp.Encode(w, drawGrid(snap, previewPx).Image(), nil)
}

// RenderTGA draws the grid preview as an uncompressed TGA image, the format
// most engines accept for checker textures.
func RenderTGA(w io.Writer, snap model.Snapshot, previewPx float64) error {
	return tga.Encode(w, drawGrid(snap, previewPx).Image())
}

func drawGrid(snap model.Snapshot, previewPx float64) *gg.Context {
	g := grid.New(snap.VisualDensity, previewPx)
	size := int(math.Ceil(g.PreviewPx))
	lineColor := density.Classify(snap.VisualDensity).Color()

	dc := gg.NewContext(size+2*rulerMargin, size+2*rulerMargin)
	dc.SetHexColor(backdropColor)
	dc.Clear()

	x0, y0 := float64(rulerMargin), float64(rulerMargin)
	dc.DrawRectangle(x0, y0, g.PreviewPx, g.PreviewPx)
	dc.SetHexColor(surfaceColor)
	dc.Fill()

	switch {
	case g.Saturated():
		dc.DrawRectangle(x0, y0, g.PreviewPx, g.PreviewPx)
		dc.SetHexColor(lineColor + "80")
		dc.Fill()
	case !g.Degenerate():
		dc.SetHexColor(lineColor)
		dc.SetLineWidth(gridLineWidth)
		for _, off := range g.Lines() {
			dc.DrawLine(x0+off, y0, x0+off, y0+g.PreviewPx)
			dc.DrawLine(x0, y0+off, x0+g.PreviewPx, y0+off)
		}
		dc.Stroke()
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor(rulerTextColor)
	dc.DrawStringAnchored(grid.RulerLabel, x0+g.PreviewPx/2, y0+g.PreviewPx+rulerMargin/2, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(-math.Pi/2, x0/2, y0+g.PreviewPx/2)
	dc.DrawStringAnchored(grid.RulerLabel, x0/2, y0+g.PreviewPx/2, 0.5, 0.5)
	dc.Pop()

	caption := fmt.Sprintf("%s px/cm", density.FormatDensity(snap.VisualDensity))
	dc.DrawStringAnchored(caption, x0, y0/2, 0, 0.5)

	return dc
}
