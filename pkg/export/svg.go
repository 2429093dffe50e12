package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// RenderSVG draws the grid preview of snap as an SVG document.
func RenderSVG(w io.Writer, snap model.Snapshot, previewPx float64) error {
	g := grid.New(snap.VisualDensity, previewPx)
	size := int(math.Ceil(g.PreviewPx))
	lineColor := density.Classify(snap.VisualDensity).Color()

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size+2*rulerMargin, size+2*rulerMargin)
	canvas.Title(fmt.Sprintf("Texel density preview: %s px/cm", density.FormatDensity(snap.VisualDensity)))
	canvas.Rect(0, 0, size+2*rulerMargin, size+2*rulerMargin, "fill:"+backdropColor)
	canvas.Rect(rulerMargin, rulerMargin, size, size, "fill:"+surfaceColor)

	switch {
	case g.Saturated():
		canvas.Rect(rulerMargin, rulerMargin, size, size, "fill:"+lineColor+";fill-opacity:0.5")
	case !g.Degenerate():
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%g", lineColor, gridLineWidth))
		for _, off := range g.Lines() {
			p := rulerMargin + int(math.Round(off))
			canvas.Line(p, rulerMargin, p, rulerMargin+size)
			canvas.Line(rulerMargin, p, rulerMargin+size, p)
		}
		canvas.Gend()
	}

	text := "fill:" + rulerTextColor + ";font-family:monospace;font-size:12px;text-anchor:middle"
	canvas.Text(rulerMargin+size/2, rulerMargin+size+rulerMargin/2+4, grid.RulerLabel, text)
	canvas.TranslateRotate(rulerMargin/2+4, rulerMargin+size/2, -90)
	canvas.Text(0, 0, grid.RulerLabel, text)
	canvas.Gend()
	canvas.Text(rulerMargin, rulerMargin/2+4,
		fmt.Sprintf("%s px/cm", density.FormatDensity(snap.VisualDensity)),
		"fill:"+rulerTextColor+";font-family:monospace;font-size:12px")
	canvas.End()

	return ew.err
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
