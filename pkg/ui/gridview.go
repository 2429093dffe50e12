package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
)

// VisualizerHint is shown under the preview.
const VisualizerHint = "The grid represents the texel density on a 1m² surface. Denser grid = Sharper textures."

const (
	glyphEmpty     = ' '
	glyphVertical  = '│'
	glyphHorizont  = '─'
	glyphCross     = '┼'
	glyphSaturated = '▓'
)

// GridCells lays out grid lines on a cols×rows character canvas. Terminal
// cells are roughly twice as tall as they are wide, so callers pass rows ≈
// cols/2 to keep the surface square.
func GridCells(g grid.Grid, cols, rows int) [][]rune {
	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = make([]rune, cols)
		for x := range canvas[y] {
			canvas[y][x] = glyphEmpty
		}
	}
	if cols <= 0 || rows <= 0 || g.Degenerate() {
		return canvas
	}
	if g.Saturated() {
		for y := range canvas {
			for x := range canvas[y] {
				canvas[y][x] = glyphSaturated
			}
		}
		return canvas
	}

	lines := g.Lines()
	for _, off := range lines {
		x := g.Scale(off, cols)
		for y := 0; y < rows; y++ {
			canvas[y][x] = glyphVertical
		}
	}
	for _, off := range lines {
		y := g.Scale(off, rows)
		for x := 0; x < cols; x++ {
			if canvas[y][x] == glyphVertical || canvas[y][x] == glyphCross {
				canvas[y][x] = glyphCross
			} else {
				canvas[y][x] = glyphHorizont
			}
		}
	}
	return canvas
}

// RenderGrid draws the 1 m² preview with rulers on the left and bottom edges.
func RenderGrid(g grid.Grid, cols, rows int, t Theme) string {
	canvas := GridCells(g, cols, rows)
	lineStyle := t.Renderer.NewStyle().Foreground(TierColor(density.Classify(g.Density)))
	rulerStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	borderStyle := t.Renderer.NewStyle().Foreground(t.Border)

	vLabel := verticalLabel(grid.RulerLabel, rows)

	var b strings.Builder
	b.WriteString("  " + borderStyle.Render("┌"+strings.Repeat("─", cols)+"┐") + "\n")
	for y, row := range canvas {
		b.WriteString(rulerStyle.Render(string(vLabel[y])) + " ")
		b.WriteString(borderStyle.Render("│"))
		b.WriteString(lineStyle.Render(string(row)))
		b.WriteString(borderStyle.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString("  " + borderStyle.Render("└"+strings.Repeat("─", cols)+"┘") + "\n")
	b.WriteString("   " + rulerStyle.Render(centerText(grid.RulerLabel, cols)))

	if g.Degenerate() {
		b.WriteString("\n" + t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).
			Render(centerText("no grid for "+density.FormatDensity(g.Density)+" px/cm", cols+4)))
	}
	return b.String()
}

// RenderVisualizerHint wraps the hint to width.
func RenderVisualizerHint(width int, t Theme) string {
	if width < 10 {
		width = 10
	}
	return t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).
		Render(wordwrap.String(VisualizerHint, width))
}

// GridSize picks a preview canvas that fits in width columns.
func GridSize(width int) (cols, rows int) {
	cols = width - 6
	if cols > MaxGridCols {
		cols = MaxGridCols
	}
	if cols < MinGridCols {
		cols = MinGridCols
	}
	rows = cols / 2
	if rows < MinGridRows {
		rows = MinGridRows
	}
	return cols, rows
}

// verticalLabel stacks label's runes centered in a column of n cells.
func verticalLabel(label string, n int) []rune {
	col := make([]rune, n)
	for i := range col {
		col[i] = ' '
	}
	runes := []rune(label)
	if len(runes) > n {
		runes = runes[:n]
	}
	start := (n - len(runes)) / 2
	copy(col[start:], runes)
	return col
}

// centerText pads s with spaces to sit centered in width display cells.
func centerText(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
