package grid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCellSize(t *testing.T) {
	if got := CellSize(20.48); !scalar.EqualWithinAbs(got, 204.8, 1e-9) {
		t.Errorf("CellSize(20.48) = %v, want 204.8", got)
	}
	if got := CellSize(2.56); !scalar.EqualWithinAbs(got, 25.6, 1e-9) {
		t.Errorf("CellSize(2.56) = %v, want 25.6", got)
	}
}

func TestNew_DefaultPreview(t *testing.T) {
	for _, px := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if g := New(10, px); g.PreviewPx != DefaultPreviewPx {
			t.Errorf("New(10, %v).PreviewPx = %v, want default", px, g.PreviewPx)
		}
	}
}

func TestNew_CapsPreview(t *testing.T) {
	if g := New(10, 1e7); g.PreviewPx != MaxPreviewPx {
		t.Errorf("New(10, 1e7).PreviewPx = %v, want %v", g.PreviewPx, MaxPreviewPx)
	}
	if g := New(10, 800); g.PreviewPx != 800 {
		t.Errorf("New(10, 800).PreviewPx = %v, want 800", g.PreviewPx)
	}
}

func TestLines(t *testing.T) {
	g := New(10.24, 400)
	lines := g.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines for 102.4px cells in 400px, got %d: %v", len(lines), lines)
	}
	if lines[0] != 0 || lines[1] != g.CellPx {
		t.Errorf("unexpected line offsets: %v", lines)
	}
	for _, off := range lines {
		if off >= g.PreviewPx {
			t.Errorf("line %v outside preview", off)
		}
	}

	// Exact fit: 100px cells in 400px give lines at 0,100,200,300.
	if got := New(10, 400).Lines(); len(got) != 4 || got[3] != 300 {
		t.Errorf("exact fit lines = %v", got)
	}
}

func TestDegenerateAndSaturated(t *testing.T) {
	tests := []struct {
		density    float64
		degenerate bool
		saturated  bool
	}{
		{10, false, false},
		{0, true, false},
		{-1, true, false},
		{math.NaN(), true, false},
		{math.Inf(1), true, false},
		{0.05, false, true},
	}
	for _, tt := range tests {
		g := New(tt.density, 400)
		if g.Degenerate() != tt.degenerate {
			t.Errorf("density %v: Degenerate = %v, want %v", tt.density, g.Degenerate(), tt.degenerate)
		}
		if g.Saturated() != tt.saturated {
			t.Errorf("density %v: Saturated = %v, want %v", tt.density, g.Saturated(), tt.saturated)
		}
		if (tt.degenerate || tt.saturated) && len(g.Lines()) != 0 {
			t.Errorf("density %v: expected no lines", tt.density)
		}
	}
}

func TestScale(t *testing.T) {
	g := New(10, 400)
	if got := g.Scale(0, 41); got != 0 {
		t.Errorf("Scale(0) = %d", got)
	}
	if got := g.Scale(200, 41); got != 20 {
		t.Errorf("Scale(200) = %d, want 20", got)
	}
	if got := g.Scale(400, 41); got != 40 {
		t.Errorf("Scale(400) = %d, want 40", got)
	}
	if got := g.Scale(100, 1); got != 0 {
		t.Errorf("Scale with size 1 = %d", got)
	}
}

func TestCmPerCell(t *testing.T) {
	if got := New(10, 400).CmPerCell(); got != 25 {
		t.Errorf("CmPerCell = %v, want 25", got)
	}
}
