package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/texel-architect/texel_architect/pkg/density"
)

func TestPresetPicker_Bounds(t *testing.T) {
	p := NewPresetPickerModel(density.Presets())

	p.MoveUp()
	if p.Cursor() != 0 {
		t.Errorf("MoveUp at top should stay at 0, got %d", p.Cursor())
	}
	for i := 0; i < 10; i++ {
		p.MoveDown()
	}
	if p.Cursor() != 3 {
		t.Errorf("MoveDown should stop at last preset, got %d", p.Cursor())
	}
	sel, ok := p.Selected()
	if !ok || sel.Name != "Background" {
		t.Errorf("Selected = %+v, %v", sel, ok)
	}
}

func TestPresetPicker_SetPresetsClampsCursor(t *testing.T) {
	p := NewPresetPickerModel(density.Presets())
	for i := 0; i < 3; i++ {
		p.MoveDown()
	}
	p.SetPresets(density.Presets()[:2])
	if p.Cursor() != 1 {
		t.Errorf("cursor should clamp to last preset, got %d", p.Cursor())
	}

	p.SetPresets(nil)
	if _, ok := p.Selected(); ok {
		t.Errorf("no selection expected for empty list")
	}
}

func TestPresetPicker_FilterOnlyWhileFiltering(t *testing.T) {
	p := NewPresetPickerModel(density.Presets())
	p, _ = p.Update(keyMsg("x"))
	if p.Query() != "" {
		t.Errorf("keys must be ignored outside filter mode, got %q", p.Query())
	}

	p.StartFilter()
	for _, r := range "third" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := p.Filtered(); len(got) == 0 || got[0].Name != "Third Person" {
		t.Errorf("expected Third Person first, got %+v", got)
	}
	p.StopFilter(true)
	if p.IsFiltering() || len(p.Filtered()) != 4 {
		t.Errorf("StopFilter(true) should clear the query")
	}
}

func TestPresetPicker_View(t *testing.T) {
	theme := *plainTheme()
	p := NewPresetPickerModel(density.Presets())

	out := p.View(true, 10.24, 52, theme)
	if !strings.Contains(out, "▸") {
		t.Errorf("focused view should show the cursor:\n%s", out)
	}
	if !strings.Contains(out, "● First Person (Std)") {
		t.Errorf("active preset should be marked:\n%s", out)
	}
	if !strings.Contains(out, "Hero assets, weapons") {
		t.Errorf("highlighted preset should show its description:\n%s", out)
	}

	p.SetPresets(nil)
	if !strings.Contains(p.View(false, 0, 52, theme), "No presets match") {
		t.Errorf("empty list should say so")
	}
}
