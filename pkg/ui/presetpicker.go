package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/texel-architect/texel_architect/pkg/density"
)

// PresetPickerModel is the preset list shown in size mode, with an optional
// fuzzy filter.
type PresetPickerModel struct {
	presets  []density.Preset
	filtered []density.Preset
	cursor   int

	filterInput textinput.Model
	filtering   bool
}

// NewPresetPickerModel creates a picker over presets.
func NewPresetPickerModel(presets []density.Preset) PresetPickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter presets..."
	ti.Prompt = "/ "
	ti.CharLimit = 48
	ti.Width = 30

	m := PresetPickerModel{filterInput: ti}
	m.SetPresets(presets)
	return m
}

// SetPresets replaces the preset list, keeping the active filter.
func (m *PresetPickerModel) SetPresets(presets []density.Preset) {
	m.presets = append([]density.Preset(nil), presets...)
	m.refilter()
}

// Presets returns every preset, unfiltered.
func (m PresetPickerModel) Presets() []density.Preset { return m.presets }

// Filtered returns the presets matching the current filter.
func (m PresetPickerModel) Filtered() []density.Preset { return m.filtered }

// Cursor returns the highlighted index within Filtered.
func (m PresetPickerModel) Cursor() int { return m.cursor }

// IsFiltering returns true while the filter input has focus.
func (m PresetPickerModel) IsFiltering() bool { return m.filtering }

// Query returns the current filter text.
func (m PresetPickerModel) Query() string { return m.filterInput.Value() }

// MoveUp moves the highlight up, stopping at the top.
func (m *PresetPickerModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the highlight down, stopping at the bottom.
func (m *PresetPickerModel) MoveDown() {
	if m.cursor < len(m.filtered)-1 {
		m.cursor++
	}
}

// Selected returns the highlighted preset.
func (m PresetPickerModel) Selected() (density.Preset, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return density.Preset{}, false
	}
	return m.filtered[m.cursor], true
}

// StartFilter focuses the filter input.
func (m *PresetPickerModel) StartFilter() tea.Cmd {
	m.filtering = true
	return m.filterInput.Focus()
}

// StopFilter leaves filter mode. When reset is true the query is dropped.
func (m *PresetPickerModel) StopFilter(reset bool) {
	m.filtering = false
	m.filterInput.Blur()
	if reset {
		m.filterInput.SetValue("")
		m.refilter()
	}
}

// Update forwards key input to the filter while filtering.
func (m PresetPickerModel) Update(msg tea.Msg) (PresetPickerModel, tea.Cmd) {
	if !m.filtering {
		return m, nil
	}
	var cmd tea.Cmd
	before := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *PresetPickerModel) refilter() {
	m.filtered = density.FindPresets(m.filterInput.Value(), m.presets)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the list. focused highlights the cursor row; active marks
// the preset whose density equals the current target.
func (m PresetPickerModel) View(focused bool, active float64, width int, t Theme) string {
	var b strings.Builder

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("  No presets match"))
		return b.String()
	}

	nameStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	valStyle := t.Renderer.NewStyle().Foreground(t.Muted)
	cursorStyle := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true)

	nameWidth := width - 20
	if nameWidth < 12 {
		nameWidth = 12
	}

	for i, p := range m.filtered {
		marker := "  "
		if p.Density == active {
			marker = "● "
		}
		name := p.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}
		line := fmt.Sprintf("%s%-*s %8s px/cm", marker, nameWidth, name, density.FormatDensity(p.Density))
		if focused && i == m.cursor {
			b.WriteString(cursorStyle.Render("▸" + line))
		} else {
			b.WriteString(" " + nameStyle.Render(line))
		}
		if focused && i == m.cursor && p.Description != "" {
			b.WriteString("\n   " + valStyle.Render(p.Description))
		}
		if i < len(m.filtered)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
