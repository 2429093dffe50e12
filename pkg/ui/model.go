// Package ui implements the Texel Architect terminal interface: a two-tab
// calculator with a grid visualizer, built on bubbletea and lipgloss.
package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/texel-architect/texel_architect/pkg/debuglog"
	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/export"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// Field identifies a focusable control.
type Field int

const (
	FieldObjectSize Field = iota
	FieldResolution
	FieldTargetDensity
	FieldPresets
)

// ConfigReloadedMsg carries presets and settings from a re-read config file.
type ConfigReloadedMsg struct {
	Presets   []density.Preset
	PreviewPx float64
	ExportDir string
	Err       error
}

// exportDoneMsg reports the result of an export started with ctrl+e.
type exportDoneMsg struct {
	paths []string
	err   error
}

// statusMsg replaces the status line.
type statusMsg struct {
	text  string
	isErr bool
}

// Options configures NewModel. Zero values use defaults.
type Options struct {
	Presets   []density.Preset
	PreviewPx float64
	ExportDir string
	Theme     *Theme
	Keys      *KeyMap

	// Clipboard overrides the system clipboard writer (tests).
	Clipboard func(string) error
}

// Model is the root bubbletea model.
type Model struct {
	calc *model.Calculator

	objectInput textinput.Model
	targetInput textinput.Model
	presets     PresetPickerModel
	focus       Field

	help  HelpOverlayModel
	about AboutModel

	keys      KeyMap
	theme     Theme
	previewPx float64
	exportDir string
	clipboard func(string) error

	status      string
	statusIsErr bool

	width  int
	height int
}

// NewModel creates the root model around calc.
func NewModel(calc *model.Calculator, opts Options) Model {
	theme := DefaultTheme(nil)
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	presets := opts.Presets
	if presets == nil {
		presets = density.Presets()
	}
	previewPx := opts.PreviewPx
	if previewPx <= 0 {
		previewPx = grid.DefaultPreviewPx
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	in := calc.Inputs()
	objectInput := newNumberInput(formatNumber(in.ObjectSizeCm))
	targetInput := newNumberInput(formatNumber(in.TargetDensity))

	m := Model{
		calc:        calc,
		objectInput: objectInput,
		targetInput: targetInput,
		presets:     NewPresetPickerModel(presets),
		help:        NewHelpOverlayModel(keys, theme),
		about:       NewAboutModel(theme),
		keys:        keys,
		theme:       theme,
		previewPx:   previewPx,
		exportDir:   exportDir,
		clipboard:   clip,
	}
	m.setFocus(FieldObjectSize)
	return m
}

func newNumberInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 16
	ti.SetValue(value)
	return ti
}

// formatNumber renders a float the shortest way, e.g. 100 or 10.24.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Calculator returns the underlying calculator
func (m Model) Calculator() *model.Calculator { return m.calc }

// Focus returns the focused field
func (m Model) Focus() Field { return m.focus }

// Status returns the current status line text
func (m Model) Status() string { return m.status }

// Presets returns the preset picker
func (m Model) Presets() PresetPickerModel { return m.presets }

// fields returns the focus order for the current mode.
func (m Model) fields() []Field {
	if m.calc.Mode() == model.SizeMode {
		return []Field{FieldObjectSize, FieldTargetDensity, FieldPresets}
	}
	return []Field{FieldObjectSize, FieldResolution}
}

// textFocused reports whether a text input currently consumes printable keys.
func (m Model) textFocused() bool {
	return m.focus == FieldObjectSize || m.focus == FieldTargetDensity || m.presets.IsFiltering()
}

func (m *Model) setFocus(f Field) {
	m.focus = f
	m.objectInput.Blur()
	m.targetInput.Blur()
	switch f {
	case FieldObjectSize:
		m.objectInput.Focus()
	case FieldTargetDensity:
		m.targetInput.Focus()
	}
}

func (m *Model) cycleFocus(delta int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.setFocus(fields[idx])
}

// setMode switches tabs. Focus stays on the object size field when it had
// it; otherwise it moves to the first field of the new tab.
func (m *Model) setMode(mode model.Mode) {
	if m.presets.IsFiltering() {
		m.presets.StopFilter(false)
	}
	m.calc.SetMode(mode)
	if m.focus != FieldObjectSize {
		m.setFocus(FieldObjectSize)
	}
	debuglog.Logger().Debug("mode changed", "mode", string(mode))
}

// applyPreset overwrites the target density and mirrors it into the input.
func (m *Model) applyPreset(p density.Preset) {
	m.calc.ApplyPreset(p)
	m.targetInput.SetValue(formatNumber(p.Density))
	m.setStatus(fmt.Sprintf("Applied preset %q (%s px/cm)", p.Name, density.FormatDensity(p.Density)), false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.about.SetWidth(msg.Width)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.setStatus("Config reload failed: "+msg.Err.Error(), true)
			return m, nil
		}
		m.presets.SetPresets(msg.Presets)
		if msg.PreviewPx > 0 {
			m.previewPx = msg.PreviewPx
		}
		if msg.ExportDir != "" {
			m.exportDir = msg.ExportDir
		}
		m.setStatus(fmt.Sprintf("Config reloaded (%d presets)", len(msg.Presets)), false)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus("Export failed: "+msg.err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %d files to %s", len(msg.paths), m.exportDir), false)
		}
		return m, nil

	case statusMsg:
		m.setStatus(msg.text, msg.isErr)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return m, nil
	}
	if m.about.IsVisible() {
		m.about.Hide()
		return m, nil
	}

	if m.presets.IsFiltering() {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.DensityMode):
		m.setMode(model.DensityMode)
		return m, nil
	case key.Matches(msg, m.keys.SizeMode):
		m.setMode(model.SizeMode)
		return m, nil
	case key.Matches(msg, m.keys.ToggleMode):
		m.setMode(m.calc.Mode().Toggle())
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyResultCmd()
	case key.Matches(msg, m.keys.Export):
		m.setStatus("Exporting...", false)
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.About):
		m.about.SetWidth(m.width)
		m.about.Toggle()
		return m, nil
	}

	if m.textFocused() {
		return m.forwardToInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	switch m.focus {
	case FieldResolution:
		px := m.calc.Inputs().TextureSizePx
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
			m.calc.SetTextureSize(density.PrevResolution(px))
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
			m.calc.SetTextureSize(density.NextResolution(px))
		}
	case FieldPresets:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.presets.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.presets.MoveDown()
		case key.Matches(msg, m.keys.Apply):
			if p, ok := m.presets.Selected(); ok {
				m.applyPreset(p)
			}
		case key.Matches(msg, m.keys.Filter):
			return m, m.presets.StartFilter()
		default:
			// Digits pick presets by their position in the list.
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.presets.Filtered()) {
				m.applyPreset(m.presets.Filtered()[n-1])
			}
		}
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.presets.StopFilter(true)
		return m, nil
	case tea.KeyEnter:
		if p, ok := m.presets.Selected(); ok {
			m.applyPreset(p)
		}
		m.presets.StopFilter(false)
		return m, nil
	case tea.KeyUp:
		m.presets.MoveUp()
		return m, nil
	case tea.KeyDown:
		m.presets.MoveDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.presets, cmd = m.presets.Update(msg)
	return m, cmd
}

// forwardToInput passes msg to the focused text input and pushes the edited
// text into the calculator, so outputs are current before the next View.
func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldObjectSize:
		before := m.objectInput.Value()
		m.objectInput, cmd = m.objectInput.Update(msg)
		if v := m.objectInput.Value(); v != before {
			m.calc.SetObjectSizeText(v)
		}
	case FieldTargetDensity:
		before := m.targetInput.Value()
		m.targetInput, cmd = m.targetInput.Update(msg)
		if v := m.targetInput.Value(); v != before {
			m.calc.SetTargetDensityText(v)
		}
	}
	return m, cmd
}

func (m Model) copyResultCmd() tea.Cmd {
	line := m.calc.Snapshot().ResultLine()
	write := m.clipboard
	return func() tea.Msg {
		if err := write(line); err != nil {
			return statusMsg{text: "Clipboard unavailable: " + err.Error(), isErr: true}
		}
		return statusMsg{text: "Copied: " + line}
	}
}

func (m Model) exportCmd() tea.Cmd {
	snap := m.calc.Snapshot()
	dir, previewPx := m.exportDir, m.previewPx
	return func() tea.Msg {
		paths, err := export.ExportAll(context.Background(), dir, snap, previewPx)
		return exportDoneMsg{paths: paths, err: err}
	}
}
