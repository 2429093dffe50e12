package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

const (
	appTitle   = "Texel Architect"
	appTagline = "Calculate and visualize consistent texture density for your environments."
)

// View implements tea.Model
func (m Model) View() string {
	if m.help.IsVisible() {
		return m.placeOverlay(m.help.View())
	}
	if m.about.IsVisible() {
		return m.placeOverlay(m.about.View())
	}

	t := m.theme
	width := m.width
	if width <= 0 {
		width = BreakpointMedium
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render(appTitle),
		t.Renderer.NewStyle().Foreground(t.Subtext).Render(appTagline),
	)

	calcWidth := CalculatorPanelWidth
	vizWidth := width - calcWidth - 4
	sideBySide := width >= BreakpointMedium
	if !sideBySide {
		calcWidth = width - 2
		if calcWidth < MinPanelWidth {
			calcWidth = MinPanelWidth
		}
		vizWidth = calcWidth
	}

	calc := m.renderCalculatorPanel(calcWidth)
	viz := m.renderVisualizerPanel(vizWidth)

	var body string
	if sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, calc, " ", viz)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, calc, viz)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		m.renderFooter(width),
	)
}

func (m Model) placeOverlay(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTabs() string {
	t := m.theme
	active := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(t.Primary).Padding(0, 1)
	inactive := t.Renderer.NewStyle().Foreground(t.Muted).
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(t.Border).Padding(0, 1)

	var tabs []string
	for _, mode := range []model.Mode{model.DensityMode, model.SizeMode} {
		style := inactive
		if m.calc.Mode() == mode {
			style = active
		}
		tabs = append(tabs, style.Render(mode.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderCalculatorPanel(width int) string {
	t := m.theme
	inner := width - 4
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Object Size (cm)", m.focus == FieldObjectSize))
	b.WriteString("\n")
	b.WriteString(m.renderInputBox(m.objectInput.View(), m.focus == FieldObjectSize))
	b.WriteString("  " + t.Renderer.NewStyle().Foreground(t.Muted).Render("1m = 100cm"))
	b.WriteString("\n\n")

	snap := m.calc.Snapshot()
	if snap.Mode == model.SizeMode {
		b.WriteString(m.renderLabel("Target Density (px/cm)", m.focus == FieldTargetDensity))
		b.WriteString("\n")
		b.WriteString(m.renderInputBox(m.targetInput.View(), m.focus == FieldTargetDensity))
		b.WriteString("\n\n")

		b.WriteString(m.renderLabel("Presets", m.focus == FieldPresets))
		b.WriteString("\n")
		b.WriteString(m.presets.View(m.focus == FieldPresets, snap.Inputs.TargetDensity, inner, t))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.renderLabel("Texture Resolution", m.focus == FieldResolution))
		b.WriteString("\n")
		b.WriteString(m.renderResolutionSelector(snap.Inputs.TextureSizePx))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderDivider(inner, t))
	b.WriteString("\n")
	b.WriteString(m.renderResult(snap, inner))

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(b.String())
}

func (m Model) renderLabel(label string, focused bool) string {
	style := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	if focused {
		style = style.Foreground(m.theme.Primary).Bold(true)
	}
	return style.Render(label)
}

func (m Model) renderInputBox(content string, focused bool) string {
	border := m.theme.Border
	if focused {
		border = m.theme.Primary
	}
	return m.theme.Renderer.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(border).
		Width(18).
		Render(content)
}

func (m Model) renderResolutionSelector(px float64) string {
	t := m.theme
	focused := m.focus == FieldResolution
	arrow := t.Renderer.NewStyle().Foreground(t.Muted)
	value := t.Renderer.NewStyle().Foreground(t.Subtext)
	if focused {
		arrow = arrow.Foreground(t.Primary)
		value = value.Foreground(t.Primary).Bold(true)
	}
	return arrow.Render("◀ ") + value.Render(density.FormatResolution(px)) + arrow.Render(" ▶")
}

func (m Model) renderResult(snap model.Snapshot, width int) string {
	t := m.theme
	label := t.Renderer.NewStyle().Foreground(t.Subtext)
	unit := t.Renderer.NewStyle().Foreground(t.Muted)
	var b strings.Builder

	if snap.Mode == model.SizeMode {
		b.WriteString(label.Render("Required Texture Size"))
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).
			Render(density.FormatPixels(snap.Outputs.TextureSize)))
		b.WriteString(unit.Render(" px"))
		b.WriteString("\n")
		b.WriteString(label.Render("Closest Power of 2: "))
		b.WriteString(t.Renderer.NewStyle().Bold(true).Render(density.FormatPixels(snap.Outputs.PowerOfTwo)))
		return b.String()
	}

	tier := snap.Outputs.Tier
	b.WriteString(label.Render("Resulting Density"))
	b.WriteString("\n")
	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(TierColor(tier)).
		Render(density.FormatDensity(snap.Outputs.Density)))
	b.WriteString(unit.Render(" px/cm  "))
	b.WriteString(RenderTierBadge(tier, t))
	b.WriteString("\n")
	gauge := width - 2
	if gauge > 30 {
		gauge = 30
	}
	b.WriteString(RenderDensityGauge(snap.Outputs.Density, gauge, t))
	return b.String()
}

func (m Model) renderVisualizerPanel(width int) string {
	t := m.theme
	if width < MinPanelWidth {
		width = MinPanelWidth
	}
	cols, rows := GridSize(width - 4)
	g := grid.New(m.calc.VisualDensity(), m.previewPx)

	var b strings.Builder
	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Visualizer (1m²)"))
	b.WriteString("\n\n")
	b.WriteString(RenderGrid(g, cols, rows, t))
	b.WriteString("\n\n")
	b.WriteString(RenderVisualizerHint(width-4, t))

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(b.String())
}

func (m Model) renderFooter(width int) string {
	t := m.theme
	var parts []string
	if m.status != "" {
		style := t.Renderer.NewStyle().Foreground(t.Success)
		if m.statusIsErr {
			style = style.Foreground(t.Danger)
		}
		parts = append(parts, style.Render(m.status))
	}

	hints := []string{"F1/F2 tabs", "Tab fields"}
	if width >= BreakpointNarrow {
		hints = append(hints, "Ctrl+Y copy", "Ctrl+E export", "Ctrl+A about")
	}
	if !m.textFocused() {
		hints = append(hints, "? help", "q quit")
	} else {
		hints = append(hints, "Ctrl+C quit")
	}
	hint := t.Renderer.NewStyle().Faint(true).Render(strings.Join(hints, " • "))
	parts = append(parts, hint)

	return t.Renderer.NewStyle().MaxWidth(width).Render(strings.Join(parts, "\n"))
}
