package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/texel-architect/texel_architect/pkg/density"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired, plus the density tier colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorSecondary = lipgloss.Color("#6272A4")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorWarning   = lipgloss.Color("#FFB86C")
	ColorDanger    = lipgloss.Color("#FF5555")

	// Tier background colors (for badges)
	ColorTierHighBg   = lipgloss.Color("#0B3B2E")
	ColorTierGoodBg   = lipgloss.Color("#10264A")
	ColorTierMediumBg = lipgloss.Color("#3D2A0A")
	ColorTierLowBg    = lipgloss.Color("#3D1414")
)

// TierColor returns the foreground color for a density tier.
func TierColor(t density.Tier) lipgloss.Color {
	return lipgloss.Color(t.Color())
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// RenderTierBadge returns a styled quality badge, e.g. " HIGH ".
func RenderTierBadge(tier density.Tier, t Theme) string {
	var bg lipgloss.Color
	switch tier {
	case density.TierHigh:
		bg = ColorTierHighBg
	case density.TierGood:
		bg = ColorTierGoodBg
	case density.TierMedium:
		bg = ColorTierMediumBg
	default:
		bg = ColorTierLowBg
	}

	return t.Renderer.NewStyle().
		Foreground(TierColor(tier)).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(tier.String()))
}

// ══════════════════════════════════════════════════════════════════════════════
// METRIC VISUALIZATION
// ══════════════════════════════════════════════════════════════════════════════

// RenderDensityGauge renders a mini horizontal bar placing density on a
// 0..2×High scale, colored by tier. Non-finite and negative densities render
// an empty bar.
func RenderDensityGauge(d float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	value := d / (2 * density.HighThreshold)
	if !(value > 0) {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(TierColor(density.Classify(d))).Render(bar)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render(strings.Repeat("·", width))
}
