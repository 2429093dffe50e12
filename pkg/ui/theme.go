package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the renderer and the adaptive palette every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
}

// DefaultTheme returns the Dracula-based theme bound to renderer r.
// A nil renderer uses lipgloss.DefaultRenderer().
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: string(ColorSecondary)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Muted:     lipgloss.AdaptiveColor{Light: "#999999", Dark: string(ColorMuted)},
		Border:    lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: string(ColorBgSubtle)},
		Success:   lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: string(ColorSuccess)},
		Warning:   lipgloss.AdaptiveColor{Light: "#9A6700", Dark: string(ColorWarning)},
		Danger:    lipgloss.AdaptiveColor{Light: "#CF222E", Dark: string(ColorDanger)},
	}
}
