package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Outbound links shown in the about panel. Nothing is fetched from them.
const (
	SupportURL = "https://ko-fi.com/shawn_dis"
	ProURL     = "https://gumroad.com/l/YOURPRODUCTLINK"
)

// AboutMarkdown is the about panel source.
const AboutMarkdown = `# Texel Architect

Calculate and visualize consistent texture density for your environments.

## Support

☕ [Support This Tool](` + SupportURL + `)

## 🚀 Want More Power?

Upgrade to **Texel Architect Pro** for saved presets, export reports, and team templates.

[Get Pro Version - $5](` + ProURL + `)

---

Made with ❤️ by environment artists, for environment artists
`

// AboutModel renders AboutMarkdown with glamour, caching per width.
type AboutModel struct {
	visible bool
	width   int
	theme   Theme

	cacheWidth int
	rendered   string
}

// NewAboutModel creates a hidden about panel.
func NewAboutModel(theme Theme) AboutModel {
	return AboutModel{theme: theme}
}

// Toggle flips visibility, rendering the markdown when shown.
func (m *AboutModel) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
	}
}

// Hide closes the panel
func (m *AboutModel) Hide() { m.visible = false }

// IsVisible returns true if the panel is showing
func (m AboutModel) IsVisible() bool { return m.visible }

// SetWidth sets the available width
func (m *AboutModel) SetWidth(width int) {
	m.width = width
	if m.visible {
		m.refresh()
	}
}

func (m *AboutModel) refresh() {
	wrap := m.width - 10
	if wrap < 40 {
		wrap = 40
	}
	if wrap > 80 {
		wrap = 80
	}
	if m.rendered == "" || m.cacheWidth != wrap {
		m.rendered = renderMarkdown(AboutMarkdown, wrap)
		m.cacheWidth = wrap
	}
}

// View renders the panel. Rendering failures fall back to the raw markdown.
func (m AboutModel) View() string {
	if !m.visible {
		return ""
	}
	hint := m.theme.Renderer.NewStyle().Faint(true).Italic(true).Render("[Press any key to close]")
	return m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(m.rendered, "\n") + "\n\n" + hint)
}

func renderMarkdown(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
