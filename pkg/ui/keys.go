package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the calculator's bindings. Keys that are also printable are
// only honored while no text field has focus.
type KeyMap struct {
	DensityMode key.Binding
	SizeMode    key.Binding
	ToggleMode  key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Apply       key.Binding
	Filter      key.Binding
	Copy        key.Binding
	Export      key.Binding
	About       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		DensityMode: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Calculate density")),
		SizeMode:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "Calculate texture size")),
		ToggleMode:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("Ctrl+T", "Switch tab")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("Shift+Tab", "Previous field")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "Previous preset")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "Next preset")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "Smaller resolution")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "Larger resolution")),
		Apply:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("Enter", "Apply preset")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Filter presets")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("Ctrl+Y", "Copy result")),
		Export:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("Ctrl+E", "Export PNG/SVG/report")),
		About:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("Ctrl+A", "About")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/Esc", "Quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	}
}
