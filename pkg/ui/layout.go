package ui

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which panels shrink to their minimum.
	BreakpointNarrow = 80

	// BreakpointMedium is the width above which the calculator and the
	// visualizer sit side by side.
	BreakpointMedium = 100
)

// Panel dimension constraints.
const (
	// MinPanelWidth is the minimum width for bordered panels.
	MinPanelWidth = 30

	// CalculatorPanelWidth is the preferred width of the calculator panel.
	CalculatorPanelWidth = 56

	// MinGridCols and MinGridRows bound the terminal grid preview.
	MinGridCols = 16
	MinGridRows = 8

	// MaxGridCols caps the terminal grid preview width.
	MaxGridCols = 48
)
