package ui

// Box and panel dimension constraints. Breakpoint widths come from the
// responsive table; these only size pieces within a layout.
const (
	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 20

	// MinContentHeight is the minimum height for the page viewport.
	MinContentHeight = 5

	// MaxContentWidth keeps prose readable on very wide terminals.
	MaxContentWidth = 110

	// TOCWidth is the width of the table of contents sidebar on desktop.
	TOCWidth = 28

	// SearchPanelWidth caps the search result panel.
	SearchPanelWidth = 64

	// ChartLabelWidth is the library name column of the text chart.
	ChartLabelWidth = 14
)

// Scroll tracking thresholds, in lines.
const (
	// SectionIndicatorThreshold is how far the page must scroll before the
	// section indicator appears.
	SectionIndicatorThreshold = 10

	// SectionActivationMargin lets a section become active slightly before
	// its heading reaches the top.
	SectionActivationMargin = 3
)
