package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorAccent      = lipgloss.Color("#4ecca3")
	ColorPassthrough = lipgloss.Color("#555555")
	ColorGrid        = lipgloss.Color("#333344")
	ColorHeader      = lipgloss.Color("#f0a500")
	ColorError       = lipgloss.Color("#e94560")
)

// Text styles
var (
	TitleText   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	DimText     = lipgloss.NewStyle().Foreground(ColorPassthrough)
	AccentText  = lipgloss.NewStyle().Foreground(ColorAccent)
	ErrorText   = lipgloss.NewStyle().Foreground(ColorError)
	GridText    = lipgloss.NewStyle().Foreground(ColorGrid)
	WidgetBlock = lipgloss.NewStyle().Foreground(ColorAccent)
	WidgetGhost = lipgloss.NewStyle().Foreground(ColorPassthrough).Faint(true)
	LabelText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1a2e")).Background(ColorAccent).Bold(true)
)

// CanvasFrame borders the grid canvas.
var CanvasFrame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorGrid)
