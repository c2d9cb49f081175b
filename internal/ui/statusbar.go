package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel is the context line at the bottom of the viewer.
type StatusBarModel struct {
	sheet      string
	firstRow   int
	firstCol   int
	visible    int
	total      int
	showGhosts bool
	message    string
	width      int
}

// NewStatusBarModel creates a new status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{showGhosts: true}
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// SetViewport updates the scroll position shown.
func (m *StatusBarModel) SetViewport(sheet string, firstRow, firstCol int) {
	m.sheet = sheet
	m.firstRow = firstRow
	m.firstCol = firstCol
}

// SetCounts updates the visible/total widget counts.
func (m *StatusBarModel) SetCounts(visible, total int) {
	m.visible = visible
	m.total = total
}

// SetShowGhosts records whether passthrough widgets are painted.
func (m *StatusBarModel) SetShowGhosts(on bool) {
	m.showGhosts = on
}

// SetMessage sets a transient message (e.g. a load error).
func (m *StatusBarModel) SetMessage(msg string) {
	m.message = msg
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	left := fmt.Sprintf(" %s  r%d c%d  %d/%d visible", m.sheet, m.firstRow, m.firstCol, m.visible, m.total)
	if !m.showGhosts {
		left += "  [passthrough hidden]"
	}
	if m.message != "" {
		left += "  " + ErrorText.Render(m.message)
	}
	help := "←↓↑→/hjkl scroll  g ghosts  tab sheet  q quit "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return DimText.Render(left) + strings.Repeat(" ", gap) + DimText.Render(help)
}
