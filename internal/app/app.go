// Package app implements the interactive placement viewer.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"celloverlay/internal/ui"
	"celloverlay/pkg/overlay"
	"celloverlay/pkg/overlay/geometry"
	"celloverlay/pkg/overlay/models"
	"celloverlay/pkg/overlay/xlsx"
)

// Model is the bubbletea model for the viewer. Every scroll, resize, or sheet
// switch rebuilds the axis window and re-resolves all widgets from scratch;
// there is no cached placement state to invalidate.
type Model struct {
	layouts    map[string]*models.SheetLayout
	sheetOrder []string
	activeIdx  int
	widgets    []models.Widget

	firstRow   int
	firstCol   int
	showGhosts bool

	width  int
	height int

	placements []models.Placement
	status     ui.StatusBarModel
}

// NewModel builds a viewer model from pre-extracted sheet layouts.
func NewModel(layouts map[string]*models.SheetLayout, order []string, active string, widgets []models.Widget, firstRow, firstCol int) Model {
	m := Model{
		layouts:    layouts,
		sheetOrder: order,
		widgets:    widgets,
		firstRow:   firstRow,
		firstCol:   firstCol,
		showGhosts: true,
		status:     ui.NewStatusBarModel(),
	}
	for i, name := range order {
		if name == active {
			m.activeIdx = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.firstRow > 0 {
				m.firstRow--
			}
		case "down", "j":
			m.firstRow++
		case "left", "h":
			if m.firstCol > 0 {
				m.firstCol--
			}
		case "right", "l":
			m.firstCol++
		case "pgup":
			m.firstRow -= m.canvasHeight()
			if m.firstRow < 0 {
				m.firstRow = 0
			}
		case "pgdown":
			m.firstRow += m.canvasHeight()
		case "g":
			m.showGhosts = !m.showGhosts
		case "tab":
			if len(m.sheetOrder) > 0 {
				m.activeIdx = (m.activeIdx + 1) % len(m.sheetOrder)
			}
		case "home":
			m.firstRow, m.firstCol = 0, 0
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	sheet := m.activeLayout()
	canvas := ui.NewCanvas(m.canvasWidth(), m.canvasHeight())

	title := ui.TitleText.Render(" celloverlay ") + ui.DimText.Render(m.activeSheetName())

	if sheet == nil {
		m.status.SetWidth(m.width)
		m.status.SetMessage("no sheet data")
		return title + "\n" + ui.CanvasFrame.Render(canvas.Render()) + "\n" + m.status.View()
	}

	snap := m.snapshot(sheet)
	placements := overlay.ResolveAll(snap, m.widgets)

	canvas.PaintGrid(snap.Rows, snap.Cols)
	for _, p := range placements {
		if p.Mode == models.EventPassthrough && !m.showGhosts {
			continue
		}
		canvas.PaintPlacement(p)
	}

	m.status.SetWidth(m.width)
	m.status.SetViewport(sheet.Name, m.firstRow, m.firstCol)
	m.status.SetCounts(len(placements), len(m.widgets))
	m.status.SetShowGhosts(m.showGhosts)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		ui.CanvasFrame.Render(canvas.Render()),
		m.status.View(),
	)
}

// snapshot assembles the immutable input tuple for one resolution pass.
func (m Model) snapshot(sheet *models.SheetLayout) *models.Snapshot {
	maxPxX := m.canvasWidth() * ui.PxPerChar
	maxPxY := m.canvasHeight() * ui.PxPerLine
	rowCount := visibleCount(sheet.RowHeights, sheet.DefaultRowHeight, m.firstRow, maxPxY)
	colCount := visibleCount(sheet.ColWidths, sheet.DefaultColWidth, m.firstCol, maxPxX)

	return &models.Snapshot{
		ActiveSheet: sheet.Name,
		Sheets:      m.layouts,
		Rows:        geometry.Window(sheet.RowHeights, sheet.DefaultRowHeight, m.firstRow, rowCount),
		Cols:        geometry.Window(sheet.ColWidths, sheet.DefaultColWidth, m.firstCol, colCount),
	}
}

// visibleCount returns how many indices starting at first fit into maxPx.
func visibleCount(sizes []int, def, first, maxPx int) int {
	count := 0
	px := 0
	for px < maxPx {
		i := first + count
		size := def
		if i >= 0 && i < len(sizes) {
			size = sizes[i]
		}
		px += size
		count++
		if size == 0 && count > len(sizes)+1 {
			break
		}
	}
	return count
}

func (m Model) canvasWidth() int {
	w := m.width - 2 // frame borders
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) canvasHeight() int {
	h := m.height - 4 // title, frame borders, status bar
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) activeSheetName() string {
	if m.activeIdx >= 0 && m.activeIdx < len(m.sheetOrder) {
		return m.sheetOrder[m.activeIdx]
	}
	return ""
}

func (m Model) activeLayout() *models.SheetLayout {
	return m.layouts[m.activeSheetName()]
}

// Run extracts layouts from the workbook and starts the viewer.
func Run(wb *xlsx.Workbook, manifest *overlay.Manifest, sheet string, firstRow, firstCol int) error {
	layouts := make(map[string]*models.SheetLayout)
	var order []string
	for _, name := range wb.Sheets() {
		layout, err := wb.Layout(name)
		if err != nil {
			continue
		}
		layouts[name] = layout
		order = append(order, name)
	}
	if len(order) == 0 {
		return fmt.Errorf("workbook has no readable sheets")
	}

	m := NewModel(layouts, order, sheet, manifest.Widgets, firstRow, firstCol)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
