package ui

import (
	"strings"

	"celloverlay/pkg/overlay/models"
)

// Terminal cells are not square, so the canvas maps pixels to character
// cells at different densities per axis. With default sheet metrics one
// column (64px) is 8 characters wide and one row (20px) is one character
// tall, which keeps proportions roughly faithful.
const (
	PxPerChar = 8  // horizontal pixels per terminal column
	PxPerLine = 20 // vertical pixels per terminal row
)

// cell paint classes, later wins except labels
const (
	paintEmpty = iota
	paintGrid
	paintGhost
	paintBlock
	paintLabel
)

// Canvas is a character grid the viewport and widget boxes are painted onto.
type Canvas struct {
	w, h  int
	runes [][]rune
	class [][]int
}

// NewCanvas creates an empty canvas of the given character dimensions.
func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.class = make([][]int, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.class[y] = make([]int, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in characters.
func (c *Canvas) Height() int { return c.h }

// PaintGrid draws cell boundary lines from the visible axis tables.
func (c *Canvas) PaintGrid(rows, cols models.AxisTable) {
	for _, span := range cols {
		x := span.End / PxPerChar
		for y := 0; y < c.h; y++ {
			c.set(x, y, '·', paintGrid)
		}
	}
	for _, span := range rows {
		y := span.End / PxPerLine
		for x := 0; x < c.w; x++ {
			c.set(x, y, '·', paintGrid)
		}
	}
}

// PaintPlacement draws one resolved widget rectangle. Blocking widgets paint
// solid; passthrough widgets paint faint so the grid stays legible beneath.
func (c *Canvas) PaintPlacement(p models.Placement) {
	x0 := p.Left / PxPerChar
	y0 := p.Top / PxPerLine
	x1 := (p.Left + p.Width) / PxPerChar
	y1 := (p.Top + p.Height) / PxPerLine
	if y1 < y0 {
		y1 = y0
	}
	if x1 < x0 {
		x1 = x0
	}

	fill, class := '▓', paintBlock
	if p.Mode == models.EventPassthrough {
		fill, class = '░', paintGhost
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, fill, class)
		}
	}

	// ID label in the top-left corner of the box
	for i, r := range p.ID {
		if x0+i > x1 {
			break
		}
		c.set(x0+i, y0, r, paintLabel)
	}
}

func (c *Canvas) set(x, y int, r rune, class int) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	if class < c.class[y][x] {
		return
	}
	c.runes[y][x] = r
	c.class[y][x] = class
}

// Render returns the styled canvas as terminal lines.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		// group runs of equal class to limit style churn
		x := 0
		for x < c.w {
			start := x
			class := c.class[y][x]
			for x < c.w && c.class[y][x] == class {
				x++
			}
			seg := string(c.runes[y][start:x])
			switch class {
			case paintGrid:
				b.WriteString(GridText.Render(seg))
			case paintGhost:
				b.WriteString(WidgetGhost.Render(seg))
			case paintBlock:
				b.WriteString(WidgetBlock.Render(seg))
			case paintLabel:
				b.WriteString(LabelText.Render(seg))
			default:
				b.WriteString(seg)
			}
		}
	}
	return b.String()
}
