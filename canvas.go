package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellStyle struct {
	fg    string
	bold  bool
	faint bool
}

type cell struct {
	r     rune // 0 marks the right half of a wide rune
	style cellStyle
}

// Canvas is a fixed-size grid of styled runes. Later draws overwrite
// earlier ones, so callers paint back to front.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) Set(x, y int, r rune, style cellStyle) {
	if !c.isValidPos(x, y) {
		return
	}
	row := c.cells[y]
	switch {
	case row[x].r == 0 && x > 0:
		row[x-1].r = ' '
	case x+1 < c.width && row[x+1].r == 0:
		row[x+1].r = ' '
	}
	row[x] = cell{r: r, style: style}
}

// DrawText writes a single line starting at (x, y) and returns the column
// after the last rune written. Wide runes take two cells.
func (c *Canvas) DrawText(x, y int, text string, style cellStyle) int {
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w < 1 {
			continue
		}
		if w == 2 && !c.isValidPos(x+1, y) {
			c.Set(x, y, ' ', style)
			x++
			continue
		}
		if w == 2 {
			c.Set(x+1, y, ' ', style)
		}
		c.Set(x, y, r, style)
		if w == 2 && c.isValidPos(x, y) {
			c.cells[y][x+1] = cell{r: 0, style: style}
		}
		x += w
	}
	return x
}

// DrawCentered writes text centered between left and right (exclusive).
func (c *Canvas) DrawCentered(left, right, y int, text string, style cellStyle) {
	x := left + (right-left-lipgloss.Width(text))/2
	if x < left {
		x = left
	}
	c.DrawText(x, y, text, style)
}

// Fill blanks a rectangle so nothing drawn earlier shows through.
func (c *Canvas) Fill(x, y, width, height int) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			c.Set(col, row, ' ', cellStyle{})
		}
	}
}

func (c *Canvas) DrawBox(x, y, width, height int, style cellStyle) {
	if width < 2 || height < 2 {
		return
	}
	right := x + width - 1
	bottom := y + height - 1
	for col := x + 1; col < right; col++ {
		c.Set(col, y, '─', style)
		c.Set(col, bottom, '─', style)
	}
	for row := y + 1; row < bottom; row++ {
		c.Set(x, row, '│', style)
		c.Set(right, row, '│', style)
	}
	c.Set(x, y, '╭', style)
	c.Set(right, y, '╮', style)
	c.Set(x, bottom, '╰', style)
	c.Set(right, bottom, '╯', style)
}

// Lines returns the canvas as plain text with trailing spaces trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			b.WriteRune(cl.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Render returns the canvas with each run of equally styled cells passed
// through lipgloss.
func (c *Canvas) Render() string {
	var out strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		current := row[0].style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

func styleFor(s cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.fg != "" {
		style = style.Foreground(lipgloss.Color(s.fg))
	}
	if s.bold {
		style = style.Bold(true)
	}
	if s.faint {
		style = style.Faint(true)
	}
	return style
}
