package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleGradient = []string{"#EC4899", "#A855F7", "#3B82F6"}

	textStyle    = cellStyle{fg: "#374151"}
	subtleStyle  = cellStyle{fg: "#6B7280"}
	nameStyle    = cellStyle{fg: "#1F2937", bold: true}
	borderStyle  = cellStyle{fg: "#C4B5FD"}
	buttonStyle  = cellStyle{fg: "#A855F7", bold: true}
	disabledBtn  = cellStyle{fg: "#A855F7", faint: true}
	stringStyle  = cellStyle{fg: "#9CA3AF"}
	decorStyle   = cellStyle{faint: true}
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
)

const (
	maxCardWidth = 64
	minCardWidth = 24
	cardPadding  = 2
)

type cardLine struct {
	text     string
	style    cellStyle
	gradient bool
	boxed    bool // framed like an input field, takes three rows
}

func (l cardLine) rows() int {
	if l.boxed {
		return 3
	}
	return 1
}

func (m model) View() string {
	if !m.ready || m.mode == ModeLoading {
		return m.loadingView()
	}

	width, height := m.renderSize()
	var canvas *Canvas
	switch m.mode {
	case ModeGreeting:
		canvas = m.greetingCanvas(width, height)
	default:
		canvas = m.formCanvas(width, height)
	}
	return canvas.Render() + "\n" + m.statusLine(width)
}

// renderSize leaves the last terminal row for the status line.
func (m model) renderSize() (int, int) {
	width := m.width
	if width < 1 {
		width = int(defaultViewWidth / cellWidth)
	}
	height := m.height - 1
	if height < 1 {
		height = int(defaultViewHeight/cellHeight) - 1
	}
	return width, height
}

func (m model) loadingView() string {
	body := lipgloss.JoinVertical(lipgloss.Center, "🎂", "", statusStyle.Render(loadingText))
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m model) formCanvas(width, height int) *Canvas {
	c := NewCanvas(width, height)

	// Corner decorations sit behind the card.
	c.DrawText(2, 1, "🎈", decorStyle)
	c.DrawText(width-4, 2, "🎁", decorStyle)
	c.DrawText(4, height-3, "🎊", decorStyle)
	c.DrawText(width-6, height-2, "🌟", decorStyle)

	cardWidth := cardWidthFor(width, 52)
	inner := cardWidth - 2 - 2*cardPadding

	button := cardLine{text: "[ " + submitLabel + " 🎉 ]", style: buttonStyle}
	if !m.canSubmit() {
		button.style = disabledBtn
	}

	lines := []cardLine{
		{text: "🎂"},
		{},
		{text: formTitle, gradient: true},
		{},
	}
	lines = append(lines, wrapLines(formSubtitle, inner, subtleStyle)...)
	lines = append(lines,
		cardLine{},
		cardLine{text: formLabel, style: textStyle},
		m.inputLine(),
		cardLine{},
		button,
		cardLine{},
		cardLine{text: "Made with ❤️ using Bubble Tea", style: subtleStyle},
	)

	drawCard(c, lines, cardWidth)
	return c
}

func (m model) inputLine() cardLine {
	if m.name == "" {
		return cardLine{text: "█" + formPlaceholder, style: subtleStyle, boxed: true}
	}
	runes := []rune(m.name)
	pos := m.cursorPos
	if pos > len(runes) {
		pos = len(runes)
	}
	text := string(runes[:pos]) + "█" + string(runes[pos:])
	return cardLine{text: text, style: nameStyle, boxed: true}
}

// greetingCanvas paints balloons, then confetti, then the card on top.
func (m model) greetingCanvas(width, height int) *Canvas {
	c := NewCanvas(width, height)

	for _, b := range m.balloons {
		drawBalloon(c, b, m.elapsed)
	}
	for _, p := range m.confetti {
		drawConfetti(c, p)
	}

	cardWidth := cardWidthFor(width, maxCardWidth)
	inner := cardWidth - 2 - 2*cardPadding

	lines := []cardLine{
		{text: "🎉"},
		{},
		{text: greetingTitle, gradient: true},
		{},
		{text: "Dear " + strings.TrimSpace(m.name) + " 🎂", style: nameStyle},
		{},
	}
	for _, paragraph := range strings.Split(greetingMessage, "\n") {
		lines = append(lines, wrapLines(paragraph+" ✨", inner, textStyle)...)
	}
	lines = append(lines,
		cardLine{},
		cardLine{text: "🎈 🎁 🎊 🌟 💝 🎀"},
		cardLine{},
		cardLine{text: "[ " + resetLabel + " ]", style: buttonStyle},
	)

	drawCard(c, lines, cardWidth)
	return c
}

func (m model) statusLine(width int) string {
	var hints string
	switch m.mode {
	case ModeGreeting:
		hints = "enter/r: another greeting  s: save png  t: save text  y: copy  q: quit"
		if len(m.confetti) == 0 {
			// The tick chain ends with the confetti, which also stops the balloons.
			hints = settledText + "  " + hints
		}
	default:
		hints = "enter: create greeting  esc: quit"
	}

	line := statusStyle.Render(hints)
	if m.errorMessage != "" {
		line = errorStyle.Render(m.errorMessage) + "  " + line
	} else if m.successMessage != "" {
		line = successStyle.Render(m.successMessage) + "  " + line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func cardWidthFor(width, preferred int) int {
	w := preferred
	if w > width-4 {
		w = width - 4
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func wrapLines(text string, width int, style cellStyle) []cardLine {
	if width < 1 {
		width = 1
	}
	var lines []cardLine
	for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
		lines = append(lines, cardLine{text: strings.TrimSpace(line), style: style})
	}
	return lines
}

// drawCard centers a bordered card on the canvas and writes each line
// centered inside it.
func drawCard(c *Canvas, lines []cardLine, cardWidth int) {
	cardHeight := 2
	for _, l := range lines {
		cardHeight += l.rows()
	}

	x := (c.width - cardWidth) / 2
	y := (c.height - cardHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	c.Fill(x, y, cardWidth, cardHeight)
	c.DrawBox(x, y, cardWidth, cardHeight, borderStyle)

	left := x + 1 + cardPadding
	right := x + cardWidth - 1 - cardPadding
	row := y + 1
	for _, l := range lines {
		switch {
		case l.boxed:
			c.DrawBox(left, row, right-left, 3, borderStyle)
			c.DrawCentered(left+1, right-1, row+1, l.text, l.style)
		case l.gradient:
			drawGradient(c, left, right, row, l.text)
		default:
			c.DrawCentered(left, right, row, l.text, l.style)
		}
		row += l.rows()
	}
}

func drawGradient(c *Canvas, left, right, y int, text string) {
	runes := []rune(text)
	x := left + (right-left-len(runes))/2
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c.Set(x+i, y, r, cellStyle{fg: gradientAt(titleGradient, t), bold: true})
	}
}

// gradientAt blends evenly spaced hex stops in Lab space.
func gradientAt(stops []string, t float64) string {
	if len(stops) == 1 {
		return stops[0]
	}
	t = math.Max(0, math.Min(1, t))
	span := t * float64(len(stops)-1)
	i := int(span)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	frac := span - float64(i)
	if frac == 0 {
		return stops[i]
	}
	from, err := colorful.Hex(stops[i])
	if err != nil {
		return stops[i]
	}
	to, err := colorful.Hex(stops[i+1])
	if err != nil {
		return stops[i]
	}
	return from.BlendLab(to, frac).Clamped().Hex()
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func confettiGlyph(size float64) rune {
	switch {
	case size < 6:
		return '·'
	case size < 9:
		return '•'
	default:
		return '●'
	}
}

func drawConfetti(c *Canvas, p ConfettiParticle) {
	x, y := toCell(p.X, p.Y)
	c.Set(x, y, confettiGlyph(p.Size), cellStyle{fg: p.Color})
}

// drawBalloon paints an upright ellipse Size wide and 1.2*Size tall with a
// string hanging from the bottom.
func drawBalloon(c *Canvas, b Balloon, elapsed float64) {
	x, y := toCell(b.X, b.Y+b.Bob(elapsed))
	w := int(math.Max(3, math.Round(b.Size/cellWidth)))
	h := int(math.Max(2, math.Round(b.Size*1.2/cellHeight)))
	style := cellStyle{fg: b.Color}

	for row := 0; row < h; row++ {
		ny := (float64(row)+0.5)/float64(h)*2 - 1
		half := math.Sqrt(1-ny*ny) * float64(w) / 2
		for col := 0; col < w; col++ {
			nx := float64(col) + 0.5 - float64(w)/2
			if math.Abs(nx) <= half {
				c.Set(x+col, y+row, '█', style)
			}
		}
	}

	stringX := x + w/2
	c.Set(stringX, y+h, '▴', style)
	for i := 1; i <= 3; i++ {
		c.Set(stringX, y+h+i, '│', stringStyle)
	}
}
