package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// slugify keeps letters and digits, collapsing everything else to single
// dashes, for use in file names.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "friend"
	}
	return slug
}

func (m *model) exportPath(ext string) (string, error) {
	filename := fmt.Sprintf("greeting-%s-%s.%s", slugify(m.name), uuid.NewString()[:8], ext)
	cfg := m.config
	if cfg == nil {
		cfg = defaultConfig()
	}
	path, err := cfg.GetSavePath(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return path, nil
}

// greetingText is the message as plain text, for the clipboard.
func greetingText(name string) string {
	var b strings.Builder
	b.WriteString(greetingTitle)
	b.WriteString("\n\nDear ")
	b.WriteString(strings.TrimSpace(name))
	b.WriteString(",\n\n")
	b.WriteString(greetingMessage)
	b.WriteString("\n")
	return b.String()
}

func (m *model) copyGreeting() error {
	if m.mode != ModeGreeting {
		return ErrNothingToExport
	}
	return clipboard.WriteAll(greetingText(m.name))
}

// exportVisualTXT writes the greeting exactly as it is on screen, without
// colour.
func (m *model) exportVisualTXT() (string, error) {
	if m.mode != ModeGreeting {
		return "", ErrNothingToExport
	}
	path, err := m.exportPath("txt")
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}

	width, height := m.renderSize()
	if err := writeLines(file, m.greetingCanvas(width, height).Lines()); err != nil {
		return "", err
	}
	return path, nil
}

// writeLines writes one line per entry and always closes w. A failed close
// is reported like a failed write.
func writeLines(w io.WriteCloser, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			w.Close()
			return fmt.Errorf("%w: %v", ErrExport, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

func (m *model) exportPNG() (string, error) {
	if m.mode != ModeGreeting {
		return "", ErrNothingToExport
	}
	dc, err := m.greetingImage()
	if err != nil {
		return "", err
	}
	path, err := m.exportPath("png")
	if err != nil {
		return "", err
	}
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return path, nil
}

// greetingImage draws the current frame at viewport resolution: balloons,
// confetti, then the card.
func (m *model) greetingImage() (*gg.Context, error) {
	vp := m.viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = m.currentViewport()
	}
	imageWidth := int(vp.Width)
	imageHeight := int(vp.Height)

	dc := gg.NewContext(imageWidth, imageHeight)
	grad := gg.NewLinearGradient(0, 0, vp.Width, vp.Height)
	grad.AddColorStop(0, color.RGBA{0xFC, 0xE7, 0xF3, 0xFF})
	grad.AddColorStop(0.5, color.RGBA{0xF3, 0xE8, 0xFF, 0xFF})
	grad.AddColorStop(1, color.RGBA{0xDB, 0xEA, 0xFE, 0xFF})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, vp.Width, vp.Height)
	dc.Fill()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse font: %v", ErrExport, err)
	}

	for _, b := range m.balloons {
		drawBalloonPNG(dc, b, m.elapsed)
	}
	for _, p := range m.confetti {
		dc.SetHexColor(p.Color)
		dc.DrawCircle(p.X+p.Size/2, p.Y+p.Size/2, p.Size/2)
		dc.Fill()
	}

	cardWidth := minFloat(vp.Width-2*cellWidth*2, 640)
	cardHeight := minFloat(vp.Height-2*cellHeight, 360)
	if cardWidth <= 0 || cardHeight <= 0 {
		cardWidth, cardHeight = vp.Width, vp.Height
	}
	cardX := (vp.Width - cardWidth) / 2
	cardY := (vp.Height - cardHeight) / 2

	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawRoundedRectangle(cardX, cardY, cardWidth, cardHeight, 24)
	dc.Fill()

	titleFace := truetype.NewFace(ttfFont, &truetype.Options{Size: 36, DPI: 72, Hinting: font.HintingFull})
	bodyFace := truetype.NewFace(ttfFont, &truetype.Options{Size: 18, DPI: 72, Hinting: font.HintingFull})
	nameFace := truetype.NewFace(ttfFont, &truetype.Options{Size: 26, DPI: 72, Hinting: font.HintingFull})

	centerX := vp.Width / 2
	y := cardY + cardHeight*0.22

	dc.SetFontFace(titleFace)
	dc.SetHexColor(titleGradient[1])
	dc.DrawStringAnchored(greetingTitle, centerX, y, 0.5, 0.5)

	y += 56
	dc.SetFontFace(nameFace)
	dc.SetHexColor("#1F2937")
	dc.DrawStringAnchored("Dear "+strings.TrimSpace(m.name), centerX, y, 0.5, 0.5)

	y += 40
	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#4B5563")
	message := strings.ReplaceAll(greetingMessage, "\n", " ")
	dc.DrawStringWrapped(message, centerX, y, 0.5, 0, cardWidth-64, 1.5, gg.AlignCenter)

	return dc, nil
}

func drawBalloonPNG(dc *gg.Context, b Balloon, elapsed float64) {
	top := b.Y + b.Bob(elapsed)
	rx := b.Size / 2
	ry := b.Size * 1.2 / 2
	cx := b.X + rx
	cy := top + ry

	dc.SetRGB255(0x9C, 0xA3, 0xAF)
	dc.SetLineWidth(2)
	dc.DrawLine(cx, cy+ry, cx, cy+ry+64)
	dc.Stroke()

	dc.SetHexColor(b.Color)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
