package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// canSubmit reports whether the form holds a usable name. The submit button
// is drawn disabled while this is false.
func (m *model) canSubmit() bool {
	return strings.TrimSpace(m.name) != ""
}

// currentViewport converts the terminal size into pixels, falling back to
// the configured size when the terminal has not reported one.
func (m *model) currentViewport() Viewport {
	if m.width > 0 && m.height > 0 {
		return Viewport{
			Width:  float64(m.width) * cellWidth,
			Height: float64(m.height) * cellHeight,
		}
	}
	if m.config != nil {
		return m.config.FallbackViewport()
	}
	return Viewport{Width: defaultViewWidth, Height: defaultViewHeight}
}

// markReady opens the client-ready gate. It fires once; later size reports
// only update the terminal dimensions.
func (m *model) markReady() {
	if m.ready {
		return
	}
	m.ready = true
	if m.mode == ModeLoading {
		m.mode = ModeForm
	}
	m.logger.Debug("client ready", "cols", m.width, "rows", m.height)
}

// submit moves Form to Greeting. Blank names are ignored.
func (m *model) submit() tea.Cmd {
	if m.mode != ModeForm || !m.ready || !m.canSubmit() {
		return nil
	}

	m.viewport = m.currentViewport()
	m.confetti = generateConfetti(m.rng, m.viewport)
	m.balloons = generateBalloons(m.rng, m.viewport)
	m.elapsed = 0
	m.mode = ModeGreeting
	m.errorMessage = ""
	m.successMessage = ""

	m.logger.Info("greeting opened",
		"name", strings.TrimSpace(m.name),
		"confetti", len(m.confetti),
		"balloons", len(m.balloons),
		"viewport_w", m.viewport.Width,
		"viewport_h", m.viewport.Height)
	return m.anim.start()
}

// reset moves Greeting back to Form and releases the animation.
func (m *model) reset() {
	if m.mode != ModeGreeting {
		return
	}
	m.anim.close()
	m.mode = ModeForm
	m.name = ""
	m.cursorPos = 0
	m.confetti = nil
	m.balloons = nil
	m.elapsed = 0
	m.errorMessage = ""
	m.successMessage = ""
	m.logger.Info("greeting reset")
}

func (m *model) handleTick(msg tickMsg) tea.Cmd {
	if !m.anim.accepts(msg) || m.mode != ModeGreeting {
		return nil
	}

	m.confetti = stepConfetti(m.confetti, m.viewport)
	m.elapsed += m.anim.interval.Seconds()

	if len(m.confetti) == 0 {
		m.anim.close()
		m.logger.Debug("confetti exhausted", "elapsed", m.elapsed)
		return nil
	}
	return m.anim.schedule()
}

func (m *model) quit() tea.Cmd {
	m.anim.close()
	return tea.Quit
}
