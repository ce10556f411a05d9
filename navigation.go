package main

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCursorMove moves the input cursor and reports whether the key was a
// movement key.
func (m *model) handleCursorMove(msg tea.KeyMsg) bool {
	runes := []rune(m.name)
	switch msg.Type {
	case tea.KeyLeft:
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case tea.KeyRight:
		if m.cursorPos < len(runes) {
			m.cursorPos++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		m.cursorPos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.cursorPos = len(runes)
	case tea.KeyCtrlLeft:
		m.cursorPos = prevWordStart(runes, m.cursorPos)
	case tea.KeyCtrlRight:
		m.cursorPos = nextWordEnd(runes, m.cursorPos)
	default:
		return false
	}
	return true
}

func prevWordStart(runes []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

func nextWordEnd(runes []rune, pos int) int {
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	for pos < len(runes) && !unicode.IsSpace(runes[pos]) {
		pos++
	}
	return pos
}
