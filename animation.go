package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	gen int
	at  time.Time
}

// animation owns the confetti tick chain. Each tick schedules at most one
// successor, and only while the handle is open and the generation matches,
// so a closed handle never leaves a timer behind.
type animation struct {
	interval time.Duration
	gen      int
	running  bool
}

func newAnimation(interval time.Duration) animation {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return animation{interval: interval}
}

func (a *animation) start() tea.Cmd {
	a.gen++
	a.running = true
	return a.schedule()
}

func (a *animation) close() {
	a.running = false
}

func (a *animation) accepts(msg tickMsg) bool {
	return a.running && msg.gen == a.gen
}

func (a *animation) schedule() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
