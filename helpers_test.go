package main

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() model {
	cfg := defaultConfig()
	cfg.Seed = 42
	return newModel(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// readyModel returns a model that already received its first size report.
func readyModel(cols, rows int) model {
	return send(newTestModel(), tea.WindowSizeMsg{Width: cols, Height: rows})
}

func send(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func sendCmd(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func typeText(m model, text string) model {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func enter(m model) (model, tea.Cmd) {
	return sendCmd(m, tea.KeyMsg{Type: tea.KeyEnter})
}
