package main

import (
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	p := tea.NewProgram(
		newModel(cfg, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newModel(cfg *Config, logger *slog.Logger) model {
	if cfg == nil {
		cfg = defaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return model{
		mode:   ModeLoading,
		anim:   newAnimation(cfg.TickInterval()),
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
		config: cfg,
		logger: logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.markReady()
		return m, nil

	case tickMsg:
		return m, m.handleTick(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}

		switch m.mode {
		case ModeLoading:
			return m, nil
		case ModeForm:
			return m, m.handleFormKey(msg)
		case ModeGreeting:
			return m, m.handleGreetingKey(msg)
		}
	}
	return m, nil
}

func (m *model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	runes := []rune(m.name)
	if m.cursorPos > len(runes) {
		m.cursorPos = len(runes)
	}
	if m.handleCursorMove(msg) {
		return nil
	}

	switch msg.Type {
	case tea.KeyEscape:
		return m.quit()
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if m.cursorPos > 0 {
			m.name = string(runes[:m.cursorPos-1]) + string(runes[m.cursorPos:])
			m.cursorPos--
		}
	case tea.KeyDelete:
		if m.cursorPos < len(runes) {
			m.name = string(runes[:m.cursorPos]) + string(runes[m.cursorPos+1:])
		}
	case tea.KeyCtrlU:
		m.name = ""
		m.cursorPos = 0
	case tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "Clipboard unavailable: " + err.Error()
			m.logger.Warn("clipboard paste failed", "err", err)
			return nil
		}
		m.errorMessage = ""
		m.insert([]rune(cleanPastedName(text)))
	case tea.KeySpace:
		m.insert([]rune{' '})
	case tea.KeyRunes:
		m.insert(msg.Runes)
	}
	return nil
}

func (m *model) insert(text []rune) {
	filtered := text[:0:0]
	for _, r := range text {
		if r >= 32 && r != 127 {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}
	runes := []rune(m.name)
	out := make([]rune, 0, len(runes)+len(filtered))
	out = append(out, runes[:m.cursorPos]...)
	out = append(out, filtered...)
	out = append(out, runes[m.cursorPos:]...)
	m.name = string(out)
	m.cursorPos += len(filtered)
}

func (m *model) handleGreetingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		m.reset()
		return nil
	}

	switch msg.String() {
	case "r":
		m.reset()
	case "q":
		return m.quit()
	case "s":
		m.reportExport(m.exportPNG())
	case "t":
		m.reportExport(m.exportVisualTXT())
	case "y":
		if err := m.copyGreeting(); err != nil {
			m.errorMessage = "Clipboard unavailable: " + err.Error()
			m.successMessage = ""
			m.logger.Warn("clipboard copy failed", "err", err)
		} else {
			m.successMessage = "Greeting copied to clipboard"
			m.errorMessage = ""
		}
	}
	return nil
}

func (m *model) reportExport(path string, err error) {
	if err != nil {
		m.errorMessage = err.Error()
		m.successMessage = ""
		m.logger.Error("export failed", "err", err)
		return
	}
	m.successMessage = "Saved " + path
	m.errorMessage = ""
	m.logger.Info("exported greeting", "path", path)
}
