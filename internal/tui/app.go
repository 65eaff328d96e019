// Package tui is the interactive terminal front end for the command shell.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/shell"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// executor runs command lines (consumer-defined interface).
// Execute is only ever called from a tea.Cmd, one line at a time.
type executor interface {
	Execute(line string) shell.Output
}

// historySource supplies previously entered lines, oldest first
type historySource interface {
	Recent(n int) []string
}

// Chrome heights around the transcript viewport
const (
	HeaderHeight = 1
	InputHeight  = 2
	FooterHeight = 1

	historyLoad = 100
)

// transcriptLine is one rendered line of the session transcript
type transcriptLine struct {
	text string
	echo bool // An entered command line
	kind shell.Kind
}

// Model is the main Bubble Tea model for the shell UI
type Model struct {
	Ready bool

	shell  executor
	prompt string
	logger *slog.Logger

	input    textinput.Model
	viewport viewport.Model

	transcript []transcriptLine
	history    []string
	histIdx    int // len(history) when not browsing
	draft      string

	busy      bool
	prompting bool // Last result asked for a search selection
	quitting  bool
	width     int
	height    int
}

// NewModel creates the UI over sh. history may be nil.
func NewModel(sh executor, history historySource, prompt string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.PromptStyle
	ti.Placeholder = "type HELP for a list of commands"
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	var lines []string
	if history != nil {
		lines = history.Recent(historyLoad)
	}

	return Model{
		shell:   sh,
		prompt:  prompt,
		logger:  logger,
		input:   ti,
		history: lines,
		histIdx: len(lines),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		height := max(msg.Height-HeaderHeight-InputHeight-FooterHeight, 1)
		if !m.Ready {
			m.viewport = viewport.New(msg.Width, height)
			m.Ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = max(msg.Width-len(m.prompt)-1, 1)
		m.refresh()
		return m, nil

	case CommandResultMsg:
		m.busy = false
		m.prompting = msg.Output.Prompting
		for _, l := range msg.Output.Lines {
			m.transcript = append(m.transcript, transcriptLine{text: l.Text, kind: l.Kind})
		}
		if msg.Output.Quit {
			m.logger.Info("shell exited")
			m.quitting = true
			return m, tea.Quit
		}
		m.updatePrompt()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, Keys.Clear):
		m.transcript = nil
		m.refresh()
		return m, nil

	case key.Matches(msg, Keys.PageUp, Keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, Keys.HistoryPrev):
		m.browseHistory(-1)
		return m, nil

	case key.Matches(msg, Keys.HistoryNext):
		m.browseHistory(1)
		return m, nil

	case key.Matches(msg, Keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit echoes the line and hands it to the shell
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	line := m.input.Value()
	m.input.Reset()

	m.transcript = append(m.transcript, transcriptLine{text: m.input.Prompt + line, echo: true})
	if !m.prompting && line != "" {
		m.history = append(m.history, line)
	}
	m.histIdx = len(m.history)
	m.draft = ""
	m.busy = true
	m.refresh()

	return m, ExecuteCmd(m.shell, line)
}

// browseHistory moves through entered lines; delta is -1 (older) or 1 (newer)
func (m *Model) browseHistory(delta int) {
	if m.prompting || len(m.history) == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}

	idx := m.histIdx + delta
	switch {
	case idx < 0:
		return
	case idx >= len(m.history):
		m.histIdx = len(m.history)
		m.input.SetValue(m.draft)
	default:
		m.histIdx = idx
		m.input.SetValue(m.history[idx])
	}
	m.input.CursorEnd()
}

// updatePrompt switches the prompt while the shell waits for a search selection
func (m *Model) updatePrompt() {
	if m.prompting {
		m.input.Prompt = "# "
		m.input.PromptStyle = styles.SelectPromptStyle
		return
	}
	m.input.Prompt = m.prompt
	m.input.PromptStyle = styles.PromptStyle
}

func (m *Model) refresh() {
	if !m.Ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// Run starts the full-screen UI and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
