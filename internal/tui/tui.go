package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/handsort/internal/display"
	"github.com/lox/handsort/poker"
)

// Entry is one evaluated line of input
type Entry struct {
	Input  string
	Result poker.Result
	Err    error
}

// Model is the Bubble Tea model for interactive hand evaluation
type Model struct {
	logger *log.Logger

	history  viewport.Model
	input    textinput.Model
	entries  []Entry
	width    int
	height   int
	quitting bool
}

// New creates a model ready to be passed to tea.NewProgram
func New(logger *log.Logger) *Model {
	// Resized when the first WindowSizeMsg arrives
	vp := viewport.New(80, 10)
	vp.SetContent(display.InfoStyle.Render("Enter five cards, e.g. \"As Kd 10h 10c 2s\". Esc to quit."))

	ti := textinput.New()
	ti.Placeholder = "As Kd 10h 10c 2s"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:  logger.WithPrefix("tui"),
		history: vp,
		input:   ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-4, 1)
		m.logger.Debug("Resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.Submit(line)
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit evaluates a line of card notation and records the outcome
func (m *Model) Submit(line string) Entry {
	entry := Entry{Input: line}

	cards, err := poker.ParseCards(line)
	if err == nil {
		entry.Result, err = poker.Evaluate(cards...)
	}
	entry.Err = err

	if err != nil {
		m.logger.Debug("Rejected input", "input", line, "error", err)
	} else {
		m.logger.Debug("Evaluated", "input", line, "category", entry.Result.Category)
	}

	m.entries = append(m.entries, entry)
	m.history.SetContent(m.renderHistory())
	m.history.GotoBottom()
	return entry
}

// Entries returns everything evaluated so far, oldest first
func (m *Model) Entries() []Entry {
	return m.entries
}

// Quitting reports whether the user asked to exit
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	header := display.HeaderStyle.Render(" handsort ")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.history.View(), m.input.View())
}

func (m *Model) renderHistory() string {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(display.InfoStyle.Render(e.Input))
		b.WriteString("  →  ")
		if e.Err != nil {
			b.WriteString(display.ErrorStyle.Render(e.Err.Error()))
			continue
		}
		b.WriteString(display.Result(e.Result))
	}
	return b.String()
}

// Run starts the interactive program and blocks until it exits
func Run(logger *log.Logger) error {
	_, err := tea.NewProgram(New(logger), tea.WithAltScreen()).Run()
	return err
}
