// ABOUTME: TextPromptModel asks for a single line of input with bubbles/textinput
// ABOUTME: Enter submits, Esc or Ctrl+C cancels

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextPromptModel is a one-line input prompt.
type TextPromptModel struct {
	title     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewTextPromptModel creates a focused prompt.
func NewTextPromptModel(title, placeholder string) TextPromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 214
	ti.Focus()
	return TextPromptModel{title: title, input: ti}
}

func (m TextPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TextPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TextPromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	s := Styles()
	return s.Title.Render(m.title) + "\n" + m.input.View() + "\n" + s.Help.Render("enter submit • esc cancel")
}

// Value returns the trimmed input.
func (m TextPromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Submitted reports whether the user pressed Enter.
func (m TextPromptModel) Submitted() bool { return m.submitted }

// Cancelled reports whether the user dismissed the prompt.
func (m TextPromptModel) Cancelled() bool { return m.cancelled }
