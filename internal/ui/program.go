// ABOUTME: Prompter runs the text prompt and select list as Bubble Tea programs
// ABOUTME: Falls back to a line-oriented prompter when stdin is not a terminal

package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Prompter asks the user for a line of text or a choice from a list.
// ok is false when the user cancelled.
type Prompter interface {
	Text(ctx context.Context, title, placeholder string) (value string, ok bool, err error)
	Select(ctx context.Context, title string, items []ListItem) (item ListItem, ok bool, err error)
}

// NewPrompter returns a Terminal prompter when in is a TTY and a Plain one otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &Terminal{In: in, Out: out}
	}
	return NewPlain(in, out)
}

// Terminal prompts with inline Bubble Tea programs.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// Text runs a TextPromptModel until the user submits or cancels.
func (t *Terminal) Text(ctx context.Context, title, placeholder string) (string, bool, error) {
	final, err := t.run(ctx, NewTextPromptModel(title, placeholder))
	if err != nil {
		return "", false, err
	}
	m := final.(TextPromptModel)
	if !m.Submitted() {
		return "", false, nil
	}
	return m.Value(), true, nil
}

// Select runs a SelectListModel until the user picks an item or cancels.
func (t *Terminal) Select(ctx context.Context, title string, items []ListItem) (ListItem, bool, error) {
	final, err := t.run(ctx, NewSelectListModel(title, items))
	if err != nil {
		return ListItem{}, false, err
	}
	m := final.(SelectListModel)
	if !m.Chosen() {
		return ListItem{}, false, nil
	}
	return m.SelectedItem(), true, nil
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("bubble tea: %w", err)
	}
	return final, nil
}
