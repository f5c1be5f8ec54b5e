// ABOUTME: SelectListModel is a Bubble Tea model for a filterable scrollable pick list
// ABOUTME: Typing narrows the list by fuzzy label match; Enter picks, Esc cancels

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgfind/pkg/tui/fuzzy"
	"github.com/mauromedda/pkgfind/pkg/tui/width"
)

const defaultListHeight = 10

// SelectListModel is a filterable, scrollable list of items.
// Implements tea.Model with value semantics.
type SelectListModel struct {
	title     string
	items     []ListItem
	visible   []ListItem
	selected  int
	scrollOff int
	maxHeight int
	filter    string
	width     int

	chosen    bool
	cancelled bool
}

// NewSelectListModel creates a SelectListModel with the given items.
func NewSelectListModel(title string, items []ListItem) SelectListModel {
	m := SelectListModel{
		title:     title,
		items:     items,
		maxHeight: defaultListHeight,
	}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed at startup.
func (m SelectListModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, filter editing, and the terminating keys.
func (m SelectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp, tea.KeyCtrlP:
			m.moveUp()
		case tea.KeyDown, tea.KeyCtrlN:
			m.moveDown()
		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			m.chosen = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.filter != "" {
				r := []rune(m.filter)
				m = m.SetFilter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m = m.SetFilter(m.filter + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Height > 4 {
			m = m.SetMaxHeight(min(defaultListHeight, (msg.Height-2)/2))
		}
	}
	return m, nil
}

// View renders the title, the filter, and the visible window of items.
func (m SelectListModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	s := Styles()
	var b strings.Builder
	b.WriteString(s.Title.Render(m.title))
	b.WriteString(" ")
	b.WriteString(s.Accent.Render(m.filter))
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		b.WriteString(s.Dim.Render("  no matches"))
		b.WriteByte('\n')
	}

	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		b.WriteString(formatListItem(s, m.visible[i], m.width, i == m.selected))
		b.WriteByte('\n')
	}

	b.WriteString(s.Help.Render("↑/↓ move • type to filter • enter select • esc cancel"))
	return b.String()
}

// SetFilter sets the fuzzy filter string and refilters. Returns a new model.
func (m SelectListModel) SetFilter(f string) SelectListModel {
	m.filter = f
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// SetMaxHeight limits the number of visible rows. Returns a new model.
func (m SelectListModel) SetMaxHeight(h int) SelectListModel {
	if h < 1 {
		h = 1
	}
	m.maxHeight = h
	m.adjustScroll()
	return m
}

// Chosen reports whether the user confirmed a selection.
func (m SelectListModel) Chosen() bool { return m.chosen }

// Cancelled reports whether the user dismissed the list.
func (m SelectListModel) Cancelled() bool { return m.cancelled }

// SelectedItem returns the currently selected item.
// Returns a zero-value ListItem if the list is empty.
func (m SelectListModel) SelectedItem() ListItem {
	if len(m.visible) == 0 {
		return ListItem{}
	}
	return m.visible[m.selected]
}

// SelectedIndex returns the index within the visible (filtered) items.
func (m SelectListModel) SelectedIndex() int {
	return m.selected
}

// VisibleItems returns the currently filtered items.
func (m SelectListModel) VisibleItems() []ListItem {
	return m.visible
}

func (m *SelectListModel) moveUp() {
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
}

func (m *SelectListModel) moveDown() {
	if m.selected < len(m.visible)-1 {
		m.selected++
		m.adjustScroll()
	}
}

func (m *SelectListModel) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

// labels exposes item labels to the fuzzy matcher without copying.
type labels []ListItem

func (l labels) String(i int) string { return l[i].Label }
func (l labels) Len() int            { return len(l) }

func (m *SelectListModel) applyFilter() {
	if m.filter == "" {
		m.visible = append([]ListItem(nil), m.items...)
		return
	}

	matches := fuzzy.FindFrom(m.filter, labels(m.items))
	m.visible = make([]ListItem, len(matches))
	for i, match := range matches {
		m.visible[i] = m.items[match.Index]
	}
}

func formatListItem(s ThemeStyles, item ListItem, w int, selected bool) string {
	line := "  " + item.Label
	if item.Description != "" {
		line = fmt.Sprintf("  %s  %s", item.Label, item.Description)
	}
	if item.Detail != "" {
		line += "  " + item.Detail
	}
	if w > 0 {
		line = width.Truncate(line, w)
	}
	if selected {
		return s.Selection.Render(line)
	}
	return line
}
