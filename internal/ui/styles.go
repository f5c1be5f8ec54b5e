// ABOUTME: Lipgloss styles shared by the prompt, select list, and status output
// ABOUTME: Built once; Styles() returns the palette by value

package ui

import "github.com/charmbracelet/lipgloss"

// ThemeStyles holds pre-built lipgloss styles.
type ThemeStyles struct {
	Title     lipgloss.Style
	Selection lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
}

var styles = ThemeStyles{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Selection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212")),
	Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	Help:      lipgloss.NewStyle().Faint(true),
}

// Styles returns the palette.
func Styles() ThemeStyles {
	return styles
}
