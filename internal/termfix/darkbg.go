// ABOUTME: Fixes the lipgloss background to dark before Bubble Tea's init() can probe the terminal
// ABOUTME: Blank-import from main ahead of every package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background, lipgloss skips the OSC 10/11 query whose
	// late reply would otherwise land in the pkgfind prompt as stray input.
	// Importing bubbletea here would break the init ordering this relies on.
	lipgloss.SetHasDarkBackground(true)
}
