package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polymul/internal/ui"
)

// Style variables for the TUI workbench.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	labelStyle       lipgloss.Style
	focusedStyle     lipgloss.Style
	blurredStyle     lipgloss.Style
	resultStyle      lipgloss.Style
	errorStyle       lipgloss.Style
	successStyle     lipgloss.Style
	dimStyle         lipgloss.Style
	progressBarStyle lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been
// invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	focusedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	blurredStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	progressBarStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
