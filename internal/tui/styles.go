package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lunaris/internal/ui"
)

// Style variables for the watch view.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	zoneStyle          lipgloss.Style
	litStyle           lipgloss.Style
	phaseNameStyle     lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	sliderStyle        lipgloss.Style
	sliderKnobStyle    lipgloss.Style
	sparklineStyle     lipgloss.Style
	statusPlayingStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	zoneStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	litStyle = lipgloss.NewStyle().
		Foreground(t.Lit)

	phaseNameStyle = lipgloss.NewStyle().
		Foreground(t.Lit).
		Bold(true)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	sliderStyle = lipgloss.NewStyle().
		Foreground(t.Earthshine)

	sliderKnobStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	statusPlayingStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)
}
