package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is an ANSI color scheme for line-oriented CLI output.
type Theme struct {
	Name string
	// Primary highlights values the user asked for, such as phase names.
	Primary string
	// Secondary is used for labels and less prominent text.
	Secondary string
	Success   string
	Warning   string
	Error     string
	// Info marks dates and other reference values.
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// NightTheme suits dark terminals: moonlight silver with a cool blue accent.
	NightTheme = Theme{
		Name:      "night",
		Primary:   "\033[38;5;253m", // Silver
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;114m", // Soft green
		Warning:   "\033[38;5;221m", // Pale gold
		Error:     "\033[38;5;203m", // Coral
		Info:      "\033[38;5;111m", // Sky blue
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// DayTheme suits light terminals.
	DayTheme = Theme{
		Name:      "day",
		Primary:   "\033[38;5;236m", // Charcoal
		Secondary: "\033[38;5;242m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Brown
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;25m",  // Navy
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all escape codes.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = NightTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the watch view.
type TUITheme struct {
	Bg         lipgloss.TerminalColor
	Text       lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
	Lit        lipgloss.TerminalColor
	Earthshine lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Warning    lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
	Dim        lipgloss.TerminalColor
}

var (
	// NightTUITheme is the default deep-blue palette.
	NightTUITheme = TUITheme{
		Bg:         lipgloss.Color("#050510"),
		Text:       lipgloss.Color("#E6E6F0"),
		Border:     lipgloss.Color("#3A4A7A"),
		Accent:     lipgloss.Color("#8FB4FF"),
		Lit:        lipgloss.Color("#F4F1E8"),
		Earthshine: lipgloss.Color("#5A6078"),
		Success:    lipgloss.Color("#9ECE6A"),
		Warning:    lipgloss.Color("#E0C070"),
		Error:      lipgloss.Color("#FF6B6B"),
		Dim:        lipgloss.Color("#6C7086"),
	}

	// DayTUITheme keeps the disk readable on light backgrounds.
	DayTUITheme = TUITheme{
		Bg:         lipgloss.Color("#FAFAFA"),
		Text:       lipgloss.Color("#2A2A2A"),
		Border:     lipgloss.Color("#8A9AC0"),
		Accent:     lipgloss.Color("#1F4FA8"),
		Lit:        lipgloss.Color("#3A3A3A"),
		Earthshine: lipgloss.Color("#C8C8D0"),
		Success:    lipgloss.Color("#2E7D32"),
		Warning:    lipgloss.Color("#8D6E00"),
		Error:      lipgloss.Color("#B71C1C"),
		Dim:        lipgloss.Color("#8A8A8A"),
	}

	NoColorTUITheme = TUITheme{
		Bg:         lipgloss.NoColor{},
		Text:       lipgloss.NoColor{},
		Border:     lipgloss.NoColor{},
		Accent:     lipgloss.NoColor{},
		Lit:        lipgloss.NoColor{},
		Earthshine: lipgloss.NoColor{},
		Success:    lipgloss.NoColor{},
		Warning:    lipgloss.NoColor{},
		Error:      lipgloss.NoColor{},
		Dim:        lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case NoColorTheme.Name:
		return NoColorTUITheme
	case DayTheme.Name:
		return DayTUITheme
	default:
		return NightTUITheme
	}
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "night", "day" or "none". Unknown
// names select night.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case DayTheme.Name:
		currentTheme = DayTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = NightTheme
	}
}

// InitTheme picks the startup theme. Colors are off when noColor is set or
// the NO_COLOR environment variable exists (https://no-color.org/); otherwise
// the named theme is used.
func InitTheme(name string, noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}
