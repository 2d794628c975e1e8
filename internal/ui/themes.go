package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines a color scheme for UI output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary lipgloss.TerminalColor
	// Secondary is used for less prominent elements.
	Secondary lipgloss.TerminalColor
	// Success indicates positive outcomes or completed operations.
	Success lipgloss.TerminalColor
	// Warning is used for caution messages or non-critical issues.
	Warning lipgloss.TerminalColor
	// Error indicates failures or critical issues.
	Error lipgloss.TerminalColor
	// Decorate enables bold and underline attributes.
	Decorate bool
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("39"),
		Secondary: lipgloss.Color("245"),
		Success:   lipgloss.Color("82"),
		Warning:   lipgloss.Color("220"),
		Error:     lipgloss.Color("196"),
		Decorate:  true,
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("27"),
		Secondary: lipgloss.Color("240"),
		Success:   lipgloss.Color("28"),
		Warning:   lipgloss.Color("130"),
		Error:     lipgloss.Color("124"),
		Decorate:  true,
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, -no-color is given, or output is not a terminal.
	NoColorTheme = Theme{
		Name:      "none",
		Primary:   lipgloss.NoColor{},
		Secondary: lipgloss.NoColor{},
		Success:   lipgloss.NoColor{},
		Warning:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeNames lists the names accepted by SetTheme.
var ThemeNames = []string{"dark", "light", "none"}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	SetCurrentTheme(themeByName(name))
}

func themeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme activates the named theme for output written to out. Colors are
// disabled regardless of name when noColor is set, when NO_COLOR is present
// in the environment (https://no-color.org/), or when out is not a terminal.
func InitTheme(name string, noColor bool, out io.Writer) {
	if !colorsEnabled(noColor, out) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}

func colorsEnabled(noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
