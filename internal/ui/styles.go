package ui

import "github.com/charmbracelet/lipgloss"

func foreground(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// HeaderStyle renders table headers.
func HeaderStyle() lipgloss.Style {
	t := GetCurrentTheme()
	return lipgloss.NewStyle().Underline(t.Decorate).Bold(t.Decorate)
}

// NameStyle renders step names.
func NameStyle() lipgloss.Style { return foreground(GetCurrentTheme().Primary) }

// DurationStyle renders durations.
func DurationStyle() lipgloss.Style { return foreground(GetCurrentTheme().Warning) }

// SuccessStyle renders positive outcomes.
func SuccessStyle() lipgloss.Style { return foreground(GetCurrentTheme().Success) }

// ErrorStyle renders failures.
func ErrorStyle() lipgloss.Style { return foreground(GetCurrentTheme().Error) }

// MutedStyle renders secondary information.
func MutedStyle() lipgloss.Style { return foreground(GetCurrentTheme().Secondary) }
