// Package ui provides theme and color support for the application's user interface.
// It defines color schemes as lipgloss styles so that the presentation layer
// renders consistently and degrades to plain text when colors are disabled.
package ui
